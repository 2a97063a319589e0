// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/cs2ts/internal/git"
	"github.com/petar-djukic/cs2ts/pkg/transpiler"
)

var (
	errTranslationFailed = errors.New("translation reported errors")
	errOutOfDate         = errors.New("output is out of date")
)

// newTranslateCmd creates the "translate" command.
func newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate the C# sources and write the TypeScript output",
		Long: "Translate scans the source directory, translates every .cs file and writes the .ts files " +
			"under the output directory. With --check nothing is written and the command fails when any file would change.",
		RunE: runTranslate,
	}
	cmd.Flags().Bool("check", false, "Report changes without writing; fail if any file would change")
	cmd.Flags().Bool("commit", false, "Commit the written files to the git repository holding the output directory")
	return cmd
}

// runTranslate executes the translation.
func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := transpilerConfig()
	if err != nil {
		return err
	}
	cfg.Check, _ = cmd.Flags().GetBool("check")
	cfg.Commit, _ = cmd.Flags().GetBool("commit")

	t, err := transpiler.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := t.Run(ctx)
	if result != nil {
		reportDiagnostics(cmd.ErrOrStderr(), result, viper.GetBool("verbose"))
		printResult(cmd.OutOrStdout(), result)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	switch {
	case !result.Success:
		return errTranslationFailed
	case cfg.Check && result.Changed:
		fmt.Fprintln(cmd.ErrOrStderr(), "Output is out of date; run cs2ts translate.")
		return errOutOfDate
	}
	return nil
}

// reportDiagnostics writes diagnostics, and in verbose mode every file, to w.
func reportDiagnostics(w io.Writer, result *transpiler.Result, verbose bool) {
	if verbose {
		for _, f := range result.Files {
			status := f.Status
			if status == "" {
				status = "skipped"
			}
			fmt.Fprintf(w, "%-9s %s -> %s\n", status, f.Source, f.Output)
			if f.Diff != "" {
				fmt.Fprintln(w, f.Diff)
			}
		}
	}
	for _, d := range result.Diagnostics {
		fmt.Fprintln(w, d.String())
	}
	if result.Errors > 0 || result.Warnings > 0 {
		fmt.Fprintf(w, "%d error(s), %d warning(s)\n", result.Errors, result.Warnings)
	}
}

// printResult outputs the result as JSON.
func printResult(w io.Writer, result any) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(out))
}

// newSymbolsCmd creates the "symbols" command.
func newSymbolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the script name and import location of every symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := transpilerConfig()
			if err != nil {
				return err
			}
			t, err := transpiler.New(cfg)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			entries, err := t.Symbols(ctx)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				printResult(cmd.OutOrStdout(), entries)
				return nil
			}
			return printSymbols(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

// printSymbols writes entries as an aligned table.
func printSymbols(w io.Writer, entries []transpiler.SymbolEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tSCRIPT NAME\tTIER\tIMPORT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Signature, e.ScriptName, e.Tier, e.Import)
	}
	return tw.Flush()
}

// newUndoCmd creates the "undo" command.
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last cs2ts commit",
		Long:  "Undo soft-resets the repository holding the output directory when its last commit was made by translate --commit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := git.Open(viper.GetString("output"))
			if err != nil {
				return fmt.Errorf("opening repository: %w", err)
			}
			if err := repo.Undo(); err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reverted the last cs2ts commit.")
			return nil
		},
	}
}
