// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command cs2ts translates a tree of C# sources into TypeScript modules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cs2ts",
		Short:         "C# to TypeScript translator",
		Long:          "cs2ts binds C# sources against referenced assembly manifests and emits one TypeScript module per source file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(viper.GetString("config"))
		},
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default .cs2ts.yaml in the working directory)")
	flags.String("source", ".", "Directory scanned for .cs files")
	flags.String("output", "ts", "Root directory of the emitted .ts files")
	flags.StringSlice("reference", nil, "Reference assembly manifest (repeatable)")
	flags.String("assembly-name", "", "Name of the assembly the sources form")
	flags.Bool("no-builtin", false, "Do not reference the built-in core library manifest")
	flags.String("field-rename-rule", "", "lowerCaseFirstChar, dollarPrefixOnPrivate or dollarPrefixOnDuplicateOnly")
	flags.Int("concurrency", 0, "Parallel work (0 means one per CPU)")
	flags.Bool("warnings-as-errors", false, "Treat warnings as errors")
	flags.StringSlice("suppress", nil, "Diagnostic code to drop (repeatable)")
	flags.String("indent", "", "Output indentation (default four spaces)")
	flags.BoolP("verbose", "v", false, "Report every file on stderr")

	for _, name := range []string{
		"config", "source", "output", "reference", "assembly-name", "no-builtin",
		"field-rename-rule", "concurrency", "warnings-as-errors", "suppress", "indent", "verbose",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: CS2TS_SOURCE, CS2TS_OUTPUT, etc.
	viper.SetEnvPrefix("CS2TS")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	rootCmd.AddCommand(newTranslateCmd())
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print cs2ts version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cs2ts %s\n", version)
		},
	}
}
