// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transpiler

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/petar-djukic/cs2ts/internal/compiler"
	"github.com/petar-djukic/cs2ts/internal/csharp"
	"github.com/petar-djukic/cs2ts/internal/git"
	"github.com/petar-djukic/cs2ts/internal/output"
	"github.com/petar-djukic/cs2ts/internal/translate"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

const defaultAssemblyName = "Script"

// New validates the config, loads the reference manifests, and returns a
// ready-to-use Transpiler. It does not read the sources; that happens in Run.
func New(cfg Config) (Transpiler, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	rules, err := renameRules(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	manifests := make([]*csharp.Manifest, 0, len(cfg.References))
	for _, path := range cfg.References {
		m, err := csharp.LoadManifestFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		manifests = append(manifests, m)
	}

	return &transpiler{
		cfg:       cfg,
		manifests: manifests,
		options: types.Options{
			OutputRoot:  cfg.OutputDir,
			SourceRoot:  cfg.SourceDir,
			RenameRules: rules,
			Overrides: types.Overrides{
				ScriptNames: cfg.ScriptNameOverrides,
				InlineCode:  cfg.InlineCodeOverrides,
			},
			Concurrency:      cfg.Concurrency,
			WarningsAsErrors: cfg.WarningsAsErrors,
			SuppressedCodes:  cfg.SuppressedCodes,
		},
	}, nil
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.SourceDir == "" {
		return fmt.Errorf("SourceDir is required")
	}
	if info, err := os.Stat(cfg.SourceDir); err != nil || !info.IsDir() {
		return fmt.Errorf("SourceDir %q does not exist or is not a directory", cfg.SourceDir)
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("OutputDir is required")
	}
	if cfg.Commit && cfg.Check {
		return fmt.Errorf("Commit and Check are mutually exclusive")
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.AssemblyName == "" {
		cfg.AssemblyName = defaultAssemblyName
	}
}

func renameRules(cfg Config) (types.RenameRules, error) {
	rule := types.LowerCaseFirstChar
	if cfg.FieldRenameRule != "" {
		r, ok := types.ParseFieldRenameRule(cfg.FieldRenameRule)
		if !ok {
			return types.RenameRules{}, fmt.Errorf("unknown field rename rule %q", cfg.FieldRenameRule)
		}
		rule = r
	}
	names := make(map[types.UserDefinedOperatorKind]string, len(cfg.OperatorNames))
	for method, fn := range cfg.OperatorNames {
		kind, ok := types.OperatorKindFromMethodName(method)
		if !ok {
			return types.RenameRules{}, fmt.Errorf("unknown operator %q", method)
		}
		names[kind] = fn
	}
	return types.NewRenameRules(rule, names), nil
}

// transpiler wires the front end, the pipeline, and the writer.
type transpiler struct {
	cfg       Config
	manifests []*csharp.Manifest
	options   types.Options
}

func (t *transpiler) Run(ctx context.Context) (*Result, error) {
	run, scanDiags, err := t.compile(ctx)
	if err != nil {
		return nil, err
	}

	changes, err := output.Write(ctx, run.Units, output.Options{
		Check:       t.cfg.Check,
		EmitOptions: tsast.EmitOptions{Indent: t.cfg.Indent},
	})
	if err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	byPath := make(map[string]output.FileChange, len(changes))
	for _, c := range changes {
		byPath[c.Path] = c
	}

	res := &Result{Diagnostics: scanDiags, Changed: output.Changed(changes)}
	for _, u := range run.Units {
		f := FileResult{Source: u.SourcePath, Output: u.OutputPath}
		if c, ok := byPath[u.OutputPath]; ok && u.Module != nil {
			f.Status = c.Status.String()
			f.Diff = c.Diff
		}
		res.Files = append(res.Files, f)
		res.Diagnostics = append(res.Diagnostics, u.Diagnostics...)
	}
	sort.SliceStable(res.Files, func(i, j int) bool { return res.Files[i].Source < res.Files[j].Source })
	for _, d := range res.Diagnostics {
		switch d.Severity {
		case types.SeverityError:
			res.Errors++
		case types.SeverityWarning:
			res.Warnings++
		}
	}
	res.Success = res.Errors == 0

	if t.cfg.Commit && res.Changed {
		hash, err := t.commit(changes)
		if err != nil {
			return res, fmt.Errorf("committing output: %w", err)
		}
		res.Commit = hash
	}
	return res, nil
}

func (t *transpiler) commit(changes []output.FileChange) (string, error) {
	repo, err := git.Open(t.cfg.OutputDir)
	if err != nil {
		return "", err
	}
	var files []string
	for _, c := range changes {
		if c.Status != output.Unchanged {
			files = append(files, c.Path)
		}
	}
	return repo.Commit(files, t.cfg.SourceDir)
}

func (t *transpiler) Symbols(ctx context.Context) ([]SymbolEntry, error) {
	run, _, err := t.compile(ctx)
	if err != nil {
		return nil, err
	}
	return symbolEntries(run), nil
}

// compile scans and binds the sources and runs the translation pipeline.
// Unreadable files are returned as diagnostics.
func (t *transpiler) compile(ctx context.Context) (*compiler.RunResult, []types.Diagnostic, error) {
	scan, err := csharp.ScanDir(ctx, t.cfg.SourceDir, t.cfg.Concurrency)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning sources: %w", err)
	}
	if len(scan.Files) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoSources, t.cfg.SourceDir)
	}
	diags := translate.NewDiagnosticList(t.options)
	diags.AddAll(scan.Diagnostics())

	comp, err := csharp.NewCompilation(ctx, scan.Files, csharp.Config{
		AssemblyName: t.cfg.AssemblyName,
		References:   t.manifests,
		NoBuiltin:    t.cfg.NoBuiltin,
		Concurrency:  t.cfg.Concurrency,
	})
	if err != nil {
		return nil, nil, err
	}

	run, err := compiler.NewRunner(compiler.Deps{Units: comp.Units(), Options: t.options}).Run(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("translating: %w", err)
	}
	return run, diags.Items(), nil
}
