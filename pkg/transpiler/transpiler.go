// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package transpiler is the public interface of cs2ts, a C# to TypeScript
// translator. It discovers the C# sources of a directory, binds them against
// referenced assembly manifests, translates every file into a TypeScript
// module, and writes the modules to an output directory.
package transpiler

import (
	"context"
	"errors"

	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Error types for the Transpiler API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoSources     = errors.New("no C# source files found")
)

// Config configures a Transpiler instance.
type Config struct {
	SourceDir    string   // Directory scanned for .cs files (required)
	OutputDir    string   // Root of the emitted .ts tree (required)
	References   []string // Paths of reference assembly manifests (YAML)
	AssemblyName string   // Name of the assembly the sources form (default "Script")
	NoBuiltin    bool     // Do not reference the built-in core library manifest

	FieldRenameRule string            // lowerCaseFirstChar, dollarPrefixOnPrivate, dollarPrefixOnDuplicateOnly
	OperatorNames   map[string]string // Operator method name (op_Increment, ...) to function name

	ScriptNameOverrides map[string]string // Symbol signature to script name
	InlineCodeOverrides map[string]string // Symbol signature to inline code template

	Concurrency      int      // Parallel work; <= 0 means runtime.NumCPU()
	WarningsAsErrors bool     // Promote warnings to errors
	SuppressedCodes  []string // Diagnostic codes to drop
	Check            bool     // Report changes without writing
	Indent           string   // Output indentation (default four spaces)
	Commit           bool     // Commit the written files to the repository holding OutputDir
}

// FileResult is the outcome for one source file.
type FileResult struct {
	Source string // Path of the .cs file
	Output string // Path of the .ts file
	Status string // created, updated, unchanged; empty when not translated
	Diff   string // Patch against the existing output, in check mode
}

// Result holds the outcome of a Transpiler.Run invocation.
type Result struct {
	Files       []FileResult       // One entry per source file, sorted by source path
	Diagnostics []types.Diagnostic // Every diagnostic of every file
	Errors      int                // Number of error diagnostics
	Warnings    int                // Number of warning diagnostics
	Changed     bool               // True if any output file was (or would be) created or updated
	Success     bool               // True if no error diagnostic was reported
	Commit      string             // Hash of the output commit, when one was made
}

// SymbolEntry describes how one symbol is named and imported.
type SymbolEntry struct {
	Signature  string // Fully qualified symbol signature
	ScriptName string // Name in the emitted TypeScript
	Tier       string // Table tier that produced the name: override, document, direct, indirect
	Import     string // Output file or module the type is imported from; types only
	InlineCode string // Inline code template, when the symbol has one
}

// Transpiler translates a C# source tree.
type Transpiler interface {
	// Run scans, binds, and translates the sources, then writes (or, in
	// check mode, compares) the output files.
	Run(ctx context.Context) (*Result, error)

	// Symbols runs the translation without writing anything and reports the
	// script name and import location of every symbol the sources declare or
	// reference, sorted by signature.
	Symbols(ctx context.Context) ([]SymbolEntry, error)
}
