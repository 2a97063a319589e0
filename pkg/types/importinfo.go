// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// ImportSymbolInfo records where a symbol must be imported from: either the
// output file of another unit in this run (an internal reference) or a module
// name of a pre-existing package (an external reference).
type ImportSymbolInfo struct {
	pathOrModule string
	internal     bool
}

// NewInternalImport creates an import descriptor for a symbol declared in a
// unit that is translated in this run.
func NewInternalImport(outputPath string) ImportSymbolInfo {
	return ImportSymbolInfo{pathOrModule: outputPath, internal: true}
}

// NewExternalImport creates an import descriptor for a symbol declared in a
// referenced assembly.
func NewExternalImport(moduleName string) ImportSymbolInfo {
	return ImportSymbolInfo{pathOrModule: moduleName}
}

// IsInternalReference reports whether the symbol lives in this run's output.
func (i ImportSymbolInfo) IsInternalReference() bool {
	return i.internal
}

// PathOrModule returns the output file path for internal references and the
// module name for external ones.
func (i ImportSymbolInfo) PathOrModule() string {
	return i.pathOrModule
}
