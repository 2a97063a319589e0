// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"fmt"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Diagnostic codes reported by the translator and the pipeline.
const (
	CodeNoSyntaxTree                 = "CS2TS0001"
	CodeNoSemanticModel              = "CS2TS0002"
	CodeTranslationNotSupported      = "CS2TS1001"
	CodeOperatorKindNotSupported     = "CS2TS1002"
	CodeMultidimensionalArrays       = "CS2TS1003"
	CodeOperatorOverloadNotSupported = "CS2TS1004"
	CodeLiteralNotSupported          = "CS2TS1005"
	CodeUnknownInlineCodePlaceholder = "CS2TS1006"
	CodeInternalError                = "CS2TS1007"
	CodeUnresolvedImport             = "CS2TS2001"
)

// DiagnosticList is an ordered, append-only diagnostic sink. Suppressed codes
// are dropped and, when configured, warnings are promoted to errors on the
// way in. It is not safe for concurrent use; each visitor owns one.
type DiagnosticList struct {
	opts  types.Options
	items []types.Diagnostic
}

// NewDiagnosticList creates a list that applies the suppression and
// promotion settings of opts.
func NewDiagnosticList(opts types.Options) *DiagnosticList {
	return &DiagnosticList{opts: opts}
}

// Add appends d.
func (l *DiagnosticList) Add(d types.Diagnostic) {
	if d.Code != "" && l.opts.IsSuppressed(d.Code) {
		return
	}
	if l.opts.WarningsAsErrors && d.Severity == types.SeverityWarning {
		d.Severity = types.SeverityError
	}
	l.items = append(l.items, d)
}

// AddAll appends every diagnostic in ds.
func (l *DiagnosticList) AddAll(ds []types.Diagnostic) {
	for _, d := range ds {
		l.Add(d)
	}
}

// Items returns a copy of the diagnostics in insertion order.
func (l *DiagnosticList) Items() []types.Diagnostic {
	return append([]types.Diagnostic(nil), l.items...)
}

// Len returns the number of diagnostics.
func (l *DiagnosticList) Len() int { return len(l.items) }

// HasErrors reports whether an error was recorded.
func (l *DiagnosticList) HasErrors() bool { return types.HasErrors(l.items) }

// LocationOf converts a node position into a diagnostic location.
func LocationOf(path string, n syntax.Node) types.Location {
	if syntax.IsNil(n) {
		return types.Location{FilePath: path}
	}
	start := n.Span().Start
	return types.Location{FilePath: path, Line: start.Line, Column: start.Column}
}

func newDiagnostic(sev types.Severity, code string, loc types.Location, format string, args ...any) types.Diagnostic {
	return types.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

// NoSyntaxTree reports a unit the front end could not parse.
func NoSyntaxTree(path string) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeNoSyntaxTree, types.Location{FilePath: path},
		"File does not contain a syntax tree: %s", path)
}

// NoSemanticModel reports a unit the front end could not bind.
func NoSemanticModel(path string) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeNoSemanticModel, types.Location{FilePath: path},
		"File does not contain a semantic model: %s", path)
}

// TranslationNotSupported reports a construct with no translation.
func TranslationNotSupported(loc types.Location, what string) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeTranslationNotSupported, loc,
		"Translation of %s is not supported", what)
}

// OperatorKindNotSupported reports an operator token missing from the
// operator tables.
func OperatorKindNotSupported(loc types.Location, op string) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeOperatorKindNotSupported, loc,
		"Operator '%s' is not supported", op)
}

// MultidimensionalArraysNotSupported reports "new T[a, b]" style creation.
func MultidimensionalArraysNotSupported(loc types.Location) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeMultidimensionalArrays, loc,
		"Multidimensional arrays are not supported")
}

// OperatorOverloadNotSupported reports a user-defined operator whose kind has
// no overload function name.
func OperatorOverloadNotSupported(loc types.Location, method string) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeOperatorOverloadNotSupported, loc,
		"Invocation of user-defined operator '%s' is not supported", method)
}

// LiteralNotSupported reports a literal token that cannot be converted.
func LiteralNotSupported(loc types.Location, text string) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeLiteralNotSupported, loc,
		"Literal '%s' is not supported", text)
}

// UnknownInlineCodePlaceholder reports an [InlineCode] template referring to
// something that does not exist at the call site.
func UnknownInlineCodePlaceholder(loc types.Location, placeholder, template string) types.Diagnostic {
	return newDiagnostic(types.SeverityWarning, CodeUnknownInlineCodePlaceholder, loc,
		"Unknown placeholder '{%s}' in inline code '%s'", placeholder, template)
}

// InternalError reports an unexpected failure inside the translator.
func InternalError(loc types.Location, err error) types.Diagnostic {
	return newDiagnostic(types.SeverityError, CodeInternalError, loc, "Internal error: %v", err)
}

// UnresolvedImport reports a referenced type that no symbol table knows.
func UnresolvedImport(loc types.Location, name string) types.Diagnostic {
	return newDiagnostic(types.SeverityWarning, CodeUnresolvedImport, loc,
		"Cannot resolve the import location of '%s'", name)
}
