// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"fmt"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Diagnostic codes reported while loading source files.
const (
	CodeSyntaxError    = "CS2TS0003"
	CodeUnresolvedType = "CS2TS0004"
	CodeDuplicateType  = "CS2TS0005"
	CodeUnreadableFile = "CS2TS0006"
)

// maxSyntaxErrors caps syntax diagnostics per file.
const maxSyntaxErrors = 10

func location(path string, pos syntax.Position) types.Location {
	return types.Location{FilePath: path, Line: pos.Line, Column: pos.Column}
}

func syntaxError(path string, pos syntax.Position, what string) types.Diagnostic {
	return types.Diagnostic{
		Severity: types.SeverityError,
		Code:     CodeSyntaxError,
		Message:  fmt.Sprintf("Syntax error: %s", what),
		Location: location(path, pos),
	}
}

func unresolvedType(path string, pos syntax.Position, name string) types.Diagnostic {
	return types.Diagnostic{
		Severity: types.SeverityWarning,
		Code:     CodeUnresolvedType,
		Message:  fmt.Sprintf("The type or namespace name '%s' could not be found", name),
		Location: location(path, pos),
	}
}

func duplicateType(path string, pos syntax.Position, name string) types.Diagnostic {
	return types.Diagnostic{
		Severity: types.SeverityError,
		Code:     CodeDuplicateType,
		Message:  fmt.Sprintf("The type '%s' is declared more than once", name),
		Location: location(path, pos),
	}
}

func unreadableFile(path string, err error) types.Diagnostic {
	return types.Diagnostic{
		Severity: types.SeverityError,
		Code:     CodeUnreadableFile,
		Message:  fmt.Sprintf("Cannot read source file: %v", err),
		Location: types.Location{FilePath: path},
	}
}
