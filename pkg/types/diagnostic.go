// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Severity orders diagnostics by importance.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name written by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	for _, c := range []Severity{SeverityInfo, SeverityWarning, SeverityError} {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", text)
}

// Location is a position in a source file. Line and Column are 1-based; a
// zero Line means the location is unknown.
type Location struct {
	FilePath string
	Line     int
	Column   int
}

func (l Location) String() string {
	switch {
	case l.Line == 0:
		return l.FilePath
	case l.Column == 0:
		return fmt.Sprintf("%s:%d", l.FilePath, l.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", l.FilePath, l.Line, l.Column)
	}
}

// Diagnostic is a message produced while loading or translating a unit.
// Diagnostics are values: once appended to a list they are never modified.
type Diagnostic struct {
	Severity Severity
	Code     string // Stable identifier such as "CS2TS1001"
	Message  string
	Location Location
}

func (d Diagnostic) String() string {
	prefix := d.Location.String()
	if prefix != "" {
		prefix += ": "
	}
	if d.Code == "" {
		return fmt.Sprintf("%s%s: %s", prefix, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s%s %s: %s", prefix, d.Severity, d.Code, d.Message)
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// HasErrors reports whether any diagnostic in the list is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsError() {
			return true
		}
	}
	return false
}
