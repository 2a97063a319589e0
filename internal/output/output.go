// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output writes translated modules to disk, or compares them with
// what is already there.
package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/petar-djukic/cs2ts/internal/compiler"
	"github.com/petar-djukic/cs2ts/internal/tsast"
)

// Status describes what happened, or would happen, to one output file.
type Status int

const (
	Unchanged Status = iota
	Created
	Updated
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Created:
		return "created"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}

// FileChange records the outcome for one module.
type FileChange struct {
	Path   string
	Status Status
	Diff   string // Patch text against the existing file; set in check mode
}

// Options controls Write.
type Options struct {
	Check       bool           // Compare only; never touch the file system
	EmitOptions tsast.EmitOptions
}

// Write renders every translated module and writes it to its output path.
// Units without a module are skipped. Files whose content would not change
// are left alone. In check mode nothing is written and each changed file
// carries a patch against its current content.
func Write(ctx context.Context, units []compiler.UnitResult, opts Options) ([]FileChange, error) {
	var changes []FileChange
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return changes, err
		}
		if u.Module == nil {
			continue
		}
		content := tsast.EmitWith(u.Module, opts.EmitOptions)
		change, err := apply(u.OutputPath, content, opts.Check)
		if err != nil {
			return changes, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

func apply(path, content string, check bool) (FileChange, error) {
	change := FileChange{Path: path}
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		change.Status = Created
	case err != nil:
		return change, fmt.Errorf("reading %s: %w", path, err)
	case bytes.Equal(existing, []byte(content)):
		return change, nil
	default:
		change.Status = Updated
	}

	if check {
		change.Diff = Diff(string(existing), content)
		return change, nil
	}
	if err := tsast.WriteFile(path, []byte(content)); err != nil {
		return change, err
	}
	return change, nil
}

// Diff returns a patch that turns before into after, in the textual patch
// format of diff-match-patch. Equal inputs yield an empty string.
func Diff(before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.PatchToText(dmp.PatchMake(before, diffs))
}

// Changed reports whether any change is not Unchanged.
func Changed(changes []FileChange) bool {
	for _, c := range changes {
		if c.Status != Unchanged {
			return true
		}
	}
	return false
}
