// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFixtures creates a small C# project tree for the scanner tests.
func setupFixtures(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFixture(t, root, "Program.cs", `namespace App { public class Program { } }`)
	writeFixture(t, root, "Model/Order.cs", `namespace App.Model { public class Order { } }`)
	writeFixture(t, root, "Model/Customer.CS", `namespace App.Model { public class Customer { } }`)
	writeFixture(t, root, "Broken.cs", `class Broken { void M( { }`)
	writeFixture(t, root, "README.md", "not source")

	// Skipped directories.
	writeFixture(t, root, "bin/Debug/Gen.cs", `class Gen { }`)
	writeFixture(t, root, "obj/Temp.cs", `class Temp { }`)
	writeFixture(t, root, ".git/Hook.cs", `class Hook { }`)

	// Ignored by .gitignore, at the root and nested.
	writeFixture(t, root, ".gitignore", "Generated/\n*.g.cs\n")
	writeFixture(t, root, "Generated/Proxy.cs", `class Proxy { }`)
	writeFixture(t, root, "Model/Order.g.cs", `class OrderGen { }`)
	writeFixture(t, root, "Legacy/.gitignore", "Old.cs\n")
	writeFixture(t, root, "Legacy/Old.cs", `class Old { }`)
	writeFixture(t, root, "Legacy/Current.cs", `class Current { }`)

	return root
}

func writeFixture(t *testing.T, root, relPath, content string) {
	t.Helper()
	fullPath := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
}

func relPaths(t *testing.T, root string, result *ScanResult) []string {
	t.Helper()
	var out []string
	for _, f := range result.Files {
		rel, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestScanDir(t *testing.T) {
	root := setupFixtures(t)
	result, err := ScanDir(context.Background(), root, 2)
	require.NoError(t, err)

	tests := []struct {
		name  string
		check func(t *testing.T, result *ScanResult)
	}{
		{
			name: "finds source files sorted by path",
			check: func(t *testing.T, result *ScanResult) {
				assert.Equal(t, []string{
					"Broken.cs",
					"Legacy/Current.cs",
					"Model/Customer.CS",
					"Model/Order.cs",
					"Program.cs",
				}, relPaths(t, root, result))
			},
		},
		{
			name: "syntax errors stay with the file",
			check: func(t *testing.T, result *ScanResult) {
				assert.Empty(t, result.Errors)
				for _, f := range result.Files {
					if filepath.Base(f.Path) == "Broken.cs" {
						assert.NotEmpty(t, f.Diags)
						return
					}
				}
				t.Fatal("Broken.cs not scanned")
			},
		},
		{
			name: "every file has a tree",
			check: func(t *testing.T, result *ScanResult) {
				for _, f := range result.Files {
					assert.NotNil(t, f.Tree, f.Path)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, result)
		})
	}
}

func TestScanDirErrors(t *testing.T) {
	_, err := ScanDir(context.Background(), filepath.Join(t.TempDir(), "missing"), 1)
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "File.cs")
	require.NoError(t, os.WriteFile(file, []byte("class A { }"), 0o644))
	_, err = ScanDir(context.Background(), file, 1)
	assert.Error(t, err)
}

func TestScanDirCancelled(t *testing.T) {
	root := setupFixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScanDir(ctx, root, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFilesReportsUnreadable(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "A.cs", "class A { }")
	missing := filepath.Join(root, "Missing.cs")

	files, errs := ParseFiles(context.Background(), []string{filepath.Join(root, "A.cs"), missing}, 0)
	require.Len(t, files, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, missing, errs[0].FilePath)
	assert.True(t, errors.Is(errs[0].Err, os.ErrNotExist))

	diags := (&ScanResult{Errors: errs}).Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, CodeUnreadableFile, diags[0].Code)
	assert.Equal(t, missing, diags[0].Location.FilePath)
}
