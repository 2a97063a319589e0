// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package csharp is the C# front end: it discovers and parses source files
// with tree-sitter, converts them into syntax trees, and binds them against
// referenced assembly manifests into per-file semantic models.
package csharp

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/petar-djukic/cs2ts/pkg/types"
)

// skipDirs contains directory names that ScanDir never descends into.
var skipDirs = map[string]bool{
	".git":         true,
	".vs":          true,
	"bin":          true,
	"obj":          true,
	"node_modules": true,
}

// ScanResult holds the output of a directory scan.
type ScanResult struct {
	Root   string
	Files  []*File // Sorted by path
	Errors []ScanError
}

// ScanError records a file that could not be read or parsed.
type ScanError struct {
	FilePath string
	Err      error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

// Diagnostics reports each scan error as an error diagnostic.
func (r *ScanResult) Diagnostics() []types.Diagnostic {
	out := make([]types.Diagnostic, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, unreadableFile(e.FilePath, e.Err))
	}
	return out
}

// ScanDir walks the tree rooted at dir, finds all .cs files, and parses them
// in parallel using a bounded worker pool.
//
// It skips build output and VCS directories and honours .gitignore files at
// any depth. File paths are dir joined with the path relative to it.
//
// Failures for individual files are collected in ScanResult.Errors but do not
// abort the scan. If concurrency <= 0 it defaults to runtime.NumCPU().
func ScanDir(ctx context.Context, dir string, concurrency int) (*ScanResult, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	matcher, err := loadGitignore(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil || rel == "." {
			return nil
		}
		parts := strings.Split(rel, string(filepath.Separator))
		if d.IsDir() {
			if skipDirs[d.Name()] || matcher.Match(parts, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".cs") || matcher.Match(parts, false) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	files, errs := ParseFiles(ctx, paths, concurrency)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &ScanResult{Root: dir, Files: files, Errors: errs}, nil
}

// ParseFiles reads and parses the given files with a bounded worker pool.
// Files that cannot be read or parsed are reported as ScanErrors.
func ParseFiles(ctx context.Context, paths []string, concurrency int) ([]*File, []ScanError) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	type parseResult struct {
		path string
		file *File
		err  error
	}

	jobs := make(chan string, len(paths))
	results := make(chan parseResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if ctx.Err() != nil {
					results <- parseResult{path: path, err: ctx.Err()}
					continue
				}
				src, err := os.ReadFile(path)
				if err != nil {
					results <- parseResult{path: path, err: err}
					continue
				}
				f, err := Parse(ctx, path, src)
				results <- parseResult{path: path, file: f, err: err}
			}
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var files []*File
	var errs []ScanError
	for pr := range results {
		if pr.err != nil {
			errs = append(errs, ScanError{FilePath: pr.path, Err: pr.err})
			continue
		}
		files = append(files, pr.file)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	sort.Slice(errs, func(i, j int) bool { return errs[i].FilePath < errs[j].FilePath })
	return files, errs
}

// loadGitignore reads the .gitignore files under root, nested ones included.
func loadGitignore(root string) (gitignore.Matcher, error) {
	patterns, err := gitignore.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		return nil, fmt.Errorf("reading .gitignore: %w", err)
	}
	return gitignore.NewMatcher(patterns), nil
}
