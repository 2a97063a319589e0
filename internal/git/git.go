// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git records regenerated TypeScript output as a commit in the
// repository that holds the output directory, and reverts such commits.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// trailer marks commits made by cs2ts.
const trailer = "Generated-By: cs2ts"

var (
	// ErrNoGit is returned when no repository contains the directory.
	ErrNoGit = errors.New("not a git repository")

	// ErrNotGeneratedCommit is returned when undo targets a commit cs2ts did
	// not make.
	ErrNotGeneratedCommit = errors.New("not a cs2ts commit")

	// ErrOutsideRepo is returned for a path outside the work tree.
	ErrOutsideRepo = errors.New("path is outside the repository")
)

// Repo is the repository that contains an output directory.
type Repo struct {
	repo *gogit.Repository
	root string
}

// Open finds the repository containing dir, searching parent directories.
func Open(dir string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Repo{repo: r, root: wt.Filesystem.Root()}, nil
}

// Root returns the work tree root.
func (r *Repo) Root() string { return r.root }

// IsGeneratedCommit reports whether HEAD carries the cs2ts trailer.
func (r *Repo) IsGeneratedCommit() (bool, error) {
	commit, err := r.head()
	if err != nil {
		return false, err
	}
	return containsTrailer(commit.Message), nil
}

func (r *Repo) head() (*object.Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting commit: %w", err)
	}
	return commit, nil
}

// rel turns path into a slash-separated path relative to the work tree.
func (r *Repo) rel(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRepo, path)
	}
	return filepath.ToSlash(rel), nil
}

// commitCount returns the number of commits reachable from HEAD.
func (r *Repo) commitCount() (int, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{})
	if err != nil {
		return 0, err
	}
	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	return count, err
}
