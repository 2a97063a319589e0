// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	authorName  = "cs2ts"
	authorEmail = "noreply@cs2ts"
)

// Commit stages exactly the given files and commits them with a message
// naming the source directory. It returns the commit hash, or "" when there
// is nothing to commit.
func (r *Repo) Commit(files []string, sourceDir string) (string, error) {
	if len(files) == 0 {
		return "", nil
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	staged := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := r.rel(f)
		if err != nil {
			return "", err
		}
		if _, err := wt.Add(rel); err != nil {
			return "", fmt.Errorf("staging %s: %w", rel, err)
		}
		staged = append(staged, rel)
	}

	hash, err := wt.Commit(Message(sourceDir, staged), &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return hash.String(), nil
}

// Undo soft-resets HEAD to its parent when HEAD is a cs2ts commit. The
// regenerated files stay in the work tree.
func (r *Repo) Undo() error {
	commit, err := r.head()
	if err != nil {
		return err
	}
	if !containsTrailer(commit.Message) {
		return ErrNotGeneratedCommit
	}
	if commit.NumParents() == 0 {
		return fmt.Errorf("cannot undo: HEAD is the initial commit")
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return fmt.Errorf("getting parent commit: %w", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}
	if err := wt.Reset(&gogit.ResetOptions{Commit: parent.Hash, Mode: gogit.SoftReset}); err != nil {
		return fmt.Errorf("resetting to parent: %w", err)
	}
	return nil
}
