// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := initTestRepo(t)
	out := filepath.Join(dir, "web", "generated")
	require.NoError(t, os.MkdirAll(out, 0o755))

	repo, err := Open(out)
	require.NoError(t, err)
	assert.Equal(t, dir, repo.Root(), "parent directories are searched")
}

func TestOpen_NotARepo(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.ErrorIs(t, err, ErrNoGit)
}

func TestRel(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)

	got, err := repo.rel(filepath.Join(dir, "out", "Order.ts"))
	require.NoError(t, err)
	assert.Equal(t, "out/Order.ts", got)

	_, err = repo.rel(filepath.Join(filepath.Dir(dir), "elsewhere.ts"))
	assert.ErrorIs(t, err, ErrOutsideRepo)
}

func TestIsGeneratedCommit(t *testing.T) {
	t.Run("cs2ts commit", func(t *testing.T) {
		dir := initTestRepo(t)
		addFileAndCommit(t, dir, "Order.ts", "class Order {\n}\n", Message("src", []string{"Order.ts"}))

		repo, err := Open(dir)
		require.NoError(t, err)
		generated, err := repo.IsGeneratedCommit()
		require.NoError(t, err)
		assert.True(t, generated)
	})

	t.Run("other commit", func(t *testing.T) {
		dir := initTestRepo(t)
		repo, err := Open(dir)
		require.NoError(t, err)
		generated, err := repo.IsGeneratedCommit()
		require.NoError(t, err)
		assert.False(t, generated)
	})
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name        string
		sourceDir   string
		files       []string
		wantSubject string
	}{
		{"one file", "src", []string{"out/Order.ts"}, "build: regenerate 1 TypeScript module from src"},
		{"several files", "/work/app/Scripts/", []string{"a.ts", "b.ts"}, "build: regenerate 2 TypeScript modules from Scripts"},
		{"no source dir", "", []string{"a.ts"}, "build: regenerate 1 TypeScript module"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Message(tt.sourceDir, tt.files)
			assert.Equal(t, tt.wantSubject, firstLineOf(msg))
			for _, f := range tt.files {
				assert.Contains(t, msg, "- "+f)
			}
			assert.True(t, containsTrailer(msg))
		})
	}
}

func TestMessage_LongSubjectTruncated(t *testing.T) {
	msg := Message("/x/AVeryLongSourceDirectoryNameThatKeepsGoingAndGoing", []string{"a.ts"})
	subject := firstLineOf(msg)
	assert.LessOrEqual(t, len(subject), maxSubjectLength)
	assert.Contains(t, subject, "...")
}

// initTestRepo creates a temp dir with a git repo and an initial commit.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := r.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# app\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

// addFileAndCommit adds a file and creates a commit with the given message.
func addFileAndCommit(t *testing.T, dir, name, content, msg string) {
	t.Helper()
	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := r.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func firstLineOf(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}
