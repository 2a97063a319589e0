// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOutput(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommit_StagesOnlyGivenFiles(t *testing.T) {
	dir := initTestRepo(t)
	order := writeOutput(t, dir, "out/Order.ts", "class Order {\n}\n")
	writeOutput(t, dir, "notes.txt", "unrelated\n")

	repo, err := Open(filepath.Join(dir, "out"))
	require.NoError(t, err)

	hash, err := repo.Commit([]string{order}, "src")
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	generated, err := repo.IsGeneratedCommit()
	require.NoError(t, err)
	assert.True(t, generated)

	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := r.Worktree()
	require.NoError(t, err)
	status, err := wt.Status()
	require.NoError(t, err)
	assert.True(t, status.IsUntracked("notes.txt"))
	_, pending := status["out/Order.ts"]
	assert.False(t, pending, "committed file is clean")
}

func TestCommit_NothingToCommit(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)

	hash, err := repo.Commit(nil, "src")
	require.NoError(t, err)
	assert.Empty(t, hash)

	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCommit_OutsideRepo(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)

	outside := writeOutput(t, t.TempDir(), "Stray.ts", "class Stray {\n}\n")
	_, err = repo.Commit([]string{outside}, "src")
	assert.ErrorIs(t, err, ErrOutsideRepo)
}

func TestUndo_RevertsGeneratedCommit(t *testing.T) {
	dir := initTestRepo(t)
	order := writeOutput(t, dir, "out/Order.ts", "class Order {\n}\n")

	repo, err := Open(dir)
	require.NoError(t, err)
	_, err = repo.Commit([]string{order}, "src")
	require.NoError(t, err)

	require.NoError(t, repo.Undo())

	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	content, err := os.ReadFile(order)
	require.NoError(t, err)
	assert.Equal(t, "class Order {\n}\n", string(content), "soft reset keeps the work tree")
}

func TestUndo_RefusesOtherCommit(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Undo(), ErrNotGeneratedCommit)

	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
