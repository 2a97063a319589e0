// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package transpiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cs2ts/internal/translate"
)

const orderSource = `using Acme.Widgets;

namespace Shop
{
    public class Order
    {
        private int _count;

        public Widget Make()
        {
            return new Widget();
        }

        public int Total()
        {
            return _count + 1;
        }
    }
}
`

const lineSource = `namespace Shop.Models
{
    public class Line
    {
        public string Sku;
    }
}
`

const lockSource = `namespace Shop
{
    public class Locker
    {
        public void Run()
        {
            lock (this) { }
        }
    }
}
`

const widgetsManifest = `assembly: Widgets
scriptAssembly: widgets-lib
types:
  - name: Acme.Widgets.Widget
    scriptName: AcmeWidget
    members:
      - {kind: constructor}
`

type project struct {
	src, out, manifest string
}

func newProject(t *testing.T, files map[string]string) project {
	t.Helper()
	root := t.TempDir()
	p := project{
		src:      filepath.Join(root, "src"),
		out:      filepath.Join(root, "out"),
		manifest: filepath.Join(root, "widgets.yaml"),
	}
	for rel, content := range files {
		path := filepath.Join(p.src, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	require.NoError(t, os.WriteFile(p.manifest, []byte(widgetsManifest), 0o644))
	return p
}

func (p project) config() Config {
	return Config{
		SourceDir:   p.src,
		OutputDir:   p.out,
		References:  []string{p.manifest},
		Concurrency: 2,
	}
}

func TestNewInvalidConfig(t *testing.T) {
	p := newProject(t, map[string]string{"Order.cs": orderSource})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing source dir", func(c *Config) { c.SourceDir = "" }},
		{"source dir does not exist", func(c *Config) { c.SourceDir = filepath.Join(p.src, "nope") }},
		{"source dir is a file", func(c *Config) { c.SourceDir = filepath.Join(p.src, "Order.cs") }},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }},
		{"unknown field rule", func(c *Config) { c.FieldRenameRule = "upperCase" }},
		{"unknown operator", func(c *Config) { c.OperatorNames = map[string]string{"op_Spaceship": "cmp"} }},
		{"commit in check mode", func(c *Config) { c.Commit, c.Check = true, true }},
		{"missing reference", func(c *Config) { c.References = []string{filepath.Join(p.src, "missing.yaml")} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := p.config()
			tt.mutate(&cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestRun(t *testing.T) {
	p := newProject(t, map[string]string{
		"Order.cs":       orderSource,
		"Models/Line.cs": lineSource,
	})
	tr, err := New(p.config())
	require.NoError(t, err)

	res, err := tr.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success, "%v", res.Diagnostics)
	assert.True(t, res.Changed)
	assert.Zero(t, res.Errors)
	require.Len(t, res.Files, 2)

	assert.Equal(t, filepath.Join(p.src, "Models", "Line.cs"), res.Files[0].Source)
	assert.Equal(t, filepath.Join(p.out, "Models", "Line.ts"), res.Files[0].Output)
	assert.Equal(t, "created", res.Files[0].Status)

	got, err := os.ReadFile(filepath.Join(p.out, "Order.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "import { AcmeWidget } from 'widgets-lib';")
	assert.Contains(t, string(got), "class Order")
	assert.Contains(t, string(got), "total()")

	again, err := tr.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, again.Changed)
	for _, f := range again.Files {
		assert.Equal(t, "unchanged", f.Status)
	}
}

func TestRunCheck(t *testing.T) {
	p := newProject(t, map[string]string{"Models/Line.cs": lineSource})
	cfg := p.config()
	cfg.Check = true
	tr, err := New(cfg)
	require.NoError(t, err)

	res, err := tr.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.True(t, res.Changed)
	assert.Equal(t, "created", res.Files[0].Status)
	assert.NotEmpty(t, res.Files[0].Diff)

	_, err = os.Stat(p.out)
	assert.True(t, os.IsNotExist(err), "check mode writes nothing")
}

func TestRunDiagnostics(t *testing.T) {
	p := newProject(t, map[string]string{
		"Locker.cs":      lockSource,
		"Models/Line.cs": lineSource,
	})
	tr, err := New(p.config())
	require.NoError(t, err)

	res, err := tr.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Positive(t, res.Errors)

	var codes []string
	for _, d := range res.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, translate.CodeTranslationNotSupported)

	cfg := p.config()
	cfg.SuppressedCodes = []string{translate.CodeTranslationNotSupported}
	tr, err = New(cfg)
	require.NoError(t, err)
	res, err = tr.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success, "%v", res.Diagnostics)
}

func TestRunNoSources(t *testing.T) {
	p := newProject(t, map[string]string{"README.md": "# nothing here"})
	tr, err := New(p.config())
	require.NoError(t, err)

	_, err = tr.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestSymbols(t *testing.T) {
	p := newProject(t, map[string]string{
		"Order.cs":       orderSource,
		"Models/Line.cs": lineSource,
	})
	cfg := p.config()
	cfg.ScriptNameOverrides = map[string]string{"Shop.Models.Line": "OrderLine"}
	tr, err := New(cfg)
	require.NoError(t, err)

	entries, err := tr.Symbols(context.Background())
	require.NoError(t, err)

	bySig := make(map[string]SymbolEntry, len(entries))
	for i, e := range entries {
		bySig[e.Signature] = e
		if i > 0 {
			assert.Less(t, entries[i-1].Signature, e.Signature, "entries are sorted")
		}
	}

	order := bySig["Shop.Order"]
	assert.Equal(t, "Order", order.ScriptName)
	assert.Equal(t, "document", order.Tier)
	assert.Equal(t, filepath.Join(p.out, "Order.ts"), order.Import)

	line := bySig["Shop.Models.Line"]
	assert.Equal(t, "OrderLine", line.ScriptName)
	assert.Equal(t, "override", line.Tier)

	widget := bySig["Acme.Widgets.Widget"]
	assert.Equal(t, "AcmeWidget", widget.ScriptName)
	assert.Equal(t, "direct", widget.Tier)
	assert.Equal(t, "widgets-lib", widget.Import)

	_, err = os.Stat(p.out)
	assert.True(t, os.IsNotExist(err), "listing symbols writes nothing")
}

func TestRunCommit(t *testing.T) {
	p := newProject(t, map[string]string{"Models/Line.cs": lineSource})
	_, err := gogit.PlainInit(filepath.Dir(p.src), false)
	require.NoError(t, err)

	cfg := p.config()
	cfg.Commit = true
	tr, err := New(cfg)
	require.NoError(t, err)

	res, err := tr.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Commit, 40)

	r, err := gogit.PlainOpen(filepath.Dir(p.src))
	require.NoError(t, err)
	head, err := r.Head()
	require.NoError(t, err)
	commit, err := r.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Contains(t, commit.Message, "- out/Models/Line.ts")

	again, err := tr.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, again.Commit, "nothing changed, nothing committed")
}

func TestRunCommitWithoutRepo(t *testing.T) {
	p := newProject(t, map[string]string{"Models/Line.cs": lineSource})
	cfg := p.config()
	cfg.Commit = true
	tr, err := New(cfg)
	require.NoError(t, err)

	res, err := tr.Run(context.Background())
	assert.Error(t, err)
	require.NotNil(t, res, "the translation result is still reported")
	assert.True(t, res.Changed)
}
