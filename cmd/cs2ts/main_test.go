// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cs2ts/pkg/transpiler"
)

const counterSource = `namespace App
{
    public class Counter
    {
        private int _value;

        public void Increment()
        {
            _value = _value + 1;
        }
    }
}
`

const configFile = `field-rename-rule: dollarPrefixOnPrivate
overrides:
  - symbol: App.Counter
    scriptName: Tally
operators:
  - method: op_Increment
    name: inc
`

func setup(t *testing.T) (src, out string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := t.TempDir()
	src = filepath.Join(root, "src")
	out = filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "Counter.cs"), []byte(counterSource), 0o644))
	return src, out
}

func execute(args ...string) (stdout, stderr string, err error) {
	cmd := newRootCmd()
	var o, e bytes.Buffer
	cmd.SetOut(&o)
	cmd.SetErr(&e)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return o.String(), e.String(), err
}

func TestVersion(t *testing.T) {
	setup(t)
	out, _, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "cs2ts "+version+"\n", out)
}

func TestTranslate(t *testing.T) {
	src, out := setup(t)

	stdout, stderr, err := execute("translate", "--source", src, "--output", out, "-v")
	require.NoError(t, err, stderr)
	assert.Contains(t, stderr, "created")

	var result transpiler.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.True(t, result.Success)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(out, "Counter.ts"), result.Files[0].Output)

	got, err := os.ReadFile(filepath.Join(out, "Counter.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "class Counter")
	assert.Contains(t, string(got), "increment()")
}

func TestTranslateCheck(t *testing.T) {
	src, out := setup(t)

	_, stderr, err := execute("translate", "--source", src, "--output", out, "--check")
	assert.ErrorIs(t, err, errOutOfDate)
	assert.Contains(t, stderr, "out of date")

	_, _, err = execute("translate", "--source", src, "--output", out)
	require.NoError(t, err)
	_, _, err = execute("translate", "--source", src, "--output", out, "--check")
	assert.NoError(t, err)
}

func TestTranslateFailures(t *testing.T) {
	src, out := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(src, "Locker.cs"), []byte(`namespace App
{
    public class Locker
    {
        public void Run()
        {
            lock (this) { }
        }
    }
}
`), 0o644))

	_, stderr, err := execute("translate", "--source", src, "--output", out)
	assert.ErrorIs(t, err, errTranslationFailed)
	assert.Contains(t, stderr, "error CS2TS")

	_, _, err = execute("translate", "--source", filepath.Join(src, "missing"), "--output", out)
	assert.ErrorIs(t, err, transpiler.ErrInvalidConfig)
}

func TestConfigFile(t *testing.T) {
	src, out := setup(t)
	cfgPath := filepath.Join(filepath.Dir(src), "cs2ts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configFile), 0o644))

	_, _, err := execute("translate", "--config", cfgPath, "--source", src, "--output", out)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(out, "Counter.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "class Tally")
	assert.Contains(t, string(got), "this.$")

	cfg, err := transpilerConfig()
	require.NoError(t, err)
	assert.Equal(t, "dollarPrefixOnPrivate", cfg.FieldRenameRule)
	assert.Equal(t, map[string]string{"App.Counter": "Tally"}, cfg.ScriptNameOverrides)
	assert.Equal(t, map[string]string{"op_Increment": "inc"}, cfg.OperatorNames)
}

func TestConfigFileMissing(t *testing.T) {
	setup(t)
	_, _, err := execute("version", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSymbols(t *testing.T) {
	src, out := setup(t)

	stdout, _, err := execute("symbols", "--source", src, "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "SYMBOL")
	assert.Contains(t, stdout, "App.Counter")

	stdout, _, err = execute("symbols", "--source", src, "--output", out, "--json")
	require.NoError(t, err)
	var entries []transpiler.SymbolEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	assert.NotEmpty(t, entries)
}

func TestUndoWithoutRepo(t *testing.T) {
	_, out := setup(t)
	require.NoError(t, os.MkdirAll(out, 0o755))
	_, _, err := execute("undo", "--output", out)
	assert.Error(t, err)
}
