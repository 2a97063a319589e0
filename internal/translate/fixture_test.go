// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/syntax/syntaxtest"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// fixture is a single-unit compilation assembled by hand. Symbols declared in
// the unit go through declare; types from other units or assemblies go in
// direct.
type fixture struct {
	app    *syntaxtest.Symbol
	lib    *syntaxtest.Symbol
	model  *syntaxtest.Model
	root   *syntax.CompilationUnit
	direct []types.Symbol
	opts   types.Options
}

func newFixture() *fixture {
	return &fixture{
		app:   syntaxtest.NewAssembly("App"),
		lib:   syntaxtest.NewAssembly("mscorlib", syntaxtest.WithAttr(naming.AttrScriptAssembly, "ss")),
		model: syntaxtest.NewModel(),
		root:  &syntax.CompilationUnit{},
		opts:  types.Options{OutputRoot: "out", RenameRules: types.DefaultRenameRules()},
	}
}

// declare adds a type to the unit with a scope covering lines [from, to].
func (f *fixture) declare(typ *syntaxtest.Symbol, from, to int) *syntaxtest.Symbol {
	f.model.Types = append(f.model.Types, typ)
	f.model.Within(from, to, typ)
	return typ
}

func (f *fixture) visitor(t *testing.T) *Visitor {
	t.Helper()
	c := &Context{
		path:       "src/Widget.cs",
		root:       f.root,
		model:      f.model,
		options:    f.opts,
		outputPath: "out/Widget.ts",
	}
	tables, err := naming.BuildTables(context.Background(), []naming.Document{c}, naming.Inputs{
		Direct:    f.direct,
		Rules:     f.opts.RenameRules,
		Overrides: f.opts.Overrides,
	})
	require.NoError(t, err)
	return NewVisitor(c.WithTables(tables))
}

// expr translates n with a fresh visitor. The text is empty when n was
// elided.
func (f *fixture) expr(t *testing.T, n syntax.Node) (string, []types.Diagnostic) {
	t.Helper()
	v := f.visitor(t)
	e := v.expr(n)
	if e == nil {
		return "", v.diags.Items()
	}
	return tsast.Emit(e), v.diags.Items()
}

func codes(ds []types.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}
	return out
}

func ident(line int, name string) *syntax.Identifier {
	return &syntax.Identifier{NodeInfo: syntax.At(line, 5), Name: name}
}

func num(text string) *syntax.Literal {
	return &syntax.Literal{NodeInfo: syntax.At(1, 1), Kind: syntax.NumericLiteral, Text: text}
}

func str(text string) *syntax.Literal {
	return &syntax.Literal{NodeInfo: syntax.At(1, 1), Kind: syntax.StringLiteral, Text: `"` + text + `"`, ValueText: text}
}

func arg(e syntax.Node) *syntax.Argument {
	return &syntax.Argument{NodeInfo: syntax.At(1, 1), Expr: e}
}

func intType() *syntax.TypeRef {
	return &syntax.TypeRef{NodeInfo: syntax.At(1, 1), Name: "int", Predefined: true}
}

// lines spans whole source lines [from, to].
func lines(from, to int) syntax.NodeInfo {
	return syntax.NodeInfo{Range: syntax.Span{
		Start: syntax.Position{Line: from, Column: 1},
		End:   syntax.Position{Line: to + 1, Column: 1},
	}}
}
