// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/syntax/syntaxtest"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

type inlineWorld struct {
	f      *fixture
	widget *syntaxtest.Symbol
	script *syntaxtest.Symbol
	w      *syntax.Identifier
}

func newInlineWorld() *inlineWorld {
	f := newFixture()
	iw := &inlineWorld{f: f}
	iw.widget = f.declare(syntaxtest.NewType(f.app, "Acme.Widget"), 1, 10)
	iw.script = syntaxtest.NewType(f.lib, "System.Script")
	f.direct = []types.Symbol{iw.script}

	iw.w = ident(5, "w")
	f.model.Bind(iw.w, syntaxtest.Local("w", iw.widget))
	return iw
}

// call builds w.Name(args...) bound to a new method with the given template.
func (iw *inlineWorld) call(name, template string, params []string, args ...syntax.Node) *syntax.Invocation {
	var ps []*syntaxtest.Symbol
	for _, p := range params {
		ps = append(ps, syntaxtest.Param(p, nil))
	}
	m := iw.widget.Method(name, ps, syntaxtest.WithAttr(naming.AttrInlineCode, template))

	access := &syntax.MemberAccess{NodeInfo: syntax.At(5, 5), Expr: iw.w, Name: name}
	call := &syntax.Invocation{NodeInfo: syntax.At(5, 5), Expr: access}
	for _, a := range args {
		call.Args = append(call.Args, arg(a))
	}
	iw.f.model.Bind(access, m).Bind(call, m)
	return call
}

func TestInlineCode(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   []string
		args     []syntax.Node
		want     string
	}{
		{name: "receiver and argument", template: "describe({this}, {x})", params: []string{"x"}, args: []syntax.Node{num("5")}, want: "describe(w, 5)"},
		{name: "literal braces", template: "{{ v: {x} }}", params: []string{"x"}, args: []syntax.Node{num("1")}, want: "{ v: 1 }"},
		{name: "missing argument", template: "f({x}, {y})", params: []string{"x", "y"}, args: []syntax.Node{num("1")}, want: "f(1, undefined)"},
		{name: "rest arguments", template: "log({fmt}, {*args})", params: []string{"fmt", "args"}, args: []syntax.Node{str("a"), num("1"), num("2")}, want: "log('a', 1, 2)"},
		{name: "empty rest", template: "log({fmt}, {*args})", params: []string{"fmt", "args"}, args: []syntax.Node{str("a")}, want: "log('a')"},
		{name: "type placeholder", template: "{$System.Script}.clone({this})", want: "Script.clone(w)"},
		{name: "unknown type", template: "{$Other.Thing}.make()", want: "Thing.make()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iw := newInlineWorld()
			got, diags := iw.f.expr(t, iw.call("Op", tt.template, tt.params, tt.args...))
			assert.Equal(t, tt.want, got)
			assert.Empty(t, diags)
		})
	}
}

func TestInlineCode_TypePlaceholderImports(t *testing.T) {
	iw := newInlineWorld()
	v := iw.f.visitor(t)
	require.NotNil(t, v.expr(iw.call("Clone", "{$System.Script}.arrayClone({this})", nil)))
	assert.Equal(t, []types.Symbol{iw.script}, v.Translate().Imports)
}

func TestInlineCode_UnknownPlaceholderFallsBack(t *testing.T) {
	iw := newInlineWorld()
	got, diags := iw.f.expr(t, iw.call("Peek", "peek({nope})", nil))
	assert.Equal(t, "w.peek()", got)
	require.Len(t, diags, 1)
	assert.Equal(t, CodeUnknownInlineCodePlaceholder, diags[0].Code)
	assert.Equal(t, types.SeverityWarning, diags[0].Severity)
}

func TestInlineCode_Constructor(t *testing.T) {
	f := newFixture()
	list := f.declare(syntaxtest.NewType(f.app, "Acme.List"), 1, 10)
	ctor := list.Constructor([]*syntaxtest.Symbol{syntaxtest.Param("capacity", nil)},
		syntaxtest.WithAttr(naming.AttrInlineCode, "new Array({capacity})"))
	listRef := &syntax.TypeRef{NodeInfo: syntax.At(2, 1), Name: "List"}
	f.model.Bind(listRef, list)
	create := &syntax.ObjectCreation{NodeInfo: syntax.At(2, 1), Type: listRef, Args: []*syntax.Argument{arg(num("8"))}}
	f.model.Bind(create, ctor)

	got, diags := f.expr(t, create)
	assert.Equal(t, "new Array(8)", got)
	assert.Empty(t, diags)
}

func TestInlineCode_Override(t *testing.T) {
	iw := newInlineWorld()
	call := iw.call("Size", "size({this})", nil)
	m := iw.f.model.SymbolInfo(call)
	iw.f.opts.Overrides.InlineCode = map[string]string{m.Signature(): "{this}.length"}

	got, diags := iw.f.expr(t, call)
	assert.Equal(t, "w.length", got)
	assert.Empty(t, diags)
}

func TestTrimDanglingComma(t *testing.T) {
	tests := []struct{ in, want string }{
		{"f(a, ", "f(a"},
		{"f(a,", "f(a"},
		{"f(", "f("},
	}
	for _, tt := range tests {
		var b strings.Builder
		b.WriteString(tt.in)
		trimDanglingComma(&b)
		assert.Equal(t, tt.want, b.String(), tt.in)
	}
}
