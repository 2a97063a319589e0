// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/syntax/syntaxtest"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

func TestIdentifier_StaticMember(t *testing.T) {
	f := newFixture()
	helper := f.declare(syntaxtest.NewType(f.app, "Acme.Helper"), 1, 10)
	f.declare(syntaxtest.NewType(f.app, "Acme.Widget"), 20, 30)
	compute := helper.Method("Compute", nil, syntaxtest.Static())

	// Compute() inside Helper.
	inside := ident(5, "Compute")
	insideCall := &syntax.Invocation{NodeInfo: syntax.At(5, 5), Expr: inside}
	f.model.Bind(inside, compute).Bind(insideCall, compute)

	// Helper.Compute() inside Widget.
	typeName := ident(25, "Helper")
	access := &syntax.MemberAccess{NodeInfo: syntax.At(25, 5), Expr: typeName, Name: "Compute"}
	outsideCall := &syntax.Invocation{NodeInfo: syntax.At(25, 5), Expr: access}
	f.model.Bind(typeName, helper).Bind(access, compute).Bind(outsideCall, compute)

	got, diags := f.expr(t, insideCall)
	assert.Equal(t, "Helper.compute()", got)
	assert.Empty(t, diags)

	got, diags = f.expr(t, outsideCall)
	assert.Equal(t, "Helper.compute()", got)
	assert.Empty(t, diags)
}

func TestIdentifier_InstanceMember(t *testing.T) {
	f := newFixture()
	widget := f.declare(syntaxtest.NewType(f.app, "Acme.Widget"), 1, 10)
	f.declare(syntaxtest.NewType(f.app, "Acme.Other"), 20, 30)
	x := widget.Field("X")
	obj := syntaxtest.Local("obj", widget)
	p := syntaxtest.Param("count", nil)

	inside := ident(5, "X")
	f.model.Bind(inside, x)

	objRef := ident(25, "obj")
	access := &syntax.MemberAccess{NodeInfo: syntax.At(25, 5), Expr: objRef, Name: "X"}
	f.model.Bind(objRef, obj).Bind(access, x)

	outside := ident(25, "X")
	f.model.Bind(outside, x)

	param := ident(5, "count")
	f.model.Bind(param, p)

	unbound := ident(5, "mystery")

	tests := []struct {
		name string
		node syntax.Node
		want string
	}{
		{name: "field of enclosing type", node: inside, want: "this.x"},
		{name: "field through a local", node: access, want: "obj.x"},
		{name: "field of another type", node: outside, want: "x"},
		{name: "parameter keeps its name", node: param, want: "count"},
		{name: "unresolved name as written", node: unbound, want: "mystery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := f.expr(t, tt.node)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, diags)
		})
	}
}

func TestIdentifier_ImportsExternalTypes(t *testing.T) {
	f := newFixture()
	f.declare(syntaxtest.NewType(f.app, "Acme.Widget"), 1, 10)
	gadget := syntaxtest.NewType(f.lib, "Lib.Gadget")
	create := gadget.Method("Make", nil, syntaxtest.Static())
	f.direct = []types.Symbol{gadget}

	typeName := ident(5, "Gadget")
	access := &syntax.MemberAccess{NodeInfo: syntax.At(5, 5), Expr: typeName, Name: "Make"}
	call := &syntax.Invocation{NodeInfo: syntax.At(5, 5), Expr: access}
	f.model.Bind(typeName, gadget).Bind(access, create).Bind(call, create)

	v := f.visitor(t)
	e := v.expr(call)
	require.NotNil(t, e)
	res := v.Translate()
	assert.Equal(t, []types.Symbol{gadget}, res.Imports)
}

func TestArrayCreation(t *testing.T) {
	f := newFixture()
	n := ident(1, "n")
	f.model.Bind(n, syntaxtest.Local("n", nil))

	tests := []struct {
		name  string
		node  *syntax.ArrayCreation
		want  string
		codes []string
	}{
		{
			name: "zero length",
			node: &syntax.ArrayCreation{ElementType: intType(), Sizes: [][]syntax.Node{{num("0")}}},
			want: "[]",
		},
		{
			name: "sized",
			node: &syntax.ArrayCreation{ElementType: intType(), Sizes: [][]syntax.Node{{n}}},
			want: "new Array(n)",
		},
		{
			name: "initializer",
			node: &syntax.ArrayCreation{
				ElementType: intType(),
				Sizes:       [][]syntax.Node{{nil}},
				Initializer: &syntax.Initializer{Expressions: []syntax.Node{num("1"), num("2"), num("3")}},
			},
			want: "[1, 2, 3]",
		},
		{
			name:  "two dimensions",
			node:  &syntax.ArrayCreation{ElementType: intType(), Sizes: [][]syntax.Node{{num("2"), num("3")}}},
			codes: []string{CodeMultidimensionalArrays},
		},
		{
			name: "two dimensions with initializer",
			node: &syntax.ArrayCreation{
				ElementType: intType(),
				Sizes:       [][]syntax.Node{{nil, nil}},
				Initializer: &syntax.Initializer{Expressions: []syntax.Node{
					&syntax.Initializer{Expressions: []syntax.Node{num("1"), num("2")}},
					&syntax.Initializer{Expressions: []syntax.Node{num("3"), num("4")}},
				}},
			},
			codes: []string{CodeMultidimensionalArrays},
		},
		{
			name:  "nested rank specifiers",
			node:  &syntax.ArrayCreation{ElementType: intType(), Sizes: [][]syntax.Node{{num("2")}, {nil}}},
			codes: []string{CodeMultidimensionalArrays},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := f.expr(t, tt.node)
			assert.Equal(t, tt.want, got)
			if tt.codes == nil {
				assert.Empty(t, diags)
				return
			}
			assert.Equal(t, tt.codes, codes(diags))
		})
	}
}

func TestImplicitArrayCreation(t *testing.T) {
	f := newFixture()
	got, diags := f.expr(t, &syntax.ImplicitArrayCreation{
		Initializer: &syntax.Initializer{Expressions: []syntax.Node{str("a"), str("b")}},
	})
	assert.Equal(t, "['a', 'b']", got)
	assert.Empty(t, diags)
}

func TestTypeExpressions(t *testing.T) {
	f := newFixture()
	widget := f.declare(syntaxtest.NewType(f.app, "Acme.Widget"), 1, 10)
	widgetRef := &syntax.TypeRef{NodeInfo: syntax.At(2, 1), Name: "Widget"}
	f.model.Bind(widgetRef, widget)

	tests := []struct {
		name string
		node syntax.Node
		want string
	}{
		{name: "default of keyword type", node: &syntax.Default{Type: intType()}, want: "ss.getDefaultValue(number)"},
		{name: "default of declared type", node: &syntax.Default{Type: widgetRef}, want: "ss.getDefaultValue(Widget)"},
		{name: "typeof", node: &syntax.TypeOf{Type: widgetRef}, want: "Widget"},
		{name: "cast", node: &syntax.Cast{Type: intType(), Expr: num("1.5")}, want: "<number>1.5"},
		{
			name: "unresolved generic",
			node: &syntax.TypeOf{Type: &syntax.TypeRef{Name: "List", TypeArgs: []*syntax.TypeRef{intType()}}},
			want: "List<number>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := f.expr(t, tt.node)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, diags)
		})
	}
}

func TestInvocation_NamedArguments(t *testing.T) {
	f := newFixture()
	widget := f.declare(syntaxtest.NewType(f.app, "Acme.Widget"), 1, 10)
	resize := widget.Method("Resize", []*syntaxtest.Symbol{
		syntaxtest.Param("width", nil),
		syntaxtest.Param("height", nil),
		syntaxtest.Param("depth", nil),
	}, syntaxtest.Static())

	callee := ident(5, "Resize")
	call := &syntax.Invocation{NodeInfo: syntax.At(5, 5), Expr: callee, Args: []*syntax.Argument{
		arg(num("1")),
		{Name: "depth", Expr: num("3")},
	}}
	f.model.Bind(callee, resize).Bind(call, resize)

	got, diags := f.expr(t, call)
	assert.Equal(t, "Widget.resize(1, undefined, 3)", got)
	assert.Empty(t, diags)

	bad := &syntax.Invocation{NodeInfo: syntax.At(5, 5), Expr: callee, Args: []*syntax.Argument{
		{Name: "nope", Expr: num("3")},
	}}
	f.model.Bind(bad, resize)
	got, diags = f.expr(t, bad)
	assert.Empty(t, got)
	assert.Equal(t, []string{CodeTranslationNotSupported}, codes(diags))
}

func TestElision_PropagatesToStatement(t *testing.T) {
	f := newFixture()
	target := ident(1, "a")
	f.model.Bind(target, syntaxtest.Local("a", nil))

	multidim := &syntax.ArrayCreation{ElementType: intType(), Sizes: [][]syntax.Node{{num("2"), num("3")}}}
	body := &syntax.Block{Statements: []syntax.Node{
		&syntax.ExpressionStatement{Expr: &syntax.Assignment{Left: target, Operator: "=", Right: multidim}},
		&syntax.LocalDeclaration{
			Type: &syntax.TypeRef{Name: "var"},
			Variables: []*syntax.VariableDeclarator{{
				Name:        "b",
				Initializer: &syntax.ArrayCreation{ElementType: intType(), Sizes: [][]syntax.Node{{num("3")}}},
			}},
		},
		&syntax.LocalDeclaration{
			Type:      intType(),
			Variables: []*syntax.VariableDeclarator{{Name: "c", Initializer: &syntax.Unsupported{What: "lambda_expression"}}},
		},
		&syntax.ReturnStatement{Expr: &syntax.Binary{Left: num("1"), Operator: "+", Right: multidim}},
	}}

	v := f.visitor(t)
	b := v.block(body)
	require.NotNil(t, b)
	require.Len(t, b.Stmts, 1)
	assert.Equal(t, []string{
		CodeMultidimensionalArrays,
		CodeTranslationNotSupported,
		CodeMultidimensionalArrays,
	}, codes(v.diags.Items()))
}

func TestObjectCreation(t *testing.T) {
	f := newFixture()
	widget := f.declare(syntaxtest.NewType(f.app, "Acme.Widget"), 1, 10)
	ctor := widget.Constructor([]*syntaxtest.Symbol{syntaxtest.Param("size", nil)})
	widgetRef := &syntax.TypeRef{NodeInfo: syntax.At(2, 1), Name: "Widget"}
	f.model.Bind(widgetRef, widget)

	plain := &syntax.ObjectCreation{NodeInfo: syntax.At(2, 1), Type: widgetRef, Args: []*syntax.Argument{arg(num("4"))}}
	f.model.Bind(plain, ctor)
	got, diags := f.expr(t, plain)
	assert.Equal(t, "new Widget(4)", got)
	assert.Empty(t, diags)

	withInit := &syntax.ObjectCreation{
		NodeInfo:    syntax.At(3, 1),
		Type:        widgetRef,
		Args:        []*syntax.Argument{arg(num("4"))},
		Initializer: &syntax.Initializer{Expressions: []syntax.Node{num("1")}},
	}
	f.model.Bind(withInit, ctor)
	got, diags = f.expr(t, withInit)
	assert.Equal(t, "new Widget(4)", got)
	assert.Equal(t, []string{CodeTranslationNotSupported}, codes(diags))
}

func TestElementAccess(t *testing.T) {
	f := newFixture()
	items := ident(1, "items")
	f.model.Bind(items, syntaxtest.Local("items", nil))

	got, diags := f.expr(t, &syntax.ElementAccess{Expr: items, Index: []*syntax.Argument{arg(num("0"))}})
	assert.Equal(t, "items[0]", got)
	assert.Empty(t, diags)

	got, diags = f.expr(t, &syntax.ElementAccess{Expr: items, Index: []*syntax.Argument{arg(num("0")), arg(num("1"))}})
	assert.Empty(t, got)
	assert.Equal(t, []string{CodeTranslationNotSupported}, codes(diags))
}

func TestConditionalAndParens(t *testing.T) {
	f := newFixture()
	cond := &syntax.Conditional{
		Condition: &syntax.Literal{Kind: syntax.TrueLiteral, Text: "true"},
		WhenTrue:  &syntax.Parenthesized{Expr: &syntax.Binary{Left: num("1"), Operator: "+", Right: num("2")}},
		WhenFalse: &syntax.Literal{Kind: syntax.NullLiteral, Text: "null"},
	}
	got, diags := f.expr(t, cond)
	assert.Equal(t, "true ? (1 + 2) : null", got)
	assert.Empty(t, diags)
}
