// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	x = Id("x")
	y = Id("y")
)

func TestEmit_Expressions(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{name: "member dot", node: Dot(x, "y"), want: "x.y"},
		{name: "member bracket", node: &MemberBracket{Left: x, Index: Str("throw")}, want: "x['throw']"},
		{name: "call", node: &Call{Callee: x, Args: []Expr{y, Num(10)}}, want: "x(y, 10)"},
		{name: "new", node: &New{Callee: Id("Array"), Args: []Expr{Id("n")}}, want: "new Array(n)"},
		{name: "empty array", node: &ArrayLiteral{}, want: "[]"},
		{name: "array", node: &ArrayLiteral{Elements: []Expr{x, Num(10)}}, want: "[x, 10]"},
		{name: "empty object", node: &ObjectLiteral{}, want: "{}"},
		{name: "object", node: &ObjectLiteral{Props: []*Property{{Key: "a", Value: Num(1)}, {Key: "'b'", Value: y}}}, want: "{ a: 1, 'b': y }"},
		{name: "single quoted", node: Str("single"), want: "'single'"},
		{name: "double quoted", node: &StringLiteral{Value: "double", Quote: DoubleQuote}, want: `"double"`},
		{name: "integer", node: Num(123), want: "123"},
		{name: "scaled integer", node: Num(1.23e4), want: "12300"},
		{name: "large exponent", node: Num(83e45), want: "8.3E+46"},
		{name: "small exponent", node: Num(53e-53), want: "5.3E-52"},
		{name: "fraction", node: Num(1.5), want: "1.5"},
		{name: "hex", node: Hex(415), want: "0x19f"},
		{name: "hex beef", node: Hex(48879), want: "0xbeef"},
		{name: "hex max uint64", node: Hex(0xFFFFFFFFFFFFFFFF), want: "0xffffffffffffffff"},
		{name: "true", node: &BoolLiteral{Value: true}, want: "true"},
		{name: "null", node: &Null{}, want: "null"},
		{name: "this", node: Dot(&This{}, "x"), want: "this.x"},
		{name: "paren", node: &Paren{Expr: &Binary{Left: x, Op: Add, Right: y}}, want: "(x + y)"},
		{name: "cast", node: &Cast{Type: &TypeRef{Name: "number"}, Expr: x}, want: "<number>x"},
		{name: "conditional", node: &Conditional{Cond: x, Then: y, Else: &Null{}}, want: "x ? y : null"},
		{name: "strict equals", node: &Binary{Left: x, Op: StrictEquals, Right: y}, want: "x === y"},
		{name: "logical or", node: &Binary{Left: x, Op: LogicalOr, Right: y}, want: "x || y"},
		{name: "prefix", node: &Unary{Op: PrefixIncrement, Operand: x}, want: "++x"},
		{name: "postfix", node: &Unary{Op: PostfixDecrement, Operand: x}, want: "x--"},
		{name: "typeof", node: &Unary{Op: Typeof, Operand: x}, want: "typeof x"},
		{name: "raw", node: &Raw{Text: "$.doThis()"}, want: "$.doThis()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Emit(tt.node))
		})
	}
}

func TestEmit_AssignmentOperators(t *testing.T) {
	tests := []struct {
		op   AssignOp
		want string
	}{
		{SimpleAssign, "x = y"},
		{AddAssign, "x += y"},
		{SubtractAssign, "x -= y"},
		{MultiplyAssign, "x *= y"},
		{DivideAssign, "x /= y"},
		{ModuloAssign, "x %= y"},
		{LeftShiftAssign, "x <<= y"},
		{SignedRightShiftAssign, "x >>= y"},
		{UnsignedRightShiftAssign, "x >>>= y"},
		{BitwiseAndAssign, "x &= y"},
		{BitwiseXorAssign, "x ^= y"},
		{BitwiseOrAssign, "x |= y"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Emit(&Assignment{Left: x, Op: tt.op, Right: y}))
	}
}

func TestEmit_Statements(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{name: "let", node: &VarDecl{Decls: []*VarBinding{{Name: "a", Type: &TypeRef{Name: "number"}, Init: Num(1)}}}, want: "let a: number = 1;"},
		{name: "const", node: &VarDecl{Const: true, Decls: []*VarBinding{{Name: "a", Init: Num(1)}, {Name: "b"}}}, want: "const a = 1, b;"},
		{name: "return", node: &Return{Expr: x}, want: "return x;"},
		{name: "bare return", node: &Return{}, want: "return;"},
		{name: "throw", node: &Throw{Expr: &New{Callee: Id("Error")}}, want: "throw new Error();"},
		{name: "break", node: &Break{}, want: "break;"},
		{name: "empty block", node: &Block{}, want: "{ }"},
		{
			name: "if else",
			node: &If{Cond: x, Then: &Block{Stmts: []Stmt{&Return{Expr: y}}}, Else: &Block{Stmts: []Stmt{&Break{}}}},
			want: "if (x) {\n    return y;\n} else {\n    break;\n}",
		},
		{
			name: "if without braces",
			node: &If{Cond: x, Then: &Return{}},
			want: "if (x)\n    return;",
		},
		{
			name: "while",
			node: &While{Cond: x, Body: &Block{Stmts: []Stmt{&Continue{}}}},
			want: "while (x) {\n    continue;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Emit(tt.node))
		})
	}
}

func TestEmit_Module(t *testing.T) {
	m := &Module{
		Imports: []*Import{{Names: []string{"Gadget"}, From: "./Gadget"}},
		Items: []Node{
			&ClassDecl{
				Doc:      &JSDoc{Description: "A widget.", Params: []DocTag{{Name: "x", Text: "the x"}}},
				Exported: true,
				Name:     "Widget",
				Extends:  &TypeRef{Name: "Gadget"},
				Members: []ClassMember{
					&MemberVariable{Mods: Modifiers{Access: "private"}, Name: "size", Type: &TypeRef{Name: "number"}},
					&MemberVariable{Mods: Modifiers{Static: true}, Name: "count", Type: &TypeRef{Name: "number"}, Init: Num(0)},
					&ConstructorDecl{Params: []*Param{{Name: "size", Type: &TypeRef{Name: "number"}}}},
					&MethodDecl{
						Name:       "items",
						Params:     []*Param{{Name: "n", Type: &TypeRef{Name: "number"}, Optional: true}},
						ReturnType: &TypeRef{Name: "string", ArrayDepth: 1},
						Body:       &Block{Stmts: []Stmt{&Return{Expr: &ArrayLiteral{}}}},
					},
				},
			},
			&EnumDecl{Exported: true, Name: "Color", Members: []*EnumMember{{Name: "Red"}, {Name: "Blue", Value: Num(2)}}},
		},
	}

	want := `import { Gadget } from './Gadget';

/**
 * A widget.
 * @param x the x
 */
export class Widget extends Gadget {
    private size: number;
    static count: number = 0;

    constructor(size: number) { }

    items(n?: number): string[] {
        return [];
    }
}

export enum Color {
    Red,
    Blue = 2
}
`
	assert.Equal(t, want, Emit(m))
}

func TestEmit_Interface(t *testing.T) {
	d := &InterfaceDecl{
		Name:    "IShape",
		Members: []ClassMember{&MethodDecl{Name: "area", ReturnType: &TypeRef{Name: "number"}, Body: &Block{}}},
	}
	assert.Equal(t, "interface IShape {\n    area(): number;\n}", Emit(d))
}

func TestJSDoc_Lines(t *testing.T) {
	d := &JSDoc{
		Description: "Line one\nline two",
		Returns:     "the result",
		Throws:      []DocTag{{Name: "ArgumentException", Text: "when bad"}},
		TypeParams:  []DocTag{{Name: "T", Text: "item"}},
	}
	assert.Equal(t, []string{
		"Line one",
		"line two",
		"@typeparam T item",
		"@returns the result",
		"@throws {ArgumentException} when bad",
	}, d.lines())
	assert.True(t, (*JSDoc)(nil).IsEmpty())
	assert.True(t, (&JSDoc{}).IsEmpty())
}
