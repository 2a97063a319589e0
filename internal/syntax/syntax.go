// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syntax defines the host-language (C#) syntax tree consumed by the
// translator, together with the front-end boundary: Unit and SemanticModel.
// The node set is closed; the translator matches on concrete node types and
// treats anything else as unsupported.
package syntax

import "github.com/petar-djukic/cs2ts/pkg/types"

// Position is a point in a source file. Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
	Offset int // Byte offset from the start of the file
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Span is a half-open source range.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether pos lies inside the span.
func (s Span) Contains(pos Position) bool {
	return !pos.Before(s.Start) && pos.Before(s.End)
}

// Node is implemented by every syntax node. All nodes are used as pointers so
// that they can key semantic-model lookups.
type Node interface {
	Span() Span
	isNode()
}

// NodeInfo carries the data common to all nodes. Embed it in every node type.
type NodeInfo struct {
	Range Span
}

// Span returns the node's source range.
func (n NodeInfo) Span() Span { return n.Range }

func (NodeInfo) isNode() {}

// At builds a NodeInfo starting at the given 1-based line and column. The end
// is placed on the same line one column later, which is enough for lookups.
func At(line, column int) NodeInfo {
	return NodeInfo{Range: Span{
		Start: Position{Line: line, Column: column},
		End:   Position{Line: line, Column: column + 1},
	}}
}

// Modifiers lists declaration modifiers as written ("public", "static", ...).
type Modifiers []string

// Has reports whether the modifier is present.
func (m Modifiers) Has(name string) bool {
	for _, s := range m {
		if s == name {
			return true
		}
	}
	return false
}

// Attribute is an attribute as written on a declaration.
type Attribute struct {
	NodeInfo
	Name string   // Attribute name without the "Attribute" suffix
	Args []string // Positional arguments; string literals are unquoted
}

// ---- Declarations ----

// CompilationUnit is the root of a parsed source file.
type CompilationUnit struct {
	NodeInfo
	Usings  []string
	Members []Node
}

// NamespaceDecl groups declarations under a dotted name.
type NamespaceDecl struct {
	NodeInfo
	Name    string
	Members []Node
}

// TypeDecl declares a class, struct, interface, or enum.
type TypeDecl struct {
	NodeInfo
	TypeKind   types.TypeKind
	Name       string
	Modifiers  Modifiers
	Attributes []*Attribute
	TypeParams []string
	BaseTypes  []*TypeRef
	Members    []Node
	Doc        *DocComment
}

// FieldDecl declares one or more fields sharing a type.
type FieldDecl struct {
	NodeInfo
	Modifiers  Modifiers
	Attributes []*Attribute
	Type       *TypeRef
	Variables  []*VariableDeclarator
	Doc        *DocComment
}

// VariableDeclarator is one name in a field or local declaration.
type VariableDeclarator struct {
	NodeInfo
	Name        string
	Initializer Node // May be nil
}

// MethodDecl declares a method or a user-defined operator.
type MethodDecl struct {
	NodeInfo
	Modifiers      Modifiers
	Attributes     []*Attribute
	ReturnType     *TypeRef
	Name           string
	TypeParams     []string
	Parameters     []*Parameter
	Body           *Block // Nil for abstract/extern/interface methods
	ExpressionBody Node   // "=> expr" bodies
	Doc            *DocComment
}

// ConstructorDecl declares an instance or static constructor.
type ConstructorDecl struct {
	NodeInfo
	Modifiers  Modifiers
	Attributes []*Attribute
	Name       string
	Parameters []*Parameter
	Body       *Block
	Doc        *DocComment
}

// PropertyDecl declares a property. A property whose accessors have no
// bodies is an auto-property.
type PropertyDecl struct {
	NodeInfo
	Modifiers      Modifiers
	Attributes     []*Attribute
	Type           *TypeRef
	Name           string
	Getter         *Accessor
	Setter         *Accessor
	ExpressionBody Node // "=> expr" getter-only properties
	Initializer    Node
	Doc            *DocComment
}

// IsAuto reports whether the property has no accessor bodies.
func (p *PropertyDecl) IsAuto() bool {
	if p.ExpressionBody != nil {
		return false
	}
	for _, a := range []*Accessor{p.Getter, p.Setter} {
		if a != nil && (a.Body != nil || a.ExpressionBody != nil) {
			return false
		}
	}
	return true
}

// Accessor is a get or set accessor.
type Accessor struct {
	NodeInfo
	Attributes     []*Attribute
	Body           *Block
	ExpressionBody Node
}

// EnumMemberDecl declares an enum constant.
type EnumMemberDecl struct {
	NodeInfo
	Attributes []*Attribute
	Name       string
	Value      Node // May be nil
	Doc        *DocComment
}

// Parameter is a method parameter.
type Parameter struct {
	NodeInfo
	Modifiers  Modifiers // "params", "ref", "out"
	Attributes []*Attribute
	Type       *TypeRef
	Name       string
	Default    Node // May be nil
}

// TypeRef is a type as written in source: a (possibly qualified) name with
// optional type arguments and array rank specifiers.
type TypeRef struct {
	NodeInfo
	Name       string
	Predefined bool // Keyword types such as int or string
	TypeArgs   []*TypeRef
	ArrayRanks []int // One entry per rank specifier; value is its dimension count
}

// ---- Statements ----

// Block is a brace-delimited statement list.
type Block struct {
	NodeInfo
	Statements []Node
}

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	NodeInfo
	Expr Node
}

// LocalDeclaration declares local variables.
type LocalDeclaration struct {
	NodeInfo
	IsConst   bool
	Type      *TypeRef // Name "var" for implicitly typed locals
	Variables []*VariableDeclarator
}

// ReturnStatement returns from a method.
type ReturnStatement struct {
	NodeInfo
	Expr Node // May be nil
}

// IfStatement is a conditional.
type IfStatement struct {
	NodeInfo
	Condition Node
	Then      Node
	Else      Node // May be nil
}

// WhileStatement loops while a condition holds.
type WhileStatement struct {
	NodeInfo
	Condition Node
	Body      Node
}

// ThrowStatement raises an exception.
type ThrowStatement struct {
	NodeInfo
	Expr Node // May be nil for a rethrow
}

// BreakStatement exits the enclosing loop.
type BreakStatement struct{ NodeInfo }

// ContinueStatement jumps to the next loop iteration.
type ContinueStatement struct{ NodeInfo }

// ---- Expressions ----

// Identifier is a simple name.
type Identifier struct {
	NodeInfo
	Name string
}

// PredefinedType is a keyword type used as an expression, as in int.Parse.
type PredefinedType struct {
	NodeInfo
	Keyword string
}

// MemberAccess is "Expr.Name".
type MemberAccess struct {
	NodeInfo
	Expr Node
	Name string
}

// ElementAccess is "Expr[Index]".
type ElementAccess struct {
	NodeInfo
	Expr  Node
	Index []*Argument
}

// Argument is an invocation argument.
type Argument struct {
	NodeInfo
	Name string // Named-argument label, empty when positional
	Expr Node
}

// Invocation is a call.
type Invocation struct {
	NodeInfo
	Expr Node
	Args []*Argument
}

// ObjectCreation is "new T(args) { initializer }".
type ObjectCreation struct {
	NodeInfo
	Type        *TypeRef
	Args        []*Argument // Nil when the argument list is omitted
	Initializer *Initializer
}

// ArrayCreation is "new T[size]" or "new T[] { ... }". Sizes holds the size
// expressions of each rank specifier; omitted sizes are nil entries.
type ArrayCreation struct {
	NodeInfo
	ElementType *TypeRef
	Sizes       [][]Node
	Initializer *Initializer
}

// ImplicitArrayCreation is "new[] { ... }".
type ImplicitArrayCreation struct {
	NodeInfo
	Initializer *Initializer
}

// Initializer is a brace-delimited expression list.
type Initializer struct {
	NodeInfo
	Expressions []Node
}

// LiteralKind identifies the literal token type.
type LiteralKind int

const (
	StringLiteral LiteralKind = iota
	CharLiteral
	NumericLiteral
	TrueLiteral
	FalseLiteral
	NullLiteral
)

// Literal is a literal token. Text is the raw token text as written (quotes,
// "@" prefix, and numeric suffixes included); ValueText is the decoded value
// for string and char literals.
type Literal struct {
	NodeInfo
	Kind      LiteralKind
	Text      string
	ValueText string
}

// This is the "this" keyword.
type This struct{ NodeInfo }

// Parenthesized is "(Expr)".
type Parenthesized struct {
	NodeInfo
	Expr Node
}

// Cast is "(Type)Expr".
type Cast struct {
	NodeInfo
	Type *TypeRef
	Expr Node
}

// TypeOf is "typeof(Type)".
type TypeOf struct {
	NodeInfo
	Type *TypeRef
}

// Default is "default(Type)".
type Default struct {
	NodeInfo
	Type *TypeRef
}

// Conditional is "Cond ? WhenTrue : WhenFalse".
type Conditional struct {
	NodeInfo
	Condition Node
	WhenTrue  Node
	WhenFalse Node
}

// Assignment is "Left op Right" for =, +=, and friends.
type Assignment struct {
	NodeInfo
	Left     Node
	Operator string
	Right    Node
}

// Binary is "Left op Right".
type Binary struct {
	NodeInfo
	Left     Node
	Operator string
	Right    Node
}

// PrefixUnary is "op Operand".
type PrefixUnary struct {
	NodeInfo
	Operator string
	Operand  Node
}

// PostfixUnary is "Operand op".
type PostfixUnary struct {
	NodeInfo
	Operand  Node
	Operator string
}

// Unsupported stands for a construct the front end parsed but that has no
// node type here, such as a lambda or a switch statement.
type Unsupported struct {
	NodeInfo
	What string // Front-end node kind, e.g. "lambda_expression"
}
