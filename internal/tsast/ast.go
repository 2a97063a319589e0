// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tsast defines the TypeScript syntax tree produced by translation and
// renders it to source text.
package tsast

// Node is implemented by every TypeScript node.
type Node interface {
	tsNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// ClassMember is a member of a class body.
type ClassMember interface {
	Node
	classMember()
}

// ---- Module ----

// Module is one emitted .ts file.
type Module struct {
	Imports []*Import
	Items   []Node // Declarations and statements in source order
}

// Import is `import { A, B } from 'path';`.
type Import struct {
	Names []string
	From  string
}

// ---- Types ----

// TypeRef is a type annotation: a name, optional type arguments, and an array
// depth (`T[][]` has depth 2).
type TypeRef struct {
	Name       string
	Args       []*TypeRef
	ArrayDepth int
}

// ---- Declarations ----

// Modifiers common to class members.
type Modifiers struct {
	Access   string // "", "public", "protected", "private"
	Static   bool
	Abstract bool
	Readonly bool
}

// ClassDecl is a class declaration.
type ClassDecl struct {
	Doc        *JSDoc
	Exported   bool
	Abstract   bool
	Name       string
	TypeParams []string
	Extends    *TypeRef
	Implements []*TypeRef
	Members    []ClassMember
}

// InterfaceDecl is an interface declaration.
type InterfaceDecl struct {
	Doc        *JSDoc
	Exported   bool
	Name       string
	TypeParams []string
	Extends    []*TypeRef
	Members    []ClassMember // Only signatures: methods without bodies and variables
}

// EnumDecl is an enum declaration.
type EnumDecl struct {
	Doc      *JSDoc
	Exported bool
	Name     string
	Members  []*EnumMember
}

// EnumMember is one enum constant.
type EnumMember struct {
	Doc   *JSDoc
	Name  string
	Value Expr // May be nil
}

// MemberVariable is a class field.
type MemberVariable struct {
	Doc  *JSDoc
	Mods Modifiers
	Name string
	Type *TypeRef
	Init Expr
}

// MethodDecl is a class method. A nil Body emits a signature.
type MethodDecl struct {
	Doc        *JSDoc
	Mods       Modifiers
	Name       string
	TypeParams []string
	Params     []*Param
	ReturnType *TypeRef
	Body       *Block
}

// ConstructorDecl is a class constructor.
type ConstructorDecl struct {
	Doc    *JSDoc
	Mods   Modifiers
	Params []*Param
	Body   *Block
}

// GetAccessor is `get name(): T { ... }`.
type GetAccessor struct {
	Doc  *JSDoc
	Mods Modifiers
	Name string
	Type *TypeRef
	Body *Block
}

// SetAccessor is `set name(value: T) { ... }`.
type SetAccessor struct {
	Doc   *JSDoc
	Mods  Modifiers
	Name  string
	Param *Param
	Body  *Block
}

// Param is a function parameter.
type Param struct {
	Name     string
	Type     *TypeRef
	Optional bool
	Rest     bool
	Default  Expr
}

// ---- Statements ----

// Block is `{ ... }`.
type Block struct {
	Stmts []Stmt
}

// ExprStmt is an expression statement.
type ExprStmt struct {
	Expr Expr
}

// VarDecl is a `let` or `const` declaration.
type VarDecl struct {
	Const bool
	Decls []*VarBinding
}

// VarBinding is one name in a VarDecl.
type VarBinding struct {
	Name string
	Type *TypeRef
	Init Expr
}

// Return is `return expr;`.
type Return struct {
	Expr Expr // May be nil
}

// If is an if statement.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // May be nil
}

// While is a while loop.
type While struct {
	Cond Expr
	Body Stmt
}

// Throw is `throw expr;`.
type Throw struct {
	Expr Expr
}

// Break is `break;`.
type Break struct{}

// Continue is `continue;`.
type Continue struct{}

// ---- Expressions ----

// Identifier is a name.
type Identifier struct {
	Name string
}

// This is the `this` keyword.
type This struct{}

// MemberDot is `Left.Name`.
type MemberDot struct {
	Left Expr
	Name string
}

// MemberBracket is `Left[Index]`.
type MemberBracket struct {
	Left  Expr
	Index Expr
}

// Call is `Callee(Args)`.
type Call struct {
	Callee Expr
	Args   []Expr
}

// New is `new Callee(Args)`.
type New struct {
	Callee Expr
	Args   []Expr
}

// ArrayLiteral is `[a, b]`.
type ArrayLiteral struct {
	Elements []Expr
}

// ObjectLiteral is `{ key: value }`.
type ObjectLiteral struct {
	Props []*Property
}

// Property is one entry of an ObjectLiteral.
type Property struct {
	Key   string
	Value Expr
}

// QuoteKind selects the string literal delimiter.
type QuoteKind int

const (
	SingleQuote QuoteKind = iota
	DoubleQuote
)

// StringLiteral holds the string body already escaped for the chosen quote,
// without delimiters.
type StringLiteral struct {
	Value string
	Quote QuoteKind
}

// NumberKind selects how a numeric literal is written.
type NumberKind int

const (
	Decimal NumberKind = iota
	HexInteger
)

// NumberLiteral is a numeric literal.
type NumberLiteral struct {
	Value float64
	Kind  NumberKind
	Bits  uint64 // Exact value of a HexInteger; Value may round it
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value bool
}

// Null is `null`.
type Null struct{}

// Paren is `(Expr)`.
type Paren struct {
	Expr Expr
}

// Cast is `<Type>Expr`.
type Cast struct {
	Type *TypeRef
	Expr Expr
}

// Conditional is `Cond ? Then : Else`.
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Assignment is `Left op Right`.
type Assignment struct {
	Left  Expr
	Op    AssignOp
	Right Expr
}

// Binary is `Left op Right`.
type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// Unary is a prefix or postfix unary expression, depending on Op.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Raw is target text inserted verbatim, as produced by inline code.
type Raw struct {
	Text string
}

func (*Module) tsNode() {}
func (*Import) tsNode() {}
func (*TypeRef) tsNode() {}

func (*ClassDecl) tsNode()       {}
func (*InterfaceDecl) tsNode()   {}
func (*EnumDecl) tsNode()        {}
func (*EnumMember) tsNode()      {}
func (*MemberVariable) tsNode()  {}
func (*MethodDecl) tsNode()      {}
func (*ConstructorDecl) tsNode() {}
func (*GetAccessor) tsNode()     {}
func (*SetAccessor) tsNode()     {}
func (*Param) tsNode()           {}

func (*MemberVariable) classMember()  {}
func (*MethodDecl) classMember()      {}
func (*ConstructorDecl) classMember() {}
func (*GetAccessor) classMember()     {}
func (*SetAccessor) classMember()     {}

func (*Block) tsNode()    {}
func (*ExprStmt) tsNode() {}
func (*VarDecl) tsNode()  {}
func (*Return) tsNode()   {}
func (*If) tsNode()       {}
func (*While) tsNode()    {}
func (*Throw) tsNode()    {}
func (*Break) tsNode()    {}
func (*Continue) tsNode() {}

func (*Block) stmt()    {}
func (*ExprStmt) stmt() {}
func (*VarDecl) stmt()  {}
func (*Return) stmt()   {}
func (*If) stmt()       {}
func (*While) stmt()    {}
func (*Throw) stmt()    {}
func (*Break) stmt()    {}
func (*Continue) stmt() {}

func (*Identifier) tsNode()    {}
func (*This) tsNode()          {}
func (*MemberDot) tsNode()     {}
func (*MemberBracket) tsNode() {}
func (*Call) tsNode()          {}
func (*New) tsNode()           {}
func (*ArrayLiteral) tsNode()  {}
func (*ObjectLiteral) tsNode() {}
func (*StringLiteral) tsNode() {}
func (*NumberLiteral) tsNode() {}
func (*BoolLiteral) tsNode()   {}
func (*Null) tsNode()          {}
func (*Paren) tsNode()         {}
func (*Cast) tsNode()          {}
func (*Conditional) tsNode()   {}
func (*Assignment) tsNode()    {}
func (*Binary) tsNode()        {}
func (*Unary) tsNode()         {}
func (*Raw) tsNode()           {}

func (*Identifier) expr()    {}
func (*This) expr()          {}
func (*MemberDot) expr()     {}
func (*MemberBracket) expr() {}
func (*Call) expr()          {}
func (*New) expr()           {}
func (*ArrayLiteral) expr()  {}
func (*ObjectLiteral) expr() {}
func (*StringLiteral) expr() {}
func (*NumberLiteral) expr() {}
func (*BoolLiteral) expr()   {}
func (*Null) expr()          {}
func (*Paren) expr()         {}
func (*Cast) expr()          {}
func (*Conditional) expr()   {}
func (*Assignment) expr()    {}
func (*Binary) expr()        {}
func (*Unary) expr()         {}
func (*Raw) expr()           {}

// Id builds an identifier.
func Id(name string) *Identifier { return &Identifier{Name: name} }

// Dot builds `left.name`.
func Dot(left Expr, name string) *MemberDot { return &MemberDot{Left: left, Name: name} }

// Str builds a single-quoted string literal from an already escaped body.
func Str(escaped string) *StringLiteral { return &StringLiteral{Value: escaped} }

// Num builds a decimal number literal.
func Num(v float64) *NumberLiteral { return &NumberLiteral{Value: v} }

// Hex builds a hexadecimal integer literal.
func Hex(v uint64) *NumberLiteral { return &NumberLiteral{Value: float64(v), Kind: HexInteger, Bits: v} }
