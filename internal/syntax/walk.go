// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

// Inspect traverses the tree rooted at n in depth-first order, calling f for
// each node. If f returns false, the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if !isNil(c) {
				out = append(out, c)
			}
		}
	}

	switch x := n.(type) {
	case *CompilationUnit:
		add(x.Members...)
	case *NamespaceDecl:
		add(x.Members...)
	case *TypeDecl:
		add(attrs(x.Attributes)...)
		add(typeRefs(x.BaseTypes)...)
		add(x.Members...)
	case *FieldDecl:
		add(attrs(x.Attributes)...)
		add(x.Type)
		for _, v := range x.Variables {
			add(v)
		}
	case *VariableDeclarator:
		add(x.Initializer)
	case *MethodDecl:
		add(attrs(x.Attributes)...)
		add(x.ReturnType)
		for _, p := range x.Parameters {
			add(p)
		}
		add(x.Body, x.ExpressionBody)
	case *ConstructorDecl:
		add(attrs(x.Attributes)...)
		for _, p := range x.Parameters {
			add(p)
		}
		add(x.Body)
	case *PropertyDecl:
		add(attrs(x.Attributes)...)
		add(x.Type, x.Getter, x.Setter, x.ExpressionBody, x.Initializer)
	case *Accessor:
		add(attrs(x.Attributes)...)
		add(x.Body, x.ExpressionBody)
	case *EnumMemberDecl:
		add(attrs(x.Attributes)...)
		add(x.Value)
	case *Parameter:
		add(attrs(x.Attributes)...)
		add(x.Type, x.Default)
	case *TypeRef:
		add(typeRefs(x.TypeArgs)...)
	case *Block:
		add(x.Statements...)
	case *ExpressionStatement:
		add(x.Expr)
	case *LocalDeclaration:
		add(x.Type)
		for _, v := range x.Variables {
			add(v)
		}
	case *ReturnStatement:
		add(x.Expr)
	case *IfStatement:
		add(x.Condition, x.Then, x.Else)
	case *WhileStatement:
		add(x.Condition, x.Body)
	case *ThrowStatement:
		add(x.Expr)
	case *MemberAccess:
		add(x.Expr)
	case *ElementAccess:
		add(x.Expr)
		add(args(x.Index)...)
	case *Argument:
		add(x.Expr)
	case *Invocation:
		add(x.Expr)
		add(args(x.Args)...)
	case *ObjectCreation:
		add(x.Type)
		add(args(x.Args)...)
		add(x.Initializer)
	case *ArrayCreation:
		add(x.ElementType)
		for _, rank := range x.Sizes {
			add(rank...)
		}
		add(x.Initializer)
	case *ImplicitArrayCreation:
		add(x.Initializer)
	case *Initializer:
		add(x.Expressions...)
	case *Parenthesized:
		add(x.Expr)
	case *Cast:
		add(x.Type, x.Expr)
	case *TypeOf:
		add(x.Type)
	case *Default:
		add(x.Type)
	case *Conditional:
		add(x.Condition, x.WhenTrue, x.WhenFalse)
	case *Assignment:
		add(x.Left, x.Right)
	case *Binary:
		add(x.Left, x.Right)
	case *PrefixUnary:
		add(x.Operand)
	case *PostfixUnary:
		add(x.Operand)
	}
	return out
}

func attrs(list []*Attribute) []Node {
	out := make([]Node, 0, len(list))
	for _, a := range list {
		out = append(out, a)
	}
	return out
}

func typeRefs(list []*TypeRef) []Node {
	out := make([]Node, 0, len(list))
	for _, t := range list {
		out = append(out, t)
	}
	return out
}

func args(list []*Argument) []Node {
	out := make([]Node, 0, len(list))
	for _, a := range list {
		out = append(out, a)
	}
	return out
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch x := n.(type) {
	case *Block:
		return x == nil
	case *TypeRef:
		return x == nil
	case *Initializer:
		return x == nil
	case *Accessor:
		return x == nil
	case *VariableDeclarator:
		return x == nil
	case *Parameter:
		return x == nil
	case *Argument:
		return x == nil
	case *Attribute:
		return x == nil
	}
	return false
}

// IsNil reports whether n is nil or a typed nil pointer of one of the node
// types that appear in optional fields.
func IsNil(n Node) bool { return isNil(n) }
