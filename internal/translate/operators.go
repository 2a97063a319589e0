// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

var binaryOperators = map[string]tsast.BinaryOp{
	"*":   tsast.Multiply,
	"/":   tsast.Divide,
	"%":   tsast.Modulo,
	"+":   tsast.Add,
	"-":   tsast.Subtract,
	"<<":  tsast.LeftShift,
	">>":  tsast.SignedRightShift,
	">>>": tsast.UnsignedRightShift,
	"<":   tsast.LessThan,
	">":   tsast.GreaterThan,
	"<=":  tsast.LessThanEqual,
	">=":  tsast.GreaterThanEqual,
	"==":  tsast.StrictEquals,
	"!=":  tsast.StrictNotEquals,
	"&":   tsast.BitwiseAnd,
	"^":   tsast.BitwiseXor,
	"|":   tsast.BitwiseOr,
	"&&":  tsast.LogicalAnd,
	"||":  tsast.LogicalOr,
	"??":  tsast.LogicalOr,
}

var assignmentOperators = map[string]tsast.AssignOp{
	"=":    tsast.SimpleAssign,
	"*=":   tsast.MultiplyAssign,
	"/=":   tsast.DivideAssign,
	"%=":   tsast.ModuloAssign,
	"+=":   tsast.AddAssign,
	"-=":   tsast.SubtractAssign,
	"<<=":  tsast.LeftShiftAssign,
	">>=":  tsast.SignedRightShiftAssign,
	">>>=": tsast.UnsignedRightShiftAssign,
	"&=":   tsast.BitwiseAndAssign,
	"^=":   tsast.BitwiseXorAssign,
	"|=":   tsast.BitwiseOrAssign,
}

var prefixOperators = map[string]tsast.UnaryOp{
	"++": tsast.PrefixIncrement,
	"--": tsast.PrefixDecrement,
	"+":  tsast.Plus,
	"-":  tsast.Minus,
	"~":  tsast.BitwiseNot,
	"!":  tsast.LogicalNot,
}

var postfixOperators = map[string]tsast.UnaryOp{
	"++": tsast.PostfixIncrement,
	"--": tsast.PostfixDecrement,
}

func (v *Visitor) binary(x *syntax.Binary) tsast.Expr {
	left, right := v.expr(x.Left), v.expr(x.Right)
	if left == nil || right == nil {
		return nil
	}
	op, ok := binaryOperators[x.Operator]
	if !ok {
		v.report(OperatorKindNotSupported(v.loc(x), x.Operator))
		op = tsast.Add
	}
	return &tsast.Binary{Left: left, Op: op, Right: right}
}

func (v *Visitor) assignment(x *syntax.Assignment) tsast.Expr {
	left, right := v.expr(x.Left), v.expr(x.Right)
	if left == nil || right == nil {
		return nil
	}
	op, ok := assignmentOperators[x.Operator]
	if !ok {
		v.report(OperatorKindNotSupported(v.loc(x), x.Operator))
		op = tsast.SimpleAssign
	}
	return &tsast.Assignment{Left: left, Op: op, Right: right}
}

// prefixUnary also handles user-defined operators, which become calls to the
// overload function named by the rename rules.
func (v *Visitor) prefixUnary(x *syntax.PrefixUnary) tsast.Expr {
	operand := v.expr(x.Operand)
	if operand == nil {
		return nil
	}

	if sym := v.model.SymbolInfo(x); sym != nil && sym.Kind() == types.Method &&
		sym.MethodKind() == types.UserDefinedOperator {
		return v.operatorOverloadCall(x, sym, operand)
	}

	op, ok := prefixOperators[x.Operator]
	if !ok {
		v.report(OperatorKindNotSupported(v.loc(x), x.Operator))
		op = tsast.Plus
	}
	return &tsast.Unary{Op: op, Operand: operand}
}

// postfixUnary rewrites user-defined ++ and -- the same way prefixUnary does.
func (v *Visitor) postfixUnary(x *syntax.PostfixUnary) tsast.Expr {
	operand := v.expr(x.Operand)
	if operand == nil {
		return nil
	}

	if sym := v.model.SymbolInfo(x); sym != nil && sym.Kind() == types.Method &&
		sym.MethodKind() == types.UserDefinedOperator {
		return v.operatorOverloadCall(x, sym, operand)
	}

	op, ok := postfixOperators[x.Operator]
	if !ok {
		v.report(OperatorKindNotSupported(v.loc(x), x.Operator))
		op = tsast.Plus
	}
	return &tsast.Unary{Op: op, Operand: operand}
}

func (v *Visitor) operatorOverloadCall(x syntax.Node, method types.Symbol, operand tsast.Expr) tsast.Expr {
	kind, ok := types.OperatorKindFromMethodName(method.Name())
	var fn string
	if ok {
		fn, ok = v.tables.Resolver.Rules().OperatorFunctionName(kind)
	}
	if !ok {
		v.report(OperatorOverloadNotSupported(v.loc(x), method.Name()))
		name := v.tables.ScriptNames.GetOrDefault(method, "Error")
		return &tsast.Call{Callee: tsast.Id(string(name))}
	}
	return &tsast.Call{
		Callee: v.identifierFor(method, x, fn),
		Args:   []tsast.Expr{operand},
	}
}
