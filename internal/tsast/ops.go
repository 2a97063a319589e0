// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tsast

// UnaryOp is a TypeScript unary operator.
type UnaryOp int

const (
	Plus UnaryOp = iota
	Minus
	BitwiseNot
	LogicalNot
	PrefixIncrement
	PrefixDecrement
	PostfixIncrement
	PostfixDecrement
	Typeof
	Delete
	Void
)

var unaryTokens = map[UnaryOp]string{
	Plus:             "+",
	Minus:            "-",
	BitwiseNot:       "~",
	LogicalNot:       "!",
	PrefixIncrement:  "++",
	PrefixDecrement:  "--",
	PostfixIncrement: "++",
	PostfixDecrement: "--",
	Typeof:           "typeof ",
	Delete:           "delete ",
	Void:             "void ",
}

func (op UnaryOp) String() string { return unaryTokens[op] }

// IsPostfix reports whether the operator follows its operand.
func (op UnaryOp) IsPostfix() bool {
	return op == PostfixIncrement || op == PostfixDecrement
}

// BinaryOp is a TypeScript binary operator.
type BinaryOp int

const (
	Multiply BinaryOp = iota
	Divide
	Modulo
	Add
	Subtract
	LeftShift
	SignedRightShift
	UnsignedRightShift
	LessThan
	GreaterThan
	LessThanEqual
	GreaterThanEqual
	InstanceOf
	In
	Equals
	NotEquals
	StrictEquals
	StrictNotEquals
	BitwiseAnd
	BitwiseXor
	BitwiseOr
	LogicalAnd
	LogicalOr
)

var binaryTokens = map[BinaryOp]string{
	Multiply:           "*",
	Divide:             "/",
	Modulo:             "%",
	Add:                "+",
	Subtract:           "-",
	LeftShift:          "<<",
	SignedRightShift:   ">>",
	UnsignedRightShift: ">>>",
	LessThan:           "<",
	GreaterThan:        ">",
	LessThanEqual:      "<=",
	GreaterThanEqual:   ">=",
	InstanceOf:         "instanceof",
	In:                 "in",
	Equals:             "==",
	NotEquals:          "!=",
	StrictEquals:       "===",
	StrictNotEquals:    "!==",
	BitwiseAnd:         "&",
	BitwiseXor:         "^",
	BitwiseOr:          "|",
	LogicalAnd:         "&&",
	LogicalOr:          "||",
}

func (op BinaryOp) String() string { return binaryTokens[op] }

// AssignOp is a TypeScript assignment operator.
type AssignOp int

const (
	SimpleAssign AssignOp = iota
	MultiplyAssign
	DivideAssign
	ModuloAssign
	AddAssign
	SubtractAssign
	LeftShiftAssign
	SignedRightShiftAssign
	UnsignedRightShiftAssign
	BitwiseAndAssign
	BitwiseXorAssign
	BitwiseOrAssign
)

var assignTokens = map[AssignOp]string{
	SimpleAssign:             "=",
	MultiplyAssign:           "*=",
	DivideAssign:             "/=",
	ModuloAssign:             "%=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	LeftShiftAssign:          "<<=",
	SignedRightShiftAssign:   ">>=",
	UnsignedRightShiftAssign: ">>>=",
	BitwiseAndAssign:         "&=",
	BitwiseXorAssign:         "^=",
	BitwiseOrAssign:          "|=",
}

func (op AssignOp) String() string { return assignTokens[op] }
