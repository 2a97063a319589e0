// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package naming

import "github.com/petar-djukic/cs2ts/pkg/types"

// nativeTypes maps host types that have a TypeScript primitive counterpart.
var nativeTypes = map[string]string{
	"System.Boolean": "boolean",
	"System.Byte":    "number",
	"System.SByte":   "number",
	"System.Char":    "number",
	"System.Int16":   "number",
	"System.UInt16":  "number",
	"System.Int32":   "number",
	"System.UInt32":  "number",
	"System.Int64":   "number",
	"System.UInt64":  "number",
	"System.Single":  "number",
	"System.Double":  "number",
	"System.Decimal": "number",
	"System.String":  "string",
	"System.Object":  "any",
	"System.Void":    "void",
}

// keywordTypes maps host keyword type names to their full type names.
var keywordTypes = map[string]string{
	"bool":    "System.Boolean",
	"byte":    "System.Byte",
	"sbyte":   "System.SByte",
	"char":    "System.Char",
	"short":   "System.Int16",
	"ushort":  "System.UInt16",
	"int":     "System.Int32",
	"uint":    "System.UInt32",
	"long":    "System.Int64",
	"ulong":   "System.UInt64",
	"float":   "System.Single",
	"double":  "System.Double",
	"decimal": "System.Decimal",
	"string":  "System.String",
	"object":  "System.Object",
	"void":    "System.Void",
}

// NativeTypeName reports the TypeScript primitive a type translates to.
func NativeTypeName(t types.Symbol) (string, bool) {
	if t == nil || t.Kind() != types.NamedType {
		return "", false
	}
	name, ok := nativeTypes[t.Signature()]
	return name, ok
}

// KeywordTypeName returns the full host type name for a keyword such as "int".
func KeywordTypeName(keyword string) (string, bool) {
	name, ok := keywordTypes[keyword]
	return name, ok
}

// IsNativeType reports whether t translates to a TypeScript primitive.
func IsNativeType(t types.Symbol) bool {
	_, ok := NativeTypeName(t)
	return ok
}

// KeywordNativeName returns the TypeScript primitive for a keyword type such
// as "int", without needing a symbol.
func KeywordNativeName(keyword string) (string, bool) {
	full, ok := keywordTypes[keyword]
	if !ok {
		return "", false
	}
	name, ok := nativeTypes[full]
	return name, ok
}
