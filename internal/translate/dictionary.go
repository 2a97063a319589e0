// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"strings"
	"unicode"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

const jsDictionary = "JsDictionary"

// dictionaryLiteral translates constructions of JsDictionary into object
// literals:
//
//	new JsDictionary()                          → {}
//	new JsDictionary("a", 1, "b", 2)            → { a: 1, b: 2 }
//	new JsDictionary<string, int> { { "a", 1 } } → { a: 1 }
//
// handled is false when x is not a dictionary construction of that shape.
func (v *Visitor) dictionaryLiteral(x *syntax.ObjectCreation, args []tsast.Expr) (lit tsast.Expr, handled bool) {
	if !v.isJsDictionary(x) || len(args)%2 != 0 {
		return nil, false
	}

	obj := &tsast.ObjectLiteral{}
	for i := 0; i < len(args); i += 2 {
		key, ok := propertyKey(args[i])
		if !ok {
			v.report(TranslationNotSupported(v.loc(x), "JsDictionary with a computed key"))
			return nil, true
		}
		obj.Props = append(obj.Props, &tsast.Property{Key: key, Value: args[i+1]})
	}

	if x.Initializer != nil {
		for _, e := range x.Initializer.Expressions {
			pair, ok := e.(*syntax.Initializer)
			if !ok || len(pair.Expressions) != 2 {
				v.report(TranslationNotSupported(v.loc(e), "JsDictionary initializer entry"))
				return nil, true
			}
			k, val := v.expr(pair.Expressions[0]), v.expr(pair.Expressions[1])
			if k == nil || val == nil {
				return nil, true
			}
			key, ok := propertyKey(k)
			if !ok {
				v.report(TranslationNotSupported(v.loc(e), "JsDictionary with a computed key"))
				return nil, true
			}
			obj.Props = append(obj.Props, &tsast.Property{Key: key, Value: val})
		}
	}
	return obj, true
}

func (v *Visitor) isJsDictionary(x *syntax.ObjectCreation) bool {
	var typ types.Symbol
	if ctor := v.model.SymbolInfo(x); ctor != nil {
		typ = ctor.ContainingType()
	}
	if typ == nil && x.Type != nil {
		typ = v.model.SymbolInfo(x.Type)
	}
	if typ != nil {
		return typ.Name() == jsDictionary && strings.HasPrefix(typ.Signature(), "System.Collections.")
	}
	if x.Type == nil {
		return false
	}
	name := x.Type.Name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name == jsDictionary
}

// propertyKey turns a string literal into an object literal key, bare when it
// is a valid identifier.
func propertyKey(e tsast.Expr) (string, bool) {
	s, ok := e.(*tsast.StringLiteral)
	if !ok {
		return "", false
	}
	if isIdentifier(s.Value) {
		return s.Value, true
	}
	return tsast.Emit(s), true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
