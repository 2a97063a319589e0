// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"strings"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// expandInlineCode substitutes the call site into an [InlineCode] template.
//
// Placeholders:
//
//	{this}       the receiver of an instance call
//	{name}       the argument passed for parameter name
//	{*name}      the arguments from parameter name onward, comma separated
//	{$Ns.Type}   the script name of a type, which is also imported
//	{{ and }}    literal braces
//
// An unknown placeholder reports a warning and returns ok=false, and the
// caller falls back to the normal translation.
func (v *Visitor) expandInlineCode(site syntax.Node, method types.Symbol, template string,
	receiver tsast.Expr, args []tsast.Expr) (tsast.Expr, bool) {
	params := method.Parameters()
	var b strings.Builder

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && strings.HasPrefix(template[i:], "{{"):
			b.WriteByte('{')
			i++
			continue
		case c == '}' && strings.HasPrefix(template[i:], "}}"):
			b.WriteByte('}')
			i++
			continue
		case c != '{':
			b.WriteByte(c)
			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		placeholder := template[i+1 : i+end]
		i += end

		text, ok := v.placeholder(placeholder, params, receiver, args)
		if !ok {
			v.report(UnknownInlineCodePlaceholder(v.loc(site), placeholder, template))
			return nil, false
		}
		if text == "" && strings.HasPrefix(placeholder, "*") {
			trimDanglingComma(&b)
			continue
		}
		b.WriteString(text)
	}
	return &tsast.Raw{Text: b.String()}, true
}

func (v *Visitor) placeholder(name string, params []types.Symbol, receiver tsast.Expr, args []tsast.Expr) (string, bool) {
	switch {
	case name == "this":
		if receiver == nil {
			return "", false
		}
		return tsast.Emit(receiver), true

	case strings.HasPrefix(name, "$"):
		return v.inlineTypeName(name[1:]), true

	case strings.HasPrefix(name, "*"):
		idx := paramIndex(params, name[1:])
		if idx < 0 {
			return "", false
		}
		if idx >= len(args) {
			return "", true
		}
		parts := make([]string, 0, len(args)-idx)
		for _, a := range args[idx:] {
			parts = append(parts, tsast.Emit(a))
		}
		return strings.Join(parts, ", "), true

	default:
		idx := paramIndex(params, name)
		if idx < 0 {
			return "", false
		}
		if idx >= len(args) {
			return "undefined", true
		}
		return tsast.Emit(args[idx]), true
	}
}

// inlineTypeName resolves a fully qualified type name from a template. Types
// no table knows are written as their unqualified name.
func (v *Visitor) inlineTypeName(fullName string) string {
	if sym, ok := v.tables.TypeBySignature(fullName); ok {
		v.addImport(sym)
		return v.scriptName(sym)
	}
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}

// trimDanglingComma removes a trailing ", " left before an empty rest
// expansion, so "[ {first}, {*rest} ]" with no rest arguments yields
// "[ a ]" rather than "[ a,  ]".
func trimDanglingComma(b *strings.Builder) {
	s := strings.TrimRight(b.String(), " ")
	if !strings.HasSuffix(s, ",") {
		return
	}
	s = strings.TrimSuffix(s, ",")
	b.Reset()
	b.WriteString(s)
}
