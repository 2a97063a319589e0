// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
)

func (v *Visitor) literal(x *syntax.Literal) tsast.Expr {
	switch x.Kind {
	case syntax.StringLiteral:
		return tsast.Str(stringLiteralBody(x.Text))
	case syntax.CharLiteral:
		return tsast.Str(escapeString(x.ValueText))
	case syntax.NumericLiteral:
		n, err := parseNumber(x.Text)
		if err != nil {
			v.report(LiteralNotSupported(v.loc(x), x.Text))
			return nil
		}
		return n
	case syntax.TrueLiteral:
		return &tsast.BoolLiteral{Value: true}
	case syntax.FalseLiteral:
		return &tsast.BoolLiteral{Value: false}
	case syntax.NullLiteral:
		return &tsast.Null{}
	default:
		v.report(LiteralNotSupported(v.loc(x), x.Text))
		return nil
	}
}

// stringLiteralBody converts the raw token of a string literal into the body
// of a single-quoted TypeScript string. Regular strings share their escape
// sequences with TypeScript; verbatim strings (@"...") are decoded, since
// their only escape is the doubled quote, and escaped again.
func stringLiteralBody(raw string) string {
	verbatim := strings.HasPrefix(raw, "@")
	s := strings.TrimPrefix(raw, "@")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	if verbatim {
		return escapeString(strings.ReplaceAll(s, `""`, `"`))
	}
	return escapeSingleQuotes(s)
}

// escapeSingleQuotes escapes bare ' characters in an already escaped body,
// leaving existing escape sequences alone.
func escapeSingleQuotes(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			b.WriteByte(c)
			i++
			b.WriteByte(s[i])
		case c == '\'':
			b.WriteString(`\'`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapeString escapes a decoded value for a single-quoted string.
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseNumber converts a numeric token. Hex tokens become hex literals;
// everything else, including binary tokens, is written as a decimal.
func parseNumber(text string) (*tsast.NumberLiteral, error) {
	s := strings.ReplaceAll(text, "_", "")
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		digits := strings.TrimRight(lower[2:], "ul")
		n, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return nil, err
		}
		return tsast.Hex(n), nil
	case strings.HasPrefix(lower, "0b"):
		digits := strings.TrimRight(lower[2:], "ul")
		n, err := strconv.ParseUint(digits, 2, 64)
		if err != nil {
			return nil, err
		}
		return tsast.Num(float64(n)), nil
	default:
		f, err := strconv.ParseFloat(strings.TrimRight(lower, "ulfdm"), 64)
		if err != nil {
			return nil, err
		}
		return tsast.Num(f), nil
	}
}
