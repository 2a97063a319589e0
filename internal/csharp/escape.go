// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var simpleEscapes = map[byte]rune{
	'\'': '\'', '"': '"', '\\': '\\', '0': 0, 'a': '\a', 'b': '\b',
	'f': '\f', 'n': '\n', 'r': '\r', 't': '\t', 'v': '\v',
}

// unescape decodes the escape sequences of a regular string or character
// literal body. Malformed sequences are kept as written.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		esc := s[i+1]
		if r, ok := simpleEscapes[esc]; ok {
			b.WriteRune(r)
			i++
			continue
		}
		var digits, maxDigits int
		switch esc {
		case 'u':
			maxDigits = 4
		case 'U':
			maxDigits = 8
		case 'x':
			maxDigits = 4
		default:
			b.WriteByte(s[i])
			continue
		}
		j := i + 2
		for j < len(s) && digits < maxDigits && isHex(s[j]) {
			j++
			digits++
		}
		if digits == 0 || (esc != 'x' && digits != maxDigits) {
			b.WriteByte(s[i])
			continue
		}
		v, err := strconv.ParseUint(s[i+2:j], 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			b.WriteString(s[i:j])
		} else {
			b.WriteRune(rune(v))
		}
		i = j - 1
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
