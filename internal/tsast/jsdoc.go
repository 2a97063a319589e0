// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tsast

// JSDoc is a `/** ... */` block attached before a declaration.
type JSDoc struct {
	Description string
	Example     string
	Params      []DocTag
	TypeParams  []DocTag
	Returns     string
	Throws      []DocTag // Name holds the exception type
}

// DocTag is a named tag such as `@param name text`.
type DocTag struct {
	Name string
	Text string
}

// IsEmpty reports whether the block has no content.
func (d *JSDoc) IsEmpty() bool {
	return d == nil || (d.Description == "" && d.Example == "" && len(d.Params) == 0 &&
		len(d.TypeParams) == 0 && d.Returns == "" && len(d.Throws) == 0)
}

// lines renders the block body, one entry per output line, without the
// leading " * ".
func (d *JSDoc) lines() []string {
	var out []string
	add := func(prefix, text string) {
		first := true
		for _, l := range splitLines(text) {
			if first {
				out = append(out, joinNonEmpty(prefix, l))
				first = false
				continue
			}
			out = append(out, l)
		}
		if first && prefix != "" {
			out = append(out, prefix)
		}
	}
	if d.Description != "" {
		add("", d.Description)
	}
	if d.Example != "" {
		add("@example", d.Example)
	}
	for _, p := range d.Params {
		add("@param "+p.Name, p.Text)
	}
	for _, p := range d.TypeParams {
		add("@typeparam "+p.Name, p.Text)
	}
	if d.Returns != "" {
		add("@returns", d.Returns)
	}
	for _, t := range d.Throws {
		add("@throws {"+t.Name+"}", t.Text)
	}
	return out
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, trimCR(s[start:i]))
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, trimCR(s[start:]))
	}
	return out
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}
