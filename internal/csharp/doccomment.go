// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/petar-djukic/cs2ts/internal/syntax"
)

// docXML mirrors the sections of an XML documentation comment that are
// carried into the output. Inner XML is kept so that <see> and <c> elements
// survive for the translator to rewrite.
type docXML struct {
	Summary    docText    `xml:"summary"`
	Remarks    docText    `xml:"remarks"`
	Example    docText    `xml:"example"`
	Returns    docText    `xml:"returns"`
	Params     []docNamed `xml:"param"`
	TypeParams []docNamed `xml:"typeparam"`
	Exceptions []docCref  `xml:"exception"`
}

type docText struct {
	Inner string `xml:",innerxml"`
}

type docNamed struct {
	Name  string `xml:"name,attr"`
	Inner string `xml:",innerxml"`
}

type docCref struct {
	Cref  string `xml:"cref,attr"`
	Inner string `xml:",innerxml"`
}

// bareCrefPattern matches cref attributes written without a "X:" kind prefix.
var bareCrefPattern = regexp.MustCompile(`cref\s*=\s*"([^":]+)"`)

// qualifyCrefs adds the kind prefix the compiler would give a cref: "M:" for
// anything with a parameter list, "T:" otherwise.
func qualifyCrefs(s string) string {
	return bareCrefPattern.ReplaceAllStringFunc(s, func(m string) string {
		ref := bareCrefPattern.FindStringSubmatch(m)[1]
		if strings.Contains(ref, "(") {
			return `cref="M:` + ref + `"`
		}
		return `cref="T:` + ref + `"`
	})
}

// parseDocComment turns the text of consecutive "///" comment lines into a
// DocComment. Malformed XML yields nil.
func parseDocComment(lines []string) *syntax.DocComment {
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("<doc>")
	for _, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "///")
		b.WriteString(strings.TrimPrefix(l, " "))
		b.WriteByte('\n')
	}
	b.WriteString("</doc>")

	var x docXML
	if err := xml.Unmarshal([]byte(qualifyCrefs(b.String())), &x); err != nil {
		return nil
	}
	d := &syntax.DocComment{
		Summary: cleanDocText(x.Summary.Inner),
		Remarks: cleanDocText(x.Remarks.Inner),
		Example: cleanDocText(x.Example.Inner),
		Returns: cleanDocText(x.Returns.Inner),
	}
	for _, p := range x.Params {
		d.Params = append(d.Params, syntax.DocEntry{Name: p.Name, Text: cleanDocText(p.Inner)})
	}
	for _, p := range x.TypeParams {
		d.TypeParams = append(d.TypeParams, syntax.DocEntry{Name: p.Name, Text: cleanDocText(p.Inner)})
	}
	for _, e := range x.Exceptions {
		cref := e.Cref
		if len(cref) > 2 && cref[1] == ':' {
			cref = cref[2:]
		}
		d.Exceptions = append(d.Exceptions, syntax.DocEntry{Name: cref, Text: cleanDocText(e.Inner)})
	}
	if d.IsEmpty() {
		return nil
	}
	return d
}

// cleanDocText collapses the line structure of a section into single spaces.
func cleanDocText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
