// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/tsast"
)

var (
	seeLangwordPattern = regexp.MustCompile(`(?is)<see\s+langword\s*=\s*"([^"]+)"\s*/>`)
	codeTagPattern     = regexp.MustCompile(`(?is)<c>([^<]*)</c>`)
	seeTypePattern     = regexp.MustCompile(`(?is)<see(?:also)?\s+cref\s*=\s*"T:((?:\w+\.?)+)"\s*/>`)
	seeMemberPattern   = regexp.MustCompile(`(?is)<see(?:also)?\s+cref\s*=\s*"[MPEF]:((?:\w+\.)+)(\w+)[^"]*"\s*/>`)
)

func (v *Visitor) docComment(d *syntax.DocComment) *tsast.JSDoc {
	return TranslateDocComment(d)
}

// TranslateDocComment converts an XML documentation comment into a JSDoc
// block. Remarks are appended to the summary to form the description. It
// returns nil for an empty comment.
func TranslateDocComment(d *syntax.DocComment) *tsast.JSDoc {
	if d.IsEmpty() {
		return nil
	}

	description := d.Summary
	if d.Remarks != "" {
		if description == "" {
			description = d.Remarks
		} else {
			description += "\n" + d.Remarks
		}
	}

	doc := &tsast.JSDoc{
		Description: rewriteDocText(description),
		Example:     d.Example,
		Returns:     rewriteDocText(d.Returns),
	}
	for _, p := range d.Params {
		doc.Params = append(doc.Params, tsast.DocTag{Name: p.Name, Text: rewriteDocText(p.Text)})
	}
	for _, p := range d.TypeParams {
		doc.TypeParams = append(doc.TypeParams, tsast.DocTag{Name: p.Name, Text: rewriteDocText(p.Text)})
	}
	for _, e := range d.Exceptions {
		doc.Throws = append(doc.Throws, tsast.DocTag{Name: removeNamespace(e.Name), Text: rewriteDocText(e.Text)})
	}
	return doc
}

// rewriteDocText replaces the inline XML tags JSDoc has an equivalent for.
func rewriteDocText(text string) string {
	if text == "" {
		return ""
	}
	text = seeLangwordPattern.ReplaceAllString(text, "`$1`")
	text = codeTagPattern.ReplaceAllString(text, "`$1`")
	text = seeTypePattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := seeTypePattern.FindStringSubmatch(m)
		return "{@link " + removeNamespace(sub[1]) + "}"
	})
	text = seeMemberPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := seeMemberPattern.FindStringSubmatch(m)
		return "{@link " + removeNamespace(sub[1]) + "." + sub[2] + "}"
	})
	return text
}

// removeNamespace keeps the last dotted segment of a type name. A leading
// "T:" documentation ID prefix is dropped.
func removeNamespace(fullName string) string {
	if len(fullName) > 2 && fullName[1] == ':' {
		fullName = fullName[2:]
	}
	fullName = strings.TrimRight(fullName, ".")
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
