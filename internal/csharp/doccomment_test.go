// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cs2ts/internal/syntax"
)

func TestParseDocComment(t *testing.T) {
	doc := parseDocComment([]string{
		"/// <summary>",
		"///   Adds two   numbers.",
		"/// </summary>",
		`/// <param name="a">The first.</param>`,
		`/// <param name="b">The second.</param>`,
		`/// <typeparam name="T">Element type.</typeparam>`,
		"/// <returns>The sum.</returns>",
		`/// <exception cref="T:System.ArgumentException">When bad.</exception>`,
	})
	require.NotNil(t, doc)
	assert.Equal(t, "Adds two numbers.", doc.Summary)
	assert.Equal(t, "The sum.", doc.Returns)
	assert.Equal(t, []syntax.DocEntry{{Name: "a", Text: "The first."}, {Name: "b", Text: "The second."}}, doc.Params)
	assert.Equal(t, []syntax.DocEntry{{Name: "T", Text: "Element type."}}, doc.TypeParams)
	assert.Equal(t, []syntax.DocEntry{{Name: "System.ArgumentException", Text: "When bad."}}, doc.Exceptions)
}

func TestParseDocCommentKeepsInlineElements(t *testing.T) {
	doc := parseDocComment([]string{`/// <summary>Uses <see cref="Widget"/> and <c>x</c>.</summary>`})
	require.NotNil(t, doc)
	assert.Contains(t, doc.Summary, `cref="T:Widget"`)
	assert.Contains(t, doc.Summary, "<c>x</c>")
}

func TestParseDocCommentEmptyOrMalformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no lines", nil},
		{"unclosed element", []string{"/// <summary>oops"}},
		{"no known sections", []string{"/// <unknown>text</unknown>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, parseDocComment(tt.lines))
		})
	}
}

func TestQualifyCrefs(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`<see cref="Foo"/>`, `<see cref="T:Foo"/>`},
		{`<see cref="Foo.Bar(int)"/>`, `<see cref="M:Foo.Bar(int)"/>`},
		{`<see cref="P:Foo.Name"/>`, `<see cref="P:Foo.Name"/>`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, qualifyCrefs(tt.in))
	}
}
