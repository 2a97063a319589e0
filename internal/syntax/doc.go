// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

// DocComment is the structured content of an XML documentation comment. The
// text fields keep inline XML such as <see cref="..."/> untouched.
type DocComment struct {
	Summary    string
	Remarks    string
	Example    string
	Returns    string
	Params     []DocEntry // <param name="x">
	TypeParams []DocEntry // <typeparam name="T">
	Exceptions []DocEntry // <exception cref="T:Ns.Type">; Name holds the cref without prefix
}

// DocEntry is a named section of a documentation comment.
type DocEntry struct {
	Name string
	Text string
}

// IsEmpty reports whether the comment carries no content.
func (d *DocComment) IsEmpty() bool {
	return d == nil || (d.Summary == "" && d.Remarks == "" && d.Example == "" && d.Returns == "" &&
		len(d.Params) == 0 && len(d.TypeParams) == 0 && len(d.Exceptions) == 0)
}
