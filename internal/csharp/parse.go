// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// File is one parsed source file.
type File struct {
	Path   string
	Source []byte
	Tree   *syntax.CompilationUnit
	Diags  []types.Diagnostic // Syntax errors
}

// Parse parses C# source into a syntax tree. Constructs without a syntax node
// type become syntax.Unsupported; syntax errors are reported in File.Diags and
// do not fail the parse.
func Parse(ctx context.Context, path string, src []byte) (*File, error) {
	root, err := sitter.ParseCtx(ctx, src, csharp.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c := &converter{path: path, src: src}
	tree := c.compilationUnit(root)
	c.reportErrors(root)
	return &File{Path: path, Source: src, Tree: tree, Diags: c.diags}, nil
}

// converter maps tree-sitter nodes onto syntax nodes. Field names are tried
// first with positional fallbacks, so that grammar revisions that renamed a
// field still convert.
type converter struct {
	path   string
	src    []byte
	usings []string
	diags  []types.Diagnostic
}

func (c *converter) info(n *sitter.Node) syntax.NodeInfo {
	s, e := n.StartPoint(), n.EndPoint()
	return syntax.NodeInfo{Range: syntax.Span{
		Start: syntax.Position{Line: int(s.Row) + 1, Column: int(s.Column) + 1, Offset: int(n.StartByte())},
		End:   syntax.Position{Line: int(e.Row) + 1, Column: int(e.Column) + 1, Offset: int(n.EndByte())},
	}}
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(c.src)
}

func (c *converter) reportErrors(n *sitter.Node) {
	if n == nil || len(c.diags) >= maxSyntaxErrors {
		return
	}
	if n.Type() == "ERROR" || n.IsMissing() {
		what := "unexpected '" + firstLine(c.text(n)) + "'"
		if n.IsMissing() {
			what = "missing " + n.Type()
		}
		c.diags = append(c.diags, syntaxError(c.path, c.info(n).Range.Start, what))
		return
	}
	if !n.HasError() {
		return
	}
	for _, ch := range allChildren(n) {
		c.reportErrors(ch)
	}
}

// ---- Tree helpers ----

func allChildren(n *sitter.Node) []*sitter.Node {
	out := make([]*sitter.Node, 0, n.ChildCount())
	for i := 0; i < int(n.ChildCount()); i++ {
		if ch := n.Child(i); ch != nil {
			out = append(out, ch)
		}
	}
	return out
}

// named returns the named children of n, comments excluded.
func named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if ch := n.NamedChild(i); ch != nil && ch.Type() != "comment" {
			out = append(out, ch)
		}
	}
	return out
}

func namedWithComments(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if ch := n.NamedChild(i); ch != nil {
			out = append(out, ch)
		}
	}
	return out
}

func first(n *sitter.Node) *sitter.Node {
	if ns := named(n); len(ns) > 0 {
		return ns[0]
	}
	return nil
}

func last(n *sitter.Node) *sitter.Node {
	if ns := named(n); len(ns) > 0 {
		return ns[len(ns)-1]
	}
	return nil
}

// field returns the first of the named fields that is present.
func field(n *sitter.Node, names ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	for _, name := range names {
		if ch := n.ChildByFieldName(name); ch != nil {
			return ch
		}
	}
	return nil
}

// ofKind returns the first named child of one of the kinds.
func ofKind(n *sitter.Node, kinds ...string) *sitter.Node {
	for _, ch := range named(n) {
		for _, k := range kinds {
			if ch.Type() == k {
				return ch
			}
		}
	}
	return nil
}

func hasToken(n *sitter.Node, token string) bool {
	for _, ch := range allChildren(n) {
		if !ch.IsNamed() && ch.Type() == token {
			return true
		}
	}
	return false
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// valueAfterEquals returns the expression following "=" in a declarator,
// parameter, property, or enum member.
func valueAfterEquals(n *sitter.Node) *sitter.Node {
	if eq := ofKind(n, "equals_value_clause"); eq != nil {
		return first(eq)
	}
	seen := false
	for _, ch := range allChildren(n) {
		if !ch.IsNamed() && ch.Type() == "=" {
			seen = true
			continue
		}
		if seen && ch.IsNamed() && ch.Type() != "comment" {
			return ch
		}
	}
	return nil
}

var typeKinds = map[string]bool{
	"predefined_type":      true,
	"identifier":           true,
	"qualified_name":       true,
	"generic_name":         true,
	"array_type":           true,
	"nullable_type":        true,
	"pointer_type":         true,
	"tuple_type":           true,
	"alias_qualified_name": true,
	"implicit_type":        true,
	"ref_type":             true,
	"scoped_type":          true,
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

// ---- Declarations ----

func (c *converter) compilationUnit(n *sitter.Node) *syntax.CompilationUnit {
	cu := &syntax.CompilationUnit{NodeInfo: c.info(n)}
	cu.Members = c.declarations(namedWithComments(n))
	cu.Usings = c.usings
	return cu
}

// declarations converts a member list. "///" comments attach to the next
// declaration; a file-scoped namespace swallows the declarations after it.
func (c *converter) declarations(nodes []*sitter.Node) []syntax.Node {
	var out []syntax.Node
	var doc []string
	for i, n := range nodes {
		switch n.Type() {
		case "comment":
			if t := c.text(n); strings.HasPrefix(t, "///") {
				doc = append(doc, t)
			} else {
				doc = nil
			}
			continue
		case "using_directive":
			if u := c.usingName(n); u != "" {
				c.usings = append(c.usings, u)
			}
		case "extern_alias_directive", "attribute_list", "global_attribute", "global_attribute_list", "preproc_region", "preproc_endregion":
		case "file_scoped_namespace_declaration":
			ns := c.namespace(n)
			rest := nodes[i+1:]
			ns.Members = append(ns.Members, c.declarations(rest)...)
			if len(rest) > 0 {
				ns.Range.End = c.info(rest[len(rest)-1]).Range.End
			}
			return append(out, ns)
		default:
			out = append(out, c.declaration(n, parseDocComment(doc)))
		}
		doc = nil
	}
	return out
}

func (c *converter) usingName(n *sitter.Node) string {
	t := strings.TrimSpace(c.text(n))
	if strings.Contains(t, "=") {
		return ""
	}
	t = strings.TrimPrefix(t, "global ")
	t = strings.TrimPrefix(t, "using")
	t = strings.TrimSpace(strings.TrimSuffix(t, ";"))
	if strings.HasPrefix(t, "static ") {
		return ""
	}
	return compact(t)
}

func (c *converter) declaration(n *sitter.Node, doc *syntax.DocComment) syntax.Node {
	switch n.Type() {
	case "namespace_declaration":
		return c.namespace(n)
	case "class_declaration", "struct_declaration", "interface_declaration", "enum_declaration", "delegate_declaration":
		return c.typeDecl(n, doc)
	case "field_declaration":
		return c.fieldDecl(n, doc)
	case "method_declaration":
		return c.methodDecl(n, doc)
	case "operator_declaration":
		return c.operatorDecl(n, doc)
	case "constructor_declaration":
		return c.constructorDecl(n, doc)
	case "property_declaration":
		return c.propertyDecl(n, doc)
	case "enum_member_declaration":
		value := field(n, "value")
		if value == nil {
			value = valueAfterEquals(n)
		}
		return &syntax.EnumMemberDecl{
			NodeInfo:   c.info(n),
			Attributes: c.attributes(n),
			Name:       c.text(field(n, "name")),
			Value:      c.expr(value),
			Doc:        doc,
		}
	default:
		return &syntax.Unsupported{NodeInfo: c.info(n), What: n.Type()}
	}
}

func (c *converter) namespace(n *sitter.Node) *syntax.NamespaceDecl {
	name := field(n, "name")
	ns := &syntax.NamespaceDecl{NodeInfo: c.info(n), Name: compact(c.text(name))}
	if body := field(n, "body"); body != nil {
		ns.Members = c.declarations(namedWithComments(body))
		return ns
	}
	var members []*sitter.Node
	for _, ch := range namedWithComments(n) {
		if !sameNode(ch, name) {
			members = append(members, ch)
		}
	}
	ns.Members = c.declarations(members)
	return ns
}

var typeDeclKinds = map[string]types.TypeKind{
	"class_declaration":     types.Class,
	"struct_declaration":    types.Struct,
	"interface_declaration": types.Interface,
	"enum_declaration":      types.Enum,
	"delegate_declaration":  types.Delegate,
}

func (c *converter) typeDecl(n *sitter.Node, doc *syntax.DocComment) *syntax.TypeDecl {
	td := &syntax.TypeDecl{
		NodeInfo:   c.info(n),
		TypeKind:   typeDeclKinds[n.Type()],
		Name:       c.text(field(n, "name")),
		Modifiers:  c.modifiers(n),
		Attributes: c.attributes(n),
		TypeParams: c.typeParams(n),
		Doc:        doc,
	}
	if bases := field(n, "bases"); bases != nil || ofKind(n, "base_list") != nil {
		if bases == nil {
			bases = ofKind(n, "base_list")
		}
		for _, b := range named(bases) {
			if b.Type() == "primary_constructor_base_type" {
				b = field(b, "type")
				if b == nil {
					continue
				}
			}
			if typeKinds[b.Type()] {
				td.BaseTypes = append(td.BaseTypes, c.typeRef(b))
			}
		}
	}
	body := field(n, "body")
	if body == nil {
		body = ofKind(n, "declaration_list", "enum_member_declaration_list")
	}
	if body != nil {
		td.Members = c.declarations(namedWithComments(body))
	}
	return td
}

func (c *converter) typeParams(n *sitter.Node) []string {
	list := field(n, "type_parameters")
	if list == nil {
		list = ofKind(n, "type_parameter_list")
	}
	var out []string
	for _, tp := range named(list) {
		if name := field(tp, "name"); name != nil {
			out = append(out, c.text(name))
		} else {
			out = append(out, c.text(last(tp)))
		}
	}
	return out
}

func (c *converter) modifiers(n *sitter.Node) syntax.Modifiers {
	var out syntax.Modifiers
	for _, ch := range named(n) {
		if ch.Type() == "modifier" {
			out = append(out, strings.TrimSpace(c.text(ch)))
		}
	}
	return out
}

func (c *converter) attributes(n *sitter.Node) []*syntax.Attribute {
	var out []*syntax.Attribute
	for _, list := range named(n) {
		if list.Type() != "attribute_list" {
			continue
		}
		for _, a := range named(list) {
			if a.Type() != "attribute" {
				continue
			}
			name := field(a, "name")
			if name == nil {
				name = first(a)
			}
			attr := &syntax.Attribute{NodeInfo: c.info(a), Name: attributeName(c.text(name))}
			for _, arg := range named(ofKind(a, "attribute_argument_list")) {
				attr.Args = append(attr.Args, c.attributeArg(last(arg)))
			}
			out = append(out, attr)
		}
	}
	return out
}

// attributeName drops the namespace and the "Attribute" suffix.
func attributeName(s string) string {
	_, name := splitLast(compact(s))
	if name != "Attribute" {
		name = strings.TrimSuffix(name, "Attribute")
	}
	return name
}

func (c *converter) attributeArg(n *sitter.Node) string {
	if lit, ok := c.literal(n).(*syntax.Literal); ok {
		switch lit.Kind {
		case syntax.StringLiteral, syntax.CharLiteral:
			return lit.ValueText
		}
		return lit.Text
	}
	return c.text(n)
}

func (c *converter) fieldDecl(n *sitter.Node, doc *syntax.DocComment) syntax.Node {
	vd := ofKind(n, "variable_declaration")
	if vd == nil {
		return &syntax.Unsupported{NodeInfo: c.info(n), What: n.Type()}
	}
	return &syntax.FieldDecl{
		NodeInfo:   c.info(n),
		Modifiers:  c.modifiers(n),
		Attributes: c.attributes(n),
		Type:       c.typeRef(field(vd, "type")),
		Variables:  c.declarators(vd),
		Doc:        doc,
	}
}

func (c *converter) declarators(vd *sitter.Node) []*syntax.VariableDeclarator {
	var out []*syntax.VariableDeclarator
	for _, d := range named(vd) {
		if d.Type() != "variable_declarator" {
			continue
		}
		v := &syntax.VariableDeclarator{NodeInfo: c.info(d)}
		if name := field(d, "name"); name != nil {
			v.Name = c.text(name)
		} else if id := ofKind(d, "identifier"); id != nil {
			v.Name = c.text(id)
		}
		if init := valueAfterEquals(d); init != nil {
			v.Initializer = c.expr(init)
		}
		out = append(out, v)
	}
	return out
}

func (c *converter) methodDecl(n *sitter.Node, doc *syntax.DocComment) syntax.Node {
	m := &syntax.MethodDecl{
		NodeInfo:   c.info(n),
		Modifiers:  c.modifiers(n),
		Attributes: c.attributes(n),
		ReturnType: c.typeRef(field(n, "returns", "type")),
		Name:       c.text(field(n, "name")),
		TypeParams: c.typeParams(n),
		Parameters: c.parameters(n),
		Doc:        doc,
	}
	m.Body, m.ExpressionBody = c.body(n)
	return m
}

// operatorMethodNames maps operator tokens to the method names the compiler
// gives them, by parameter count.
var operatorMethodNames = map[int]map[string]string{
	1: {
		"+": "op_UnaryPlus", "-": "op_UnaryNegation", "!": "op_LogicalNot", "~": "op_OnesComplement",
		"++": "op_Increment", "--": "op_Decrement", "true": "op_True", "false": "op_False",
	},
	2: {
		"+": "op_Addition", "-": "op_Subtraction", "*": "op_Multiply", "/": "op_Division", "%": "op_Modulus",
		"&": "op_BitwiseAnd", "|": "op_BitwiseOr", "^": "op_ExclusiveOr", "<<": "op_LeftShift", ">>": "op_RightShift",
		"==": "op_Equality", "!=": "op_Inequality", "<": "op_LessThan", ">": "op_GreaterThan",
		"<=": "op_LessThanOrEqual", ">=": "op_GreaterThanOrEqual",
	},
}

func (c *converter) operatorDecl(n *sitter.Node, doc *syntax.DocComment) syntax.Node {
	op := c.text(field(n, "operator"))
	if op == "" {
		seen := false
		for _, ch := range allChildren(n) {
			if !ch.IsNamed() && ch.Type() == "operator" {
				seen = true
				continue
			}
			if seen && !ch.IsNamed() {
				op = ch.Type()
				break
			}
		}
	}
	params := c.parameters(n)
	name, ok := operatorMethodNames[len(params)][op]
	if !ok {
		return &syntax.Unsupported{NodeInfo: c.info(n), What: n.Type()}
	}
	m := &syntax.MethodDecl{
		NodeInfo:   c.info(n),
		Modifiers:  c.modifiers(n),
		Attributes: c.attributes(n),
		ReturnType: c.typeRef(field(n, "type", "returns")),
		Name:       name,
		Parameters: params,
		Doc:        doc,
	}
	m.Body, m.ExpressionBody = c.body(n)
	return m
}

func (c *converter) constructorDecl(n *sitter.Node, doc *syntax.DocComment) syntax.Node {
	ctor := &syntax.ConstructorDecl{
		NodeInfo:   c.info(n),
		Modifiers:  c.modifiers(n),
		Attributes: c.attributes(n),
		Name:       c.text(field(n, "name")),
		Parameters: c.parameters(n),
		Doc:        doc,
	}
	body, exprBody := c.body(n)
	if body == nil && exprBody != nil {
		body = &syntax.Block{NodeInfo: syntax.NodeInfo{Range: exprBody.Span()}, Statements: []syntax.Node{
			&syntax.ExpressionStatement{NodeInfo: syntax.NodeInfo{Range: exprBody.Span()}, Expr: exprBody},
		}}
	}
	if init := ofKind(n, "constructor_initializer"); init != nil && body != nil {
		body.Statements = append([]syntax.Node{c.constructorInitializer(init)}, body.Statements...)
	}
	ctor.Body = body
	return ctor
}

// constructorInitializer turns ": base(args)" into a super call. Chaining to
// another constructor with ": this(args)" has no counterpart.
func (c *converter) constructorInitializer(n *sitter.Node) syntax.Node {
	info := c.info(n)
	if !hasToken(n, "base") && ofKind(n, "base_expression", "base") == nil {
		return &syntax.Unsupported{NodeInfo: info, What: "constructor_initializer"}
	}
	return &syntax.ExpressionStatement{NodeInfo: info, Expr: &syntax.Invocation{
		NodeInfo: info,
		Expr:     &syntax.Identifier{NodeInfo: info, Name: "super"},
		Args:     c.arguments(ofKind(n, "argument_list")),
	}}
}

// body returns a member's block or arrow-expression body.
func (c *converter) body(n *sitter.Node) (*syntax.Block, syntax.Node) {
	b := field(n, "body")
	if b == nil {
		b = ofKind(n, "block", "arrow_expression_clause")
	}
	if b == nil {
		return nil, nil
	}
	if b.Type() == "arrow_expression_clause" {
		return nil, c.expr(first(b))
	}
	return c.block(b), nil
}

func (c *converter) propertyDecl(n *sitter.Node, doc *syntax.DocComment) syntax.Node {
	p := &syntax.PropertyDecl{
		NodeInfo:   c.info(n),
		Modifiers:  c.modifiers(n),
		Attributes: c.attributes(n),
		Type:       c.typeRef(field(n, "type")),
		Name:       c.text(field(n, "name")),
		Doc:        doc,
	}
	accessors := field(n, "accessors")
	if accessors == nil {
		accessors = ofKind(n, "accessor_list")
	}
	for _, a := range named(accessors) {
		if a.Type() != "accessor_declaration" {
			continue
		}
		acc := &syntax.Accessor{NodeInfo: c.info(a), Attributes: c.attributes(a)}
		acc.Body, acc.ExpressionBody = c.body(a)
		switch c.accessorKind(a) {
		case "get":
			p.Getter = acc
		case "set", "init":
			p.Setter = acc
		}
	}
	if arrow := ofKind(n, "arrow_expression_clause"); arrow != nil {
		p.ExpressionBody = c.expr(first(arrow))
	}
	if init := valueAfterEquals(n); init != nil {
		p.Initializer = c.expr(init)
	}
	return p
}

func (c *converter) accessorKind(n *sitter.Node) string {
	if name := field(n, "name"); name != nil {
		return c.text(name)
	}
	for _, ch := range allChildren(n) {
		switch ch.Type() {
		case "get", "set", "init", "add", "remove":
			return ch.Type()
		}
	}
	return ""
}

func (c *converter) parameters(n *sitter.Node) []*syntax.Parameter {
	list := field(n, "parameters")
	if list == nil {
		list = ofKind(n, "parameter_list")
	}
	var out []*syntax.Parameter
	for _, ch := range named(list) {
		switch ch.Type() {
		case "parameter":
			out = append(out, c.parameter(ch))
		case "parameter_array":
			p := c.parameter(ch)
			if !p.Modifiers.Has("params") {
				p.Modifiers = append(syntax.Modifiers{"params"}, p.Modifiers...)
			}
			out = append(out, p)
		}
	}
	return out
}

var parameterModifiers = map[string]bool{"params": true, "ref": true, "out": true, "in": true, "this": true}

func (c *converter) parameter(n *sitter.Node) *syntax.Parameter {
	p := &syntax.Parameter{NodeInfo: c.info(n), Attributes: c.attributes(n)}
	for _, ch := range allChildren(n) {
		switch {
		case ch.Type() == "parameter_modifier" || ch.Type() == "modifier":
			for _, m := range strings.Fields(c.text(ch)) {
				p.Modifiers = append(p.Modifiers, m)
			}
		case !ch.IsNamed() && parameterModifiers[ch.Type()]:
			p.Modifiers = append(p.Modifiers, ch.Type())
		}
	}

	typ, name := field(n, "type"), field(n, "name")
	if typ == nil || name == nil {
		var candidates []*sitter.Node
		for _, ch := range allChildren(n) {
			if !ch.IsNamed() && ch.Type() == "=" {
				break
			}
			if ch.IsNamed() && typeKinds[ch.Type()] {
				candidates = append(candidates, ch)
			}
		}
		if name == nil && len(candidates) > 0 {
			name = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]
		}
		if typ == nil && len(candidates) > 0 {
			typ = candidates[0]
		}
	}
	p.Type = c.typeRef(typ)
	p.Name = c.text(name)
	if def := valueAfterEquals(n); def != nil {
		p.Default = c.expr(def)
	}
	return p
}

// ---- Types ----

func (c *converter) typeRef(n *sitter.Node) *syntax.TypeRef {
	if n == nil {
		return nil
	}
	info := c.info(n)
	switch n.Type() {
	case "predefined_type":
		return &syntax.TypeRef{NodeInfo: info, Name: c.text(n), Predefined: true}
	case "implicit_type":
		return &syntax.TypeRef{NodeInfo: info, Name: "var"}
	case "identifier":
		return &syntax.TypeRef{NodeInfo: info, Name: c.text(n)}
	case "generic_name":
		t := &syntax.TypeRef{NodeInfo: info, Name: c.text(ofKind(n, "identifier"))}
		if name := field(n, "name"); name != nil {
			t.Name = c.text(name)
		}
		for _, a := range named(ofKind(n, "type_argument_list")) {
			t.TypeArgs = append(t.TypeArgs, c.typeRef(a))
		}
		return t
	case "qualified_name":
		left := field(n, "qualifier")
		right := field(n, "name")
		if left == nil || right == nil {
			left, right = first(n), last(n)
		}
		l, r := c.typeRef(left), c.typeRef(right)
		if l == nil || r == nil {
			return &syntax.TypeRef{NodeInfo: info, Name: compact(c.text(n))}
		}
		return &syntax.TypeRef{NodeInfo: info, Name: l.Name + "." + r.Name, TypeArgs: r.TypeArgs}
	case "alias_qualified_name":
		name := compact(c.text(n))
		if i := strings.Index(name, "::"); i >= 0 {
			name = name[i+2:]
		}
		return &syntax.TypeRef{NodeInfo: info, Name: name}
	case "nullable_type", "ref_type", "scoped_type":
		t := c.typeRef(field(n, "type"))
		if t == nil {
			t = c.typeRef(first(n))
		}
		if t != nil {
			t.NodeInfo = info
		}
		return t
	case "array_type":
		elem, rank := c.arrayParts(n)
		t := c.typeRef(elem)
		if t == nil {
			return &syntax.TypeRef{NodeInfo: info, Name: compact(c.text(n))}
		}
		t.NodeInfo = info
		t.ArrayRanks = append(t.ArrayRanks, rankDimensions(rank))
		return t
	default:
		return &syntax.TypeRef{NodeInfo: info, Name: compact(c.text(n))}
	}
}

func (c *converter) arrayParts(n *sitter.Node) (elem, rank *sitter.Node) {
	elem = field(n, "type")
	if elem == nil {
		elem = first(n)
	}
	rank = field(n, "rank")
	if rank == nil {
		rank = ofKind(n, "array_rank_specifier")
	}
	return elem, rank
}

func rankDimensions(rank *sitter.Node) int {
	dims := 1
	if rank == nil {
		return dims
	}
	for _, ch := range allChildren(rank) {
		if !ch.IsNamed() && ch.Type() == "," {
			dims++
		}
	}
	return dims
}

// compact removes whitespace from a name as written.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
