// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Config configures a Compilation.
type Config struct {
	AssemblyName string      // Name of the assembly the sources form
	References   []*Manifest // Referenced assemblies
	NoBuiltin    bool        // Skip the core library manifest
	Concurrency  int         // Files bound in parallel; zero means unbounded
}

// Compilation binds a set of parsed files against referenced assemblies.
// Building one declares every source type and member before any body is
// bound, so references across files resolve regardless of order.
type Compilation struct {
	assembly *Symbol
	refs     *references
	types    map[string]*Symbol // Source types by full name
	prefixes map[string]bool    // Namespace prefixes of all known types
	units    []*Unit

	arrayMu sync.Mutex
}

// NewCompilation declares and binds files.
func NewCompilation(ctx context.Context, files []*File, cfg Config) (*Compilation, error) {
	if cfg.AssemblyName == "" {
		cfg.AssemblyName = "Script"
	}
	manifests := cfg.References
	if !cfg.NoBuiltin {
		manifests = append([]*Manifest{BuiltinManifest()}, manifests...)
	}

	c := &Compilation{
		assembly: newAssembly(cfg.AssemblyName, nil),
		refs:     newReferences(),
		types:    make(map[string]*Symbol),
		prefixes: make(map[string]bool),
	}
	c.refs.load(manifests)
	for name := range c.refs.types {
		c.addPrefixes(name)
	}

	binders := make([]*fileBinder, len(files))
	for i, f := range files {
		b := &fileBinder{c: c, file: f, model: newModel(f.Path)}
		b.model.diags = append(b.model.diags, f.Diags...)
		binders[i] = b
		c.units = append(c.units, &Unit{file: f, model: b.model})
		if f.Tree != nil {
			b.usings = f.Tree.Usings
			b.declareTypes(f.Tree.Members, "", nil)
		}
	}
	for _, b := range binders {
		b.declareMembers()
	}
	c.assembly.freeze()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for _, b := range binders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b.bindBodies()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("binding sources: %w", err)
	}
	return c, nil
}

// Units returns one unit per file, in input order.
func (c *Compilation) Units() []syntax.Unit {
	out := make([]syntax.Unit, len(c.units))
	for i, u := range c.units {
		out[i] = u
	}
	return out
}

// Assembly returns the symbol of the assembly formed by the sources.
func (c *Compilation) Assembly() types.Symbol { return c.assembly }

// ReferencedAssemblies returns the symbols of the referenced assemblies.
func (c *Compilation) ReferencedAssemblies() []types.Symbol {
	out := make([]types.Symbol, len(c.refs.assemblies))
	for i, a := range c.refs.assemblies {
		out[i] = a
	}
	return out
}

// TypeByName finds a source or referenced type by its full name.
func (c *Compilation) TypeByName(fullName string) (types.Symbol, bool) {
	if t := c.typeByName(fullName); t != nil {
		return t, true
	}
	return nil, false
}

func (c *Compilation) typeByName(fullName string) *Symbol {
	if t, ok := c.types[fullName]; ok {
		return t
	}
	return c.refs.types[fullName]
}

func (c *Compilation) arrayOf(elem *Symbol) *Symbol {
	c.arrayMu.Lock()
	defer c.arrayMu.Unlock()
	return c.refs.arrayOf(elem)
}

func (c *Compilation) keywordType(keyword string) *Symbol {
	full, ok := naming.KeywordTypeName(keyword)
	if !ok {
		return nil
	}
	return c.refs.types[full]
}

func (c *Compilation) addPrefixes(fullName string) {
	for {
		i := strings.LastIndexByte(fullName, '.')
		if i < 0 {
			return
		}
		fullName = fullName[:i]
		c.prefixes[fullName] = true
	}
}

// fileBinder declares and binds the contents of one file.
type fileBinder struct {
	c      *Compilation
	file   *File
	model  *Model
	usings []string
	decls  []typeDeclaration
}

type typeDeclaration struct {
	decl *syntax.TypeDecl
	sym  *Symbol
	ns   string
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func (b *fileBinder) declareTypes(nodes []syntax.Node, ns string, outer *Symbol) {
	for _, n := range nodes {
		switch x := n.(type) {
		case *syntax.NamespaceDecl:
			b.declareTypes(x.Members, joinName(ns, x.Name), nil)
		case *syntax.TypeDecl:
			sym := b.declareType(x, ns, outer)
			if sym == nil {
				continue
			}
			b.declareTypes(x.Members, ns, sym)
		}
	}
}

func (b *fileBinder) declareType(x *syntax.TypeDecl, ns string, outer *Symbol) *Symbol {
	c := b.c
	var sym *Symbol
	if outer == nil {
		full := joinName(ns, x.Name)
		if prev, ok := c.types[full]; ok {
			if !x.Modifiers.Has("partial") {
				b.model.report(duplicateType(b.file.Path, x.Span().Start, full))
				return nil
			}
			b.model.declare(x, prev)
			b.model.enclose(x, prev)
			b.decls = append(b.decls, typeDeclaration{decl: x, sym: prev, ns: ns})
			return prev
		}
		sym = newType(c.assembly, full, x.TypeKind)
		sym.access = accessibility(x.Modifiers, types.Internal)
	} else {
		sym = outer.newNestedType(x.Name, x.TypeKind)
		sym.access = accessibility(x.Modifiers, types.Private)
	}
	sym.static = x.Modifiers.Has("static")
	sym.attrs = attributeValues(x.Attributes)
	for _, tp := range x.TypeParams {
		sym.typeParams = append(sym.typeParams, newTypeParameter(tp, sym))
	}
	c.types[sym.Signature()] = sym
	c.addPrefixes(sym.Signature())

	b.model.declare(x, sym)
	b.model.enclose(x, sym)
	b.model.types = append(b.model.types, sym)
	b.decls = append(b.decls, typeDeclaration{decl: x, sym: sym, ns: ns})
	return sym
}

func accessibility(mods syntax.Modifiers, def types.Accessibility) types.Accessibility {
	switch {
	case mods.Has("public"):
		return types.Public
	case mods.Has("protected"):
		return types.Protected
	case mods.Has("internal"):
		return types.Internal
	case mods.Has("private"):
		return types.Private
	}
	return def
}

func attributeValues(attrs []*syntax.Attribute) []types.AttributeData {
	var out []types.AttributeData
	for _, a := range attrs {
		out = append(out, types.AttributeData{Name: a.Name, Args: a.Args})
	}
	return out
}

// declareMembers creates the member symbols of every type declared in the
// file, resolving their signatures' types.
func (b *fileBinder) declareMembers() {
	for _, td := range b.decls {
		b.declareBases(td)
		b.declareTypeMembers(td)
	}
}

func (b *fileBinder) declareBases(td typeDeclaration) {
	sc := b.scopeFor(td)
	for _, ref := range td.decl.BaseTypes {
		t := b.resolveType(ref, sc)
		if t == nil {
			continue
		}
		if t.typeKind == types.Interface || td.sym.base != nil || td.sym.typeKind != types.Class {
			td.sym.interfaces = append(td.sym.interfaces, t)
			continue
		}
		td.sym.base = t
	}
}

func (b *fileBinder) declareTypeMembers(td typeDeclaration) {
	t := td.sym
	sc := b.scopeFor(td)
	memberAccess := types.Private
	if t.typeKind == types.Interface {
		memberAccess = types.Public
	}
	hasCtor := false

	for _, n := range td.decl.Members {
		switch x := n.(type) {
		case *syntax.FieldDecl:
			typ := b.resolveType(x.Type, sc)
			for _, v := range x.Variables {
				f := &Symbol{name: v.Name, kind: types.Field, typ: typ,
					access: accessibility(x.Modifiers, memberAccess),
					static: x.Modifiers.Has("static") || x.Modifiers.Has("const"),
					attrs:  attributeValues(x.Attributes)}
				t.addMember(f)
				b.model.declare(v, f)
				if v == x.Variables[0] {
					b.model.declare(x, f)
					b.model.enclose(x, f)
				}
			}
		case *syntax.MethodDecl:
			m := &Symbol{name: x.Name, kind: types.Method, access: accessibility(x.Modifiers, memberAccess),
				static: x.Modifiers.Has("static"), attrs: attributeValues(x.Attributes)}
			if _, ok := types.OperatorKindFromMethodName(x.Name); ok || strings.HasPrefix(x.Name, "op_") {
				m.methodKind = types.UserDefinedOperator
				m.static = true
			}
			for _, tp := range x.TypeParams {
				m.typeParams = append(m.typeParams, newTypeParameter(tp, m))
			}
			msc := sc.withMethod(m)
			m.typ = b.resolveType(x.ReturnType, msc)
			m.params = b.declareParams(x.Parameters, msc)
			t.addMember(m)
			b.model.declare(x, m)
			b.model.enclose(x, m)
		case *syntax.ConstructorDecl:
			m := &Symbol{name: t.name, kind: types.Method, methodKind: types.Constructor,
				access: accessibility(x.Modifiers, memberAccess), attrs: attributeValues(x.Attributes)}
			if x.Modifiers.Has("static") {
				m.methodKind = types.StaticConstructor
				m.static = true
			} else {
				hasCtor = true
			}
			m.params = b.declareParams(x.Parameters, sc)
			t.addMember(m)
			b.model.declare(x, m)
			b.model.enclose(x, m)
		case *syntax.PropertyDecl:
			p := &Symbol{name: x.Name, kind: types.Property, typ: b.resolveType(x.Type, sc),
				access: accessibility(x.Modifiers, memberAccess), static: x.Modifiers.Has("static"),
				attrs: attributeValues(x.Attributes)}
			t.addProperty(p)
			b.model.declare(x, p)
			b.model.enclose(x, p)
		case *syntax.EnumMemberDecl:
			f := &Symbol{name: x.Name, kind: types.Field, typ: t, access: types.Public, static: true,
				attrs: attributeValues(x.Attributes)}
			t.addMember(f)
			b.model.declare(x, f)
			b.model.enclose(x, f)
		}
	}

	if !hasCtor && (t.typeKind == types.Class || t.typeKind == types.Struct) && !t.static {
		t.addMember(&Symbol{name: t.name, kind: types.Method, methodKind: types.Constructor,
			access: types.Public, implicit: true})
	}
}

func (b *fileBinder) declareParams(params []*syntax.Parameter, sc declScope) []*Symbol {
	out := make([]*Symbol, 0, len(params))
	for _, p := range params {
		ps := newParameter(p.Name, b.resolveType(p.Type, sc))
		ps.attrs = attributeValues(p.Attributes)
		b.model.declare(p, ps)
		out = append(out, ps)
	}
	return out
}

// declScope is the context in which type names are resolved.
type declScope struct {
	ns     string
	typ    *Symbol // Innermost enclosing type
	method *Symbol // Enclosing generic method, for its type parameters
}

func (b *fileBinder) scopeFor(td typeDeclaration) declScope {
	return declScope{ns: td.ns, typ: td.sym}
}

func (s declScope) withMethod(m *Symbol) declScope {
	s.method = m
	return s
}

// resolveType binds a written type and records the result in the model.
// Unresolved names are reported, except for "var".
func (b *fileBinder) resolveType(ref *syntax.TypeRef, sc declScope) *Symbol {
	if ref == nil || (ref.Name == "var" && !ref.Predefined && len(ref.ArrayRanks) == 0) {
		return nil
	}
	for _, a := range ref.TypeArgs {
		b.resolveType(a, sc)
	}

	var t *Symbol
	if ref.Predefined {
		t = b.c.keywordType(ref.Name)
	} else {
		t = b.lookupType(ref.Name, sc)
		if t == nil {
			b.model.report(unresolvedType(b.file.Path, ref.Span().Start, ref.Name))
		}
	}
	if t == nil {
		return nil
	}
	for range ref.ArrayRanks {
		t = b.c.arrayOf(t)
	}
	b.model.bind(ref, t)
	return t
}

// lookupType resolves a simple or dotted type name: type parameters first,
// then nested types of the enclosing types, then the enclosing namespaces
// from the innermost out, then the using directives.
func (b *fileBinder) lookupType(name string, sc declScope) *Symbol {
	head, rest, dotted := strings.Cut(name, ".")
	if !dotted {
		if sc.method != nil {
			if tp := sc.method.typeParameter(name); tp != nil {
				return tp
			}
		}
		for t := sc.typ; t != nil; t = t.containing {
			if tp := t.typeParameter(name); tp != nil {
				return tp
			}
			if n := t.nestedType(name); n != nil {
				return n
			}
			if t.kind != types.NamedType {
				break
			}
		}
	} else if outer := b.lookupType(head, sc); outer != nil {
		if n := outer.nestedPath(rest); n != nil {
			return n
		}
	}

	for ns := sc.ns; ; {
		if t := b.c.typeByName(joinName(ns, name)); t != nil {
			return t
		}
		if ns == "" {
			break
		}
		ns, _ = splitLast(ns)
	}
	for _, u := range b.usings {
		if t := b.c.typeByName(joinName(u, name)); t != nil {
			return t
		}
	}
	return nil
}

// nestedPath follows a dotted path of nested type names.
func (s *Symbol) nestedPath(path string) *Symbol {
	t := s
	for _, part := range strings.Split(path, ".") {
		if t = t.nestedType(part); t == nil {
			return nil
		}
	}
	return t
}
