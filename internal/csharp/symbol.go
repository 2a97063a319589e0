// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	"strings"

	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Symbol is the front end's types.Symbol. Symbols are created while a
// Compilation is built and are immutable afterwards, so they can be shared by
// concurrent readers.
type Symbol struct {
	name       string
	kind       types.SymbolKind
	methodKind types.MethodKind
	typeKind   types.TypeKind
	access     types.Accessibility
	static     bool
	implicit   bool
	namespace  string
	containing *Symbol
	assembly   *Symbol
	attrs      []types.AttributeData
	members    []*Symbol
	params     []*Symbol
	typeParams []*Symbol
	typ        *Symbol
	base       *Symbol
	interfaces []*Symbol
	signature  string
}

var _ types.Symbol = (*Symbol)(nil)

func newAssembly(name string, attrs []types.AttributeData) *Symbol {
	return &Symbol{name: name, kind: types.Assembly, access: types.Public, attrs: attrs}
}

// newType creates a type named by its fully qualified name. Nested types are
// created with newNestedType instead.
func newType(asm *Symbol, fullName string, kind types.TypeKind) *Symbol {
	ns, name := splitLast(fullName)
	t := &Symbol{name: name, kind: types.NamedType, typeKind: kind, namespace: ns, assembly: asm, access: types.Public}
	if asm != nil {
		asm.members = append(asm.members, t)
	}
	return t
}

func (s *Symbol) newNestedType(name string, kind types.TypeKind) *Symbol {
	return s.addMember(&Symbol{name: name, kind: types.NamedType, typeKind: kind, access: types.Private})
}

func (s *Symbol) addMember(m *Symbol) *Symbol {
	m.containing = s
	m.assembly = s.assembly
	s.members = append(s.members, m)
	return m
}

// addProperty adds a property with its get and set accessor methods.
func (s *Symbol) addProperty(p *Symbol) *Symbol {
	s.addMember(p)
	for _, acc := range []struct {
		prefix, suffix string
		kind           types.MethodKind
	}{{"get_", ".get", types.PropertyGet}, {"set_", ".set", types.PropertySet}} {
		s.addMember(&Symbol{name: acc.prefix + p.name, kind: types.Method, methodKind: acc.kind, access: p.access,
			static: p.static, implicit: true, signature: p.Signature() + acc.suffix})
	}
	return p
}

// addEvent adds an event with its add and remove accessor methods.
func (s *Symbol) addEvent(e *Symbol) *Symbol {
	s.addMember(e)
	s.addMember(&Symbol{name: "add_" + e.name, kind: types.Method, methodKind: types.EventAdd, access: e.access,
		static: e.static, implicit: true, signature: e.Signature() + ".add"})
	s.addMember(&Symbol{name: "remove_" + e.name, kind: types.Method, methodKind: types.EventRemove, access: e.access,
		static: e.static, implicit: true, signature: e.Signature() + ".remove"})
	return e
}

func newTypeParameter(name string, owner *Symbol) *Symbol {
	return &Symbol{name: name, kind: types.NamedType, typeKind: types.TypeParameter, containing: owner,
		signature: name}
}

func newArrayType(elem *Symbol) *Symbol {
	return &Symbol{name: elem.name + "[]", kind: types.NamedType, typeKind: types.Array, typ: elem,
		access: types.Public, assembly: elem.assembly, signature: elem.Signature() + "[]"}
}

func newParameter(name string, typ *Symbol) *Symbol {
	return &Symbol{name: name, kind: types.Parameter, typ: typ}
}

func newLocal(name string, typ *Symbol) *Symbol {
	return &Symbol{name: name, kind: types.Local, typ: typ}
}

func (s *Symbol) Name() string                       { return s.name }
func (s *Symbol) Kind() types.SymbolKind             { return s.kind }
func (s *Symbol) MethodKind() types.MethodKind       { return s.methodKind }
func (s *Symbol) TypeKind() types.TypeKind           { return s.typeKind }
func (s *Symbol) Accessibility() types.Accessibility { return s.access }
func (s *Symbol) IsStatic() bool                     { return s.static }
func (s *Symbol) IsImplicitlyDeclared() bool         { return s.implicit }
func (s *Symbol) Attributes() []types.AttributeData  { return s.attrs }

// Namespace returns the namespace of a top-level type.
func (s *Symbol) Namespace() string { return s.namespace }

func (s *Symbol) ContainingType() types.Symbol {
	if s.containing == nil || s.containing.kind != types.NamedType {
		return nil
	}
	return s.containing
}

func (s *Symbol) ContainingAssembly() types.Symbol {
	if s.assembly == nil {
		return nil
	}
	return s.assembly
}

func (s *Symbol) Members() []types.Symbol {
	out := make([]types.Symbol, len(s.members))
	for i, m := range s.members {
		out[i] = m
	}
	return out
}

func (s *Symbol) Parameters() []types.Symbol {
	out := make([]types.Symbol, len(s.params))
	for i, p := range s.params {
		out[i] = p
	}
	return out
}

func (s *Symbol) Type() types.Symbol {
	if s.typ == nil {
		return nil
	}
	return s.typ
}

// BaseType returns the base class of a class, or nil.
func (s *Symbol) BaseType() *Symbol { return s.base }

// Signature is the fully qualified name of a type or member. Methods append
// their parameter types so that overloads stay distinct.
func (s *Symbol) Signature() string {
	if s.signature != "" {
		return s.signature
	}
	var b strings.Builder
	switch {
	case s.kind == types.Assembly:
		return s.name
	case s.containing != nil:
		b.WriteString(s.containing.Signature())
		b.WriteByte('.')
	case s.namespace != "":
		b.WriteString(s.namespace)
		b.WriteByte('.')
	}
	b.WriteString(s.name)
	if s.kind == types.Method {
		b.WriteByte('(')
		for i, p := range s.params {
			if i > 0 {
				b.WriteString(", ")
			}
			if p.typ != nil {
				b.WriteString(p.typ.Signature())
			} else {
				b.WriteString("?")
			}
		}
		b.WriteByte(')')
	}
	return b.String()
}

func (s *Symbol) String() string { return s.Signature() }

// member finds a member by name, searching base classes too.
func (s *Symbol) member(name string, match func(*Symbol) bool) *Symbol {
	for t := s; t != nil; t = t.base {
		for _, m := range t.members {
			if m.name == name && (match == nil || match(m)) {
				return m
			}
		}
		for _, i := range t.interfaces {
			if m := i.member(name, match); m != nil {
				return m
			}
		}
	}
	return nil
}

// nestedType finds a directly nested type by name.
func (s *Symbol) nestedType(name string) *Symbol {
	for _, m := range s.members {
		if m.kind == types.NamedType && m.name == name {
			return m
		}
	}
	return nil
}

func (s *Symbol) typeParameter(name string) *Symbol {
	for _, tp := range s.typeParams {
		if tp.name == name {
			return tp
		}
	}
	return nil
}

// freeze computes and caches signatures. Nothing may change a symbol after it
// is frozen.
func (s *Symbol) freeze() {
	if s.kind == types.NamedType || s.kind == types.Method {
		s.signature = s.Signature()
	}
	for _, m := range s.members {
		m.freeze()
	}
}

func splitLast(fullName string) (prefix, name string) {
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		return fullName[:i], fullName[i+1:]
	}
	return "", fullName
}
