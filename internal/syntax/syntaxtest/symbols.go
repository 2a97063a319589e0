// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syntaxtest provides an in-memory front end for tests: hand-built
// symbols, a map-backed semantic model, and units.
package syntaxtest

import (
	"strings"
	"sync/atomic"

	"github.com/petar-djukic/cs2ts/pkg/types"
)

// Symbol is a hand-built types.Symbol.
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
	typ        *Symbol
	signature  string

	membersCalls atomic.Int64
}

// Option configures a Symbol.
type Option func(*Symbol)

// Static marks the symbol static.
func Static() Option { return func(s *Symbol) { s.static = true } }

// Private sets private accessibility.
func Private() Option { return func(s *Symbol) { s.access = types.Private } }

// Public sets public accessibility.
func Public() Option { return func(s *Symbol) { s.access = types.Public } }

// Implicit marks the symbol compiler-synthesized.
func Implicit() Option { return func(s *Symbol) { s.implicit = true } }

// WithAttr attaches an attribute.
func WithAttr(name string, args ...string) Option {
	return func(s *Symbol) { s.attrs = append(s.attrs, types.AttributeData{Name: name, Args: args}) }
}

// OfType sets the declared type (or return type).
func OfType(t *Symbol) Option { return func(s *Symbol) { s.typ = t } }

// Kind overrides the type kind of a type symbol.
func Kind(k types.TypeKind) Option { return func(s *Symbol) { s.typeKind = k } }

// Signature overrides the computed signature.
func Signature(sig string) Option { return func(s *Symbol) { s.signature = sig } }

// NewAssembly creates an assembly symbol.
func NewAssembly(name string, opts ...Option) *Symbol {
	s := &Symbol{name: name, kind: types.Assembly}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewType creates a top-level type named by its fully qualified name, such as
// "Acme.Widget", in the given assembly (which may be nil). The type is listed
// among the assembly's members.
func NewType(asm *Symbol, fullName string, opts ...Option) *Symbol {
	ns, name := "", fullName
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		ns, name = fullName[:i], fullName[i+1:]
	}
	s := &Symbol{name: name, kind: types.NamedType, namespace: ns, assembly: asm, access: types.Public}
	for _, o := range opts {
		o(s)
	}
	if asm != nil {
		asm.members = append(asm.members, s)
	}
	return s
}

// NestedType adds a nested type to t.
func (t *Symbol) NestedType(name string, opts ...Option) *Symbol {
	return t.add(&Symbol{name: name, kind: types.NamedType, access: types.Public}, opts)
}

// Field adds a field to t.
func (t *Symbol) Field(name string, opts ...Option) *Symbol {
	return t.add(&Symbol{name: name, kind: types.Field, access: types.Private}, opts)
}

// Property adds a property to t, plus its implicit get and set accessors.
func (t *Symbol) Property(name string, opts ...Option) *Symbol {
	p := t.add(&Symbol{name: name, kind: types.Property, access: types.Public}, opts)
	t.add(&Symbol{name: "get_" + name, kind: types.Method, methodKind: types.PropertyGet, access: p.access, static: p.static,
		signature: p.Signature() + ".get"}, nil)
	t.add(&Symbol{name: "set_" + name, kind: types.Method, methodKind: types.PropertySet, access: p.access, static: p.static,
		signature: p.Signature() + ".set"}, nil)
	return p
}

// Method adds a method to t with the given parameters.
func (t *Symbol) Method(name string, params []*Symbol, opts ...Option) *Symbol {
	m := &Symbol{name: name, kind: types.Method, access: types.Public, params: params}
	return t.add(m, opts)
}

// Operator adds a user-defined operator method such as "op_Increment".
func (t *Symbol) Operator(name string, params []*Symbol, opts ...Option) *Symbol {
	m := &Symbol{name: name, kind: types.Method, methodKind: types.UserDefinedOperator, access: types.Public,
		static: true, params: params}
	return t.add(m, opts)
}

// Constructor adds a constructor to t.
func (t *Symbol) Constructor(params []*Symbol, opts ...Option) *Symbol {
	c := &Symbol{name: t.name, kind: types.Method, methodKind: types.Constructor, access: types.Public, params: params}
	return t.add(c, opts)
}

// Event adds an event plus its add/remove accessors.
func (t *Symbol) Event(name string, opts ...Option) *Symbol {
	e := t.add(&Symbol{name: name, kind: types.Event, access: types.Public}, opts)
	t.add(&Symbol{name: "add_" + name, kind: types.Method, methodKind: types.EventAdd}, nil)
	t.add(&Symbol{name: "remove_" + name, kind: types.Method, methodKind: types.EventRemove}, nil)
	return e
}

// Param creates a parameter symbol (not attached to a method yet).
func Param(name string, typ *Symbol) *Symbol {
	return &Symbol{name: name, kind: types.Parameter, typ: typ}
}

// Local creates a local variable symbol.
func Local(name string, typ *Symbol) *Symbol {
	return &Symbol{name: name, kind: types.Local, typ: typ}
}

// ArrayOf creates an array type symbol.
func ArrayOf(elem *Symbol) *Symbol {
	return &Symbol{name: elem.name + "[]", kind: types.NamedType, typeKind: types.Array, typ: elem,
		signature: elem.Signature() + "[]"}
}

func (t *Symbol) add(m *Symbol, opts []Option) *Symbol {
	m.containing = t
	m.assembly = t.assembly
	for _, o := range opts {
		o(m)
	}
	t.members = append(t.members, m)
	return m
}

// MembersCalls reports how many times Members has been called.
func (s *Symbol) MembersCalls() int64 { return s.membersCalls.Load() }

func (s *Symbol) Name() string                       { return s.name }
func (s *Symbol) Kind() types.SymbolKind             { return s.kind }
func (s *Symbol) MethodKind() types.MethodKind       { return s.methodKind }
func (s *Symbol) TypeKind() types.TypeKind           { return s.typeKind }
func (s *Symbol) Accessibility() types.Accessibility { return s.access }
func (s *Symbol) IsStatic() bool                     { return s.static }
func (s *Symbol) IsImplicitlyDeclared() bool         { return s.implicit }
func (s *Symbol) Attributes() []types.AttributeData  { return s.attrs }

func (s *Symbol) ContainingType() types.Symbol {
	if s.containing == nil {
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
	s.membersCalls.Add(1)
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

func (s *Symbol) Signature() string {
	if s.signature != "" {
		return s.signature
	}
	switch {
	case s.kind == types.Assembly:
		return s.name
	case s.containing != nil && s.kind == types.Method:
		var ps []string
		for _, p := range s.params {
			if p.typ != nil {
				ps = append(ps, p.typ.Signature()+" "+p.name)
			} else {
				ps = append(ps, p.name)
			}
		}
		return s.containing.Signature() + "." + s.name + "(" + strings.Join(ps, ", ") + ")"
	case s.containing != nil:
		return s.containing.Signature() + "." + s.name
	case s.namespace != "":
		return s.namespace + "." + s.name
	default:
		return s.name
	}
}

func (s *Symbol) String() string { return s.Signature() }
