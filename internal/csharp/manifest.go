// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package csharp

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// ErrInvalidManifest is returned when a reference manifest fails validation.
var ErrInvalidManifest = errors.New("invalid reference manifest")

// Manifest describes a referenced assembly: the types and members that
// translated code may use, and the attributes that control their script
// names and import module.
type Manifest struct {
	Assembly       string          `yaml:"assembly"`
	ScriptAssembly string          `yaml:"scriptAssembly,omitempty"`
	Attributes     []AttributeSpec `yaml:"attributes,omitempty"`
	Types          []TypeSpec      `yaml:"types"`
}

// TypeSpec declares a referenced type. Name is fully qualified for top-level
// types and simple for nested ones.
type TypeSpec struct {
	Name       string          `yaml:"name"`
	Kind       string          `yaml:"kind,omitempty"` // class, struct, interface, enum, delegate
	Static     bool            `yaml:"static,omitempty"`
	Base       string          `yaml:"base,omitempty"`
	Interfaces []string        `yaml:"interfaces,omitempty"`
	TypeParams []string        `yaml:"typeParams,omitempty"`
	ScriptName string          `yaml:"scriptName,omitempty"`
	Attributes []AttributeSpec `yaml:"attributes,omitempty"`
	Members    []MemberSpec    `yaml:"members,omitempty"`
	Nested     []TypeSpec      `yaml:"nested,omitempty"`
}

// MemberSpec declares a member of a referenced type.
type MemberSpec struct {
	Name       string          `yaml:"name"`
	Kind       string          `yaml:"kind"` // field, property, method, constructor, event
	Type       string          `yaml:"type,omitempty"`
	Static     bool            `yaml:"static,omitempty"`
	Params     []ParamSpec     `yaml:"params,omitempty"`
	ScriptName string          `yaml:"scriptName,omitempty"`
	InlineCode string          `yaml:"inlineCode,omitempty"`
	Attributes []AttributeSpec `yaml:"attributes,omitempty"`
}

// ParamSpec declares a method parameter.
type ParamSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// AttributeSpec is an attribute with positional string arguments.
type AttributeSpec struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args,omitempty"`
}

var typeKindNames = map[string]types.TypeKind{
	"":          types.Class,
	"class":     types.Class,
	"struct":    types.Struct,
	"interface": types.Interface,
	"enum":      types.Enum,
	"delegate":  types.Delegate,
}

var memberKindNames = map[string]bool{
	"field": true, "property": true, "method": true, "constructor": true, "event": true,
}

// LoadManifest decodes and validates a manifest. Unknown keys are rejected.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifestFile reads a manifest from disk.
func LoadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()
	m, err := LoadManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

//go:embed builtin.yaml
var builtinYAML string

var builtin = sync.OnceValues(func() (*Manifest, error) {
	return LoadManifest(strings.NewReader(builtinYAML))
})

// BuiltinManifest returns the core library manifest (System types and the
// script runtime) that is referenced unless disabled.
func BuiltinManifest() *Manifest {
	m, err := builtin()
	if err != nil {
		panic(fmt.Sprintf("builtin manifest: %v", err))
	}
	return m
}

// Validate checks names and kinds.
func (m *Manifest) Validate() error {
	if m.Assembly == "" {
		return fmt.Errorf("%w: missing assembly name", ErrInvalidManifest)
	}
	var check func(t TypeSpec, nested bool) error
	check = func(t TypeSpec, nested bool) error {
		if t.Name == "" {
			return fmt.Errorf("%w: type without a name in %s", ErrInvalidManifest, m.Assembly)
		}
		if nested && strings.Contains(t.Name, ".") {
			return fmt.Errorf("%w: nested type %q must have a simple name", ErrInvalidManifest, t.Name)
		}
		if _, ok := typeKindNames[t.Kind]; !ok {
			return fmt.Errorf("%w: type %s has unknown kind %q", ErrInvalidManifest, t.Name, t.Kind)
		}
		for _, mem := range t.Members {
			if mem.Name == "" && mem.Kind != "constructor" {
				return fmt.Errorf("%w: member without a name in %s", ErrInvalidManifest, t.Name)
			}
			if !memberKindNames[mem.Kind] {
				return fmt.Errorf("%w: member %s.%s has unknown kind %q", ErrInvalidManifest, t.Name, mem.Name, mem.Kind)
			}
		}
		for _, n := range t.Nested {
			if err := check(n, true); err != nil {
				return err
			}
		}
		return nil
	}
	for _, t := range m.Types {
		if err := check(t, false); err != nil {
			return err
		}
	}
	return nil
}

func attributeData(specs []AttributeSpec) []types.AttributeData {
	var out []types.AttributeData
	for _, a := range specs {
		out = append(out, types.AttributeData{Name: a.Name, Args: a.Args})
	}
	return out
}

// references holds the symbols of all referenced assemblies.
type references struct {
	assemblies []*Symbol
	types      map[string]*Symbol // Fully qualified name, nested with '.'
	arrays     map[*Symbol]*Symbol
}

func newReferences() *references {
	return &references{types: make(map[string]*Symbol), arrays: make(map[*Symbol]*Symbol)}
}

// arrayOf returns the shared array type for elem.
func (r *references) arrayOf(elem *Symbol) *Symbol {
	if a, ok := r.arrays[elem]; ok {
		return a
	}
	a := newArrayType(elem)
	r.arrays[elem] = a
	return a
}

// load declares the types of every manifest, then their members, so that
// member types may name types of any manifest.
func (r *references) load(manifests []*Manifest) {
	type pending struct {
		spec TypeSpec
		sym  *Symbol
	}
	var all []pending
	var declare func(spec TypeSpec, sym *Symbol)
	declare = func(spec TypeSpec, sym *Symbol) {
		sym.static = spec.Static
		sym.attrs = attributeData(spec.Attributes)
		if spec.ScriptName != "" {
			sym.attrs = append(sym.attrs, types.AttributeData{Name: naming.AttrScriptName, Args: []string{spec.ScriptName}})
		}
		for _, tp := range spec.TypeParams {
			sym.typeParams = append(sym.typeParams, newTypeParameter(tp, sym))
		}
		r.types[sym.Signature()] = sym
		all = append(all, pending{spec, sym})
		for _, n := range spec.Nested {
			nested := sym.newNestedType(n.Name, typeKindNames[n.Kind])
			nested.access = types.Public
			declare(n, nested)
		}
	}
	for _, m := range manifests {
		attrs := attributeData(m.Attributes)
		if m.ScriptAssembly != "" {
			attrs = append(attrs, types.AttributeData{Name: naming.AttrScriptAssembly, Args: []string{m.ScriptAssembly}})
		}
		asm := newAssembly(m.Assembly, attrs)
		r.assemblies = append(r.assemblies, asm)
		for _, spec := range m.Types {
			declare(spec, newType(asm, spec.Name, typeKindNames[spec.Kind]))
		}
	}

	for _, p := range all {
		r.members(p.spec, p.sym)
	}
	for _, asm := range r.assemblies {
		asm.freeze()
	}
}

func (r *references) members(spec TypeSpec, t *Symbol) {
	if spec.Base != "" {
		t.base = r.resolve(spec.Base, t)
	}
	for _, i := range spec.Interfaces {
		if it := r.resolve(i, t); it != nil {
			t.interfaces = append(t.interfaces, it)
		}
	}
	for _, ms := range spec.Members {
		m := &Symbol{name: ms.Name, access: types.Public, static: ms.Static, attrs: attributeData(ms.Attributes)}
		if ms.ScriptName != "" {
			m.attrs = append(m.attrs, types.AttributeData{Name: naming.AttrScriptName, Args: []string{ms.ScriptName}})
		}
		if ms.InlineCode != "" {
			m.attrs = append(m.attrs, types.AttributeData{Name: naming.AttrInlineCode, Args: []string{ms.InlineCode}})
		}
		switch ms.Kind {
		case "field":
			m.kind = types.Field
		case "property":
			m.kind = types.Property
		case "event":
			m.kind = types.Event
		case "method":
			m.kind = types.Method
			if _, ok := types.OperatorKindFromMethodName(ms.Name); ok {
				m.methodKind = types.UserDefinedOperator
			}
		case "constructor":
			m.kind = types.Method
			m.methodKind = types.Constructor
			m.name = t.name
		}
		if ms.Type != "" {
			m.typ = r.resolve(ms.Type, t)
		}
		for _, ps := range ms.Params {
			m.params = append(m.params, newParameter(ps.Name, r.resolve(ps.Type, t)))
		}
		switch m.kind {
		case types.Property:
			t.addProperty(m)
		case types.Event:
			t.addEvent(m)
		default:
			t.addMember(m)
		}
	}
	if t.typeKind == types.Enum {
		for _, m := range t.members {
			if m.kind == types.Field {
				m.static = true
				m.typ = t
			}
		}
	}
}

// resolve finds a type by keyword, type parameter, or full name. A trailing
// "[]" makes an array type.
func (r *references) resolve(name string, owner *Symbol) *Symbol {
	name = strings.TrimSpace(name)
	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		if e := r.resolve(elem, owner); e != nil {
			return r.arrayOf(e)
		}
		return nil
	}
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	if full, ok := naming.KeywordTypeName(name); ok {
		name = full
	}
	for o := owner; o != nil; o = o.containing {
		if tp := o.typeParameter(name); tp != nil {
			return tp
		}
	}
	return r.types[name]
}
