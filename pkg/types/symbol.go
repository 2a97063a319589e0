// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across cs2ts packages: the host
// symbol boundary, diagnostics, import descriptors, and compiler options.
package types

// SymbolKind identifies the category of a host-language declaration.
type SymbolKind int

const (
	Namespace SymbolKind = iota // Namespace declaration
	NamedType                   // Class, struct, interface, enum, or delegate
	Field                       // Field declaration
	Method                      // Method, constructor, accessor, or operator
	Property                    // Property declaration
	Event                       // Event declaration
	Parameter                   // Method or indexer parameter
	Local                       // Local variable
	Label                       // Statement label
	Assembly                    // Containing assembly
)

// String returns the human-readable name of the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case Namespace:
		return "Namespace"
	case NamedType:
		return "NamedType"
	case Field:
		return "Field"
	case Method:
		return "Method"
	case Property:
		return "Property"
	case Event:
		return "Event"
	case Parameter:
		return "Parameter"
	case Local:
		return "Local"
	case Label:
		return "Label"
	case Assembly:
		return "Assembly"
	default:
		return "Unknown"
	}
}

// MethodKind refines Method symbols.
type MethodKind int

const (
	Ordinary MethodKind = iota
	Constructor
	StaticConstructor
	PropertyGet
	PropertySet
	EventAdd
	EventRemove
	UserDefinedOperator
)

// TypeKind refines NamedType symbols.
type TypeKind int

const (
	Class TypeKind = iota
	Struct
	Interface
	Enum
	Delegate
	Array         // Type returns the element type
	TypeParameter // Generic type parameter
)

// Accessibility is the declared accessibility of a symbol.
type Accessibility int

const (
	NotApplicable Accessibility = iota
	Private
	Protected
	Internal
	Public
)

func (a Accessibility) String() string {
	switch a {
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Internal:
		return "internal"
	case Public:
		return "public"
	default:
		return ""
	}
}

// AttributeData is an attribute applied to a declaration, with its positional
// constructor arguments already evaluated to strings.
type AttributeData struct {
	Name string   // Attribute name without the "Attribute" suffix
	Args []string // Positional constructor arguments
}

// Arg returns the i-th positional argument, if present.
func (a AttributeData) Arg(i int) (string, bool) {
	if i < 0 || i >= len(a.Args) {
		return "", false
	}
	return a.Args[i], true
}

// Symbol is the opaque identity of a host-language declaration, supplied by
// the front end. Implementations must be comparable (pointer identity is the
// usual choice) because symbols key Go maps; two references to the same
// declaration must yield the same Symbol value.
type Symbol interface {
	Name() string
	Kind() SymbolKind
	MethodKind() MethodKind
	TypeKind() TypeKind
	Accessibility() Accessibility
	IsStatic() bool

	// IsImplicitlyDeclared reports compiler-synthesized members such as
	// auto-property backing fields and default constructors.
	IsImplicitlyDeclared() bool

	// ContainingType returns nil for top-level types, namespaces, and assemblies.
	ContainingType() Symbol

	// ContainingAssembly returns an Assembly-kind symbol, or nil.
	ContainingAssembly() Symbol

	// Signature is the canonical fully qualified signature, for example
	// "Acme.Widget.Resize(int, int)". It is stable across runs.
	Signature() string

	Attributes() []AttributeData

	// Members lists the members of a type in declaration order.
	Members() []Symbol

	// Parameters lists the parameters of a method in declaration order.
	Parameters() []Symbol

	// Type is the declared type of a field, property, parameter, or local, and
	// the return type of a method. Nil when unknown or not applicable.
	Type() Symbol
}

// FindAttribute returns the first attribute on sym with the given name.
func FindAttribute(sym Symbol, name string) (AttributeData, bool) {
	if sym == nil {
		return AttributeData{}, false
	}
	for _, a := range sym.Attributes() {
		if a.Name == name {
			return a, true
		}
	}
	return AttributeData{}, false
}
