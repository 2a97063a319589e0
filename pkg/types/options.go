// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// ScriptName is the computed TypeScript identifier for a symbol.
type ScriptName string

func (n ScriptName) String() string { return string(n) }

// FieldRenameRule selects how field names are derived.
type FieldRenameRule int

const (
	LowerCaseFirstChar              FieldRenameRule = iota // camelCase every field
	PrivateDollarPrefix                                    // camelCase, "$" prefix on private fields
	DollarPrefixOnlyForDuplicateName                       // camelCase, "$" prefix only on collisions
)

func (r FieldRenameRule) String() string {
	switch r {
	case LowerCaseFirstChar:
		return "lowerCaseFirstChar"
	case PrivateDollarPrefix:
		return "dollarPrefixOnPrivate"
	case DollarPrefixOnlyForDuplicateName:
		return "dollarPrefixOnDuplicateOnly"
	default:
		return "unknown"
	}
}

// ParseFieldRenameRule accepts the names produced by FieldRenameRule.String.
func ParseFieldRenameRule(s string) (FieldRenameRule, bool) {
	for _, r := range []FieldRenameRule{LowerCaseFirstChar, PrivateDollarPrefix, DollarPrefixOnlyForDuplicateName} {
		if r.String() == s {
			return r, true
		}
	}
	return LowerCaseFirstChar, false
}

// UserDefinedOperatorKind identifies an overloadable unary operator.
type UserDefinedOperatorKind int

const (
	OpDecrement UserDefinedOperatorKind = iota
	OpIncrement
	OpLogicalNot
	OpOnesComplement
	OpUnaryPlus
	OpUnaryNegation
)

// operatorMethodNames maps each kind to its host-language method name.
var operatorMethodNames = map[UserDefinedOperatorKind]string{
	OpDecrement:      "op_Decrement",
	OpIncrement:      "op_Increment",
	OpLogicalNot:     "op_LogicalNot",
	OpOnesComplement: "op_OnesComplement",
	OpUnaryPlus:      "op_UnaryPlus",
	OpUnaryNegation:  "op_UnaryNegation",
}

// MethodName returns the host-language method name of the operator, e.g.
// "op_Increment".
func (k UserDefinedOperatorKind) MethodName() string {
	return operatorMethodNames[k]
}

// OperatorKindFromMethodName maps a host operator method name back to its kind.
func OperatorKindFromMethodName(name string) (UserDefinedOperatorKind, bool) {
	for k, n := range operatorMethodNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// RenameRules controls how names are derived. It is immutable once built; use
// the With methods to derive modified copies.
type RenameRules struct {
	fieldRule     FieldRenameRule
	operatorNames map[UserDefinedOperatorKind]string
}

// DefaultRenameRules camel-cases fields and names operator overload functions
// after their host method names.
func DefaultRenameRules() RenameRules {
	names := make(map[UserDefinedOperatorKind]string, len(operatorMethodNames))
	for k, n := range operatorMethodNames {
		names[k] = n
	}
	return RenameRules{fieldRule: LowerCaseFirstChar, operatorNames: names}
}

// NewRenameRules builds rules with the given field rule and operator names.
// Kinds missing from names fall back to the defaults.
func NewRenameRules(fieldRule FieldRenameRule, names map[UserDefinedOperatorKind]string) RenameRules {
	r := DefaultRenameRules()
	r.fieldRule = fieldRule
	for k, n := range names {
		r.operatorNames[k] = n
	}
	return r
}

// FieldRule returns the configured field rename rule.
func (r RenameRules) FieldRule() FieldRenameRule {
	return r.fieldRule
}

// OperatorFunctionName returns the function name used for calls to a
// user-defined operator of the given kind.
func (r RenameRules) OperatorFunctionName(kind UserDefinedOperatorKind) (string, bool) {
	if r.operatorNames == nil {
		n, ok := operatorMethodNames[kind]
		return n, ok
	}
	n, ok := r.operatorNames[kind]
	return n, ok
}

// WithFieldRule returns a copy with a different field rule.
func (r RenameRules) WithFieldRule(rule FieldRenameRule) RenameRules {
	return NewRenameRules(rule, r.operatorNames)
}

// WithOperatorName returns a copy that names the overload function for kind.
func (r RenameRules) WithOperatorName(kind UserDefinedOperatorKind, name string) RenameRules {
	names := make(map[UserDefinedOperatorKind]string, len(r.operatorNames)+1)
	for k, n := range r.operatorNames {
		names[k] = n
	}
	names[kind] = name
	return NewRenameRules(r.fieldRule, names)
}

// Overrides holds string-keyed replacements for each symbol table. Keys are
// canonical symbol signatures.
type Overrides struct {
	ScriptNames map[string]string
	InlineCode  map[string]string
}

// Options configures a compilation. It is shared read-only by every unit.
type Options struct {
	OutputRoot       string      // Root directory for emitted .ts files
	SourceRoot       string      // Root used to compute relative output paths (optional)
	RenameRules      RenameRules // Naming policy
	Overrides        Overrides   // Per-table override maps
	Concurrency      int         // Parallel units; <= 0 means runtime.NumCPU()
	WarningsAsErrors bool        // Promote warnings to errors
	SuppressedCodes  []string    // Diagnostic codes to drop
}

// IsSuppressed reports whether the diagnostic code is suppressed.
func (o Options) IsSuppressed(code string) bool {
	for _, c := range o.SuppressedCodes {
		if c == code {
			return true
		}
	}
	return false
}
