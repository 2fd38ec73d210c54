// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yang

// TypeInfo carries the fields shared by every type definition.
type TypeInfo struct {
	// Name is the type or typedef name, e.g. "uint8" or "percent".
	Name string
	// Default is the declared default value in its textual form.
	Default string
	// HasDefault reports whether Default was declared at all; YANG allows
	// an empty string default, so presence cannot be derived from Default.
	HasDefault bool
}

// DefaultValue returns the declared textual default and whether one exists.
func (info *TypeInfo) DefaultValue() (string, bool) { return info.Default, info.HasDefault }

func (*TypeInfo) typeDef() {}

// TypeDef is one type definition from the closed set of YANG built-in
// types understood by the compiler: Binary, Bits, Boolean, Decimal, Empty,
// Enum, Identityref, InstanceID, Leafref, String, Union and Int. The
// compiler dispatches exhaustively; an unlisted implementation aborts the
// compilation.
type TypeDef interface {
	DefaultValue() (string, bool)
	typeDef()
}

// Length is a string or binary length constraint span.
type Length struct {
	Min uint64
	Max uint64
}

// IntRange is the allowed value span of an integer type. For uint64 types
// the upper bound may be clamped to the int64 maximum; the compiler only
// consumes lower bounds.
type IntRange struct {
	Min int64
	Max int64
}

// DecimalRange is the allowed value span of a decimal64 type.
type DecimalRange struct {
	Min float64
	Max float64
}

// BinaryType is YANG binary.
type BinaryType struct {
	TypeInfo
	Length *Length
}

// BitsType is YANG bits with its named bits in declaration order.
type BitsType struct {
	TypeInfo
	Bits []string
}

// BooleanType is YANG boolean.
type BooleanType struct {
	TypeInfo
}

// DecimalType is YANG decimal64.
type DecimalType struct {
	TypeInfo
	FractionDigits int
	Range          *DecimalRange
}

// EmptyType is YANG empty.
type EmptyType struct {
	TypeInfo
}

// EnumType is YANG enumeration with value names in declaration order.
type EnumType struct {
	TypeInfo
	Values []string
}

// IdentityrefType references an identity base.
type IdentityrefType struct {
	TypeInfo
	Base *Identity
}

// InstanceIDType is YANG instance-identifier.
type InstanceIDType struct {
	TypeInfo
}

// LeafrefType aliases the type of the leaf at Path. Resolution happens
// through [Context.ResolveLeafref]; the model itself stores only the path.
type LeafrefType struct {
	TypeInfo
	Path string
}

// StringType is YANG string, possibly derived: Base points at the type it
// restricts, and constraints inherit down the chain.
type StringType struct {
	TypeInfo
	Base     *StringType
	Length   *Length
	Patterns []string
}

// UnionType is YANG union over member types.
type UnionType struct {
	TypeInfo
	Members []TypeDef
}

// IntType covers the signed and unsigned integer family. Width is one of
// 8, 16, 32 or 64.
type IntType struct {
	TypeInfo
	Width    int
	Unsigned bool
	Range    *IntRange
}
