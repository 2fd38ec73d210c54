// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/woozymasta/yangdoc/yang"
)

// mapTypeDef maps one type definition onto the property fragment and
// returns its JSON type tag. Every member of the closed type set must be
// handled here; an unlisted variant aborts the compilation.
func (gen *generator) mapTypeDef(typeDef yang.TypeDef, node yang.DataNode, property *Schema) (string, error) {
	var jsonType string
	switch typed := typeDef.(type) {
	case *yang.BinaryType:
		property.Format = formatByte
		jsonType = typeString

	case *yang.BitsType:
		jsonType = mapBitsType(typed, property)

	case *yang.EnumType:
		jsonType = mapEnumType(typed, property)

	case *yang.IdentityrefType:
		jsonType = gen.mapIdentityrefType(typed, property)

	case *yang.StringType:
		jsonType = gen.mapStringType(typed, node, property)

	case *yang.UnionType:
		jsonType = unionJSONType(typed)

	case *yang.EmptyType:
		jsonType = typeObject

	case *yang.LeafrefType:
		// Aliased types delegate to their target; the declared default of
		// the alias itself is intentionally not applied.
		target, ok := gen.ctx.ResolveLeafref(typed)
		if !ok {
			return "", fmt.Errorf("%w %q", ErrResolveLeafref, typed.Path)
		}

		return gen.mapTypeDef(target, node, property)

	case *yang.BooleanType:
		jsonType = typeBoolean
		property.Default = true

	case *yang.DecimalType, *yang.IntType:
		jsonType = mapNumberType(typeDef, property)

	case *yang.InstanceIDType:
		jsonType = gen.mapInstanceIDType(node, property)

	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownType, typeDef)
	}

	if _, isIdentityref := typeDef.(*yang.IdentityrefType); !isIdentityref {
		property.Type = jsonType
		if text, hasDefault := typeDef.DefaultValue(); hasDefault {
			applyDeclaredDefault(typeDef, text, property)
		}
	}

	return jsonType, nil
}

// applyDeclaredDefault coerces a declared textual default into the value
// space of its type before storing it on the property.
func applyDeclaredDefault(typeDef yang.TypeDef, text string, property *Schema) {
	switch typed := typeDef.(type) {
	case *yang.BooleanType:
		property.Default = text == "true"

	case *yang.DecimalType:
		if isHexOrOctal(text) {
			property.Default = text
			return
		}

		property.Default = json.Number(text)

	case *yang.IntType:
		// A 0- or -0-prefixed literal is hexadecimal or octal; it stays a
		// string so its base is not silently reinterpreted. This check
		// runs before any numeric coercion: a json.Number carrying a
		// base-prefixed literal would pass straight into the output as an
		// invalid JSON token.
		if isHexOrOctal(text) {
			property.Default = text
			return
		}

		if typed.Width == 64 && typed.Unsigned {
			property.Default = json.Number(text)
			return
		}

		if value, err := strconv.ParseInt(text, 10, 64); err == nil {
			property.Default = value
			return
		}

		property.Default = text

	default:
		property.Default = text
	}
}

// isHexOrOctal reports whether a textual default is base-prefixed.
func isHexOrOctal(text string) bool {
	return strings.HasPrefix(text, "0") || strings.HasPrefix(text, "-0")
}

// mapBitsType renders a bits type as a unique string array domain.
func mapBitsType(typed *yang.BitsType, property *Schema) string {
	zero := uint64(0)
	unique := true
	property.MinItems = &zero
	property.UniqueItems = &unique
	property.Enum = typed.Bits
	if len(typed.Bits) > 0 {
		property.Default = typed.Bits[0] + " " + typed.Bits[len(typed.Bits)-1]
	}

	return typeString
}

// mapEnumType renders an enumeration; the first value doubles as example.
func mapEnumType(typed *yang.EnumType, property *Schema) string {
	property.Enum = typed.Values
	if len(typed.Values) > 0 {
		property.Example = typed.Values[0]
	}

	return typeString
}

// mapStringType renders a string type: the length constraint is inherited
// along the base-type chain, and a pattern constraint drives example
// synthesis with "Some <name>" as the unconstrained fallback.
func (gen *generator) mapStringType(typed *yang.StringType, node yang.DataNode, property *Schema) string {
	current := typed
	length := current.Length
	for length == nil && current.Base != nil {
		current = current.Base
		length = current.Length
	}

	if length != nil {
		minLength, maxLength := length.Min, length.Max
		property.MinLength = &minLength
		property.MaxLength = &maxLength
	}

	if len(current.Patterns) > 0 {
		pattern := current.Patterns[0]
		example, ok := shortestPatternExample(pattern)
		if !ok {
			gen.logger.Warn("cannot create example string for pattern",
				"type", current.Name,
				"pattern", pattern,
			)
		}

		property.Default = example
		return typeString
	}

	property.Default = "Some " + node.Info().Name
	return typeString
}

// mapIdentityrefType links (or duplicates) the identity definition and
// emits a bare $ref; nothing else may sit alongside a reference.
func (gen *generator) mapIdentityrefType(typed *yang.IdentityrefType, property *Schema) string {
	base := typed.Base
	var definitionName string
	if gen.isImported(base) {
		definitionName = gen.addImportedIdentity(base)
	} else {
		definitionName = base.Name + gen.names.Discriminator(base)
	}

	property.Ref = gen.prefix + definitionName
	return typeString
}

// isImported reports whether an identity lives outside the module
// currently being compiled.
func (gen *generator) isImported(identity *yang.Identity) bool {
	return identity.Namespace != gen.module.Namespace
}

// addImportedIdentity duplicates a foreign identity definition into the
// current output under its own discriminated name, so the document never
// references another module's yet-unwritten document.
func (gen *generator) addImportedIdentity(identity *yang.Identity) string {
	if gen.names.Assigned(identity) {
		return identity.Name + gen.names.Discriminator(identity)
	}

	schema := gen.buildIdentitySchema(identity)
	discriminator := gen.names.PickDiscriminator(identity, []string{identity.Name})
	name := identity.Name + discriminator
	gen.defs[name] = schema
	return name
}

// buildIdentitySchema renders one identity as a string enumeration of its
// own name followed by every transitively derived identity name.
func (gen *generator) buildIdentitySchema(identity *yang.Identity) *Schema {
	enum := []string{identity.Name}
	gen.appendDerived(identity, &enum)

	description := identity.Description
	return &Schema{
		Title:       identity.Name,
		Type:        typeString,
		Description: &description,
		Enum:        enum,
	}
}

// appendDerived collects derived identity names depth-first in
// declaration order.
func (gen *generator) appendDerived(base *yang.Identity, enum *[]string) {
	for _, derived := range gen.ctx.DerivedIdentities(base) {
		*enum = append(*enum, derived.Name)
		gen.appendDerived(derived, enum)
	}
}

// mapInstanceIDType synthesizes an example path to the first container of
// the node's own module, when one exists.
func (gen *generator) mapInstanceIDType(node yang.DataNode, property *Schema) string {
	module, ok := gen.ctx.ModuleByNamespace(node.Info().Namespace)
	if !ok {
		return typeString
	}

	for _, child := range module.Children {
		if container, isContainer := child.(*yang.Container); isContainer {
			property.Default = fmt.Sprintf("/%s:%s", module.Prefix, container.Name)
			break
		}
	}

	return typeString
}

// mapNumberType renders the integer and decimal64 families. A declared
// hexadecimal or octal default demotes the whole property to string.
func mapNumberType(typeDef yang.TypeDef, property *Schema) string {
	if text, hasDefault := typeDef.DefaultValue(); hasDefault && isHexOrOctal(text) {
		return typeString
	}

	switch typed := typeDef.(type) {
	case *yang.DecimalType:
		if typed.Range != nil {
			property.Default = json.Number(strconv.FormatFloat(typed.Range.Min, 'f', -1, 64))
		}

		return typeNumber

	case *yang.IntType:
		switch {
		case typed.Width == 64 && typed.Unsigned:
			// No lower-bound default for uint64; zero is the only literal
			// safely representable everywhere.
			property.Default = int64(0)

		case typed.Width == 64 || (typed.Width == 32 && typed.Unsigned):
			property.Format = formatInt64
			if typed.Range != nil {
				property.Default = typed.Range.Min
			}

		default:
			property.Format = formatInt32
			if typed.Range != nil {
				property.Default = typed.Range.Min
			}
		}

		return typeInteger
	}

	return typeString
}

// unionJSONType resolves a union by member precedence: any string-like
// member forces string; a boolean member forces boolean unless a numeric
// member also appears, which makes the combination ambiguous and resolves
// to string; otherwise number.
func unionJSONType(union *yang.UnionType) string {
	var hasString, hasNumber, hasBoolean bool
	for _, member := range union.Members {
		if hasString {
			break
		}

		switch member.(type) {
		case *yang.StringType, *yang.BitsType, *yang.BinaryType,
			*yang.IdentityrefType, *yang.EnumType, *yang.LeafrefType,
			*yang.UnionType:
			hasString = true
		case *yang.IntType, *yang.DecimalType:
			hasNumber = true
		case *yang.BooleanType:
			hasBoolean = true
		}
	}

	if hasString {
		return typeString
	}

	if hasBoolean {
		if hasNumber {
			return typeString
		}

		return typeBoolean
	}

	return typeNumber
}
