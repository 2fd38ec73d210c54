// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import (
	"bytes"
	"sort"

	"github.com/goccy/go-json"
)

const (
	typeString  = "string"
	typeObject  = "object"
	typeNumber  = "number"
	typeInteger = "integer"
	typeBoolean = "boolean"
	typeArray   = "array"

	formatInt32 = "int32"
	formatInt64 = "int64"
	formatByte  = "byte"
)

// XML is the xml metadata pair emitted alongside schema fragments.
type XML struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
}

// Schema is one named or nested definition fragment. A zero field is
// omitted from serialization, except Description which distinguishes
// "absent" (nil) from "declared empty" (pointer to empty string), and
// Default/Example which may legitimately hold false, 0 or "".
type Schema struct {
	Title       string
	Type        string
	Properties  *Properties
	Required    []string
	Description *string
	Enum        []string
	Default     any
	Example     any
	Format      string
	Items       *Schema
	Ref         string
	MinItems    *uint64
	MaxItems    *uint64
	UniqueItems *bool
	MinLength   *uint64
	MaxLength   *uint64
	XML         *XML
}

// Definitions maps definition name to schema fragment. Keys are globally
// unique within one compilation; a written key is never replaced with
// different content.
type Definitions map[string]*Schema

// Names returns all definition names in lexical order.
func (defs Definitions) Names() []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// MarshalJSON serializes definitions with lexically ordered keys.
func (defs Definitions) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for index, name := range defs.Names() {
		if index > 0 {
			out.WriteByte(',')
		}

		if err := writeJSONPair(&out, name, defs[name]); err != nil {
			return nil, err
		}
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// MarshalJSON serializes the schema with a fixed canonical key order so
// repeated compilations produce byte-identical documents.
func (schema *Schema) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	writer := jsonObjectWriter{out: &out}
	out.WriteByte('{')

	if schema.Title != "" {
		writer.put("title", schema.Title)
	}

	if schema.Type != "" {
		writer.put("type", schema.Type)
	}

	if schema.Properties != nil {
		writer.put("properties", schema.Properties)
	}

	if len(schema.Required) > 0 {
		writer.put("required", schema.Required)
	}

	if schema.Description != nil {
		writer.put("description", *schema.Description)
	}

	if schema.Enum != nil {
		writer.put("enum", schema.Enum)
	}

	if schema.Default != nil {
		writer.put("default", schema.Default)
	}

	if schema.Example != nil {
		writer.put("example", schema.Example)
	}

	if schema.Format != "" {
		writer.put("format", schema.Format)
	}

	if schema.Items != nil {
		writer.put("items", schema.Items)
	}

	if schema.Ref != "" {
		writer.put("$ref", schema.Ref)
	}

	if schema.MinItems != nil {
		writer.put("minItems", *schema.MinItems)
	}

	if schema.MaxItems != nil {
		writer.put("maxItems", *schema.MaxItems)
	}

	if schema.UniqueItems != nil {
		writer.put("uniqueItems", *schema.UniqueItems)
	}

	if schema.MinLength != nil {
		writer.put("minLength", *schema.MinLength)
	}

	if schema.MaxLength != nil {
		writer.put("maxLength", *schema.MaxLength)
	}

	if schema.XML != nil {
		writer.put("xml", schema.XML)
	}

	if writer.err != nil {
		return nil, writer.err
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// Properties is an insertion-ordered mapping of property name to schema.
type Properties struct {
	keys   []string
	values map[string]*Schema
}

// NewProperties returns an empty ordered property mapping.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]*Schema)}
}

// Set stores a property, keeping the original position on replacement.
func (properties *Properties) Set(name string, schema *Schema) {
	if _, exists := properties.values[name]; !exists {
		properties.keys = append(properties.keys, name)
	}

	properties.values[name] = schema
}

// Get returns the property schema for name.
func (properties *Properties) Get(name string) (*Schema, bool) {
	schema, ok := properties.values[name]
	return schema, ok
}

// Len returns the number of stored properties.
func (properties *Properties) Len() int { return len(properties.keys) }

// Keys returns property names in insertion order.
func (properties *Properties) Keys() []string {
	out := make([]string, len(properties.keys))
	copy(out, properties.keys)
	return out
}

// MarshalJSON serializes properties in insertion order.
func (properties *Properties) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for index, name := range properties.keys {
		if index > 0 {
			out.WriteByte(',')
		}

		if err := writeJSONPair(&out, name, properties.values[name]); err != nil {
			return nil, err
		}
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// jsonObjectWriter appends key/value pairs to a JSON object body and
// remembers the first encoding error.
type jsonObjectWriter struct {
	out   *bytes.Buffer
	wrote bool
	err   error
}

func (writer *jsonObjectWriter) put(key string, value any) {
	if writer.err != nil {
		return
	}

	if writer.wrote {
		writer.out.WriteByte(',')
	}

	writer.wrote = true
	writer.err = writeJSONPair(writer.out, key, value)
}

// writeJSONPair appends one `"key":value` pair to an object body.
func writeJSONPair(out *bytes.Buffer, key string, value any) error {
	encodedKey, err := json.Marshal(key)
	if err != nil {
		return err
	}

	encodedValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	out.Write(encodedKey)
	out.WriteByte(':')
	out.Write(encodedValue)
	return nil
}
