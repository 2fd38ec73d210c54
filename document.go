// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalDocumentJSON serializes definitions as pretty JSON with lexically
// ordered definition names and canonically ordered schema keys.
func MarshalDocumentJSON(defs Definitions) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(defs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocumentJSON, err)
	}

	return out.Bytes(), nil
}

// MarshalDocumentYAML serializes definitions as YAML through a hand-built
// node tree, keeping the same ordering guarantees as the JSON form.
func MarshalDocumentYAML(defs Definitions) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range defs.Names() {
		schemaNode, err := schemaYAMLNode(defs[name])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeDocumentYAML, err)
		}

		root.Content = append(root.Content, yamlScalarNode("!!str", name), schemaNode)
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{root},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocumentYAML, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocumentYAML, err)
	}

	return out.Bytes(), nil
}

// schemaYAMLNode builds a mapping node for one schema fragment in the
// same canonical key order the JSON form uses.
func schemaYAMLNode(schema *Schema) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	appendPair := func(key string, value *yaml.Node) {
		node.Content = append(node.Content, yamlScalarNode("!!str", key), value)
	}

	if schema.Title != "" {
		appendPair("title", yamlScalarNode("!!str", schema.Title))
	}

	if schema.Type != "" {
		appendPair("type", yamlScalarNode("!!str", schema.Type))
	}

	if schema.Properties != nil {
		properties := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, name := range schema.Properties.Keys() {
			property, _ := schema.Properties.Get(name)
			propertyNode, err := schemaYAMLNode(property)
			if err != nil {
				return nil, err
			}

			properties.Content = append(properties.Content, yamlScalarNode("!!str", name), propertyNode)
		}

		appendPair("properties", properties)
	}

	if len(schema.Required) > 0 {
		appendPair("required", yamlStringSequence(schema.Required))
	}

	if schema.Description != nil {
		appendPair("description", yamlScalarNode("!!str", *schema.Description))
	}

	if schema.Enum != nil {
		appendPair("enum", yamlStringSequence(schema.Enum))
	}

	if schema.Default != nil {
		valueNode, err := yamlValueNode(schema.Default)
		if err != nil {
			return nil, err
		}

		appendPair("default", valueNode)
	}

	if schema.Example != nil {
		valueNode, err := yamlValueNode(schema.Example)
		if err != nil {
			return nil, err
		}

		appendPair("example", valueNode)
	}

	if schema.Format != "" {
		appendPair("format", yamlScalarNode("!!str", schema.Format))
	}

	if schema.Items != nil {
		itemsNode, err := schemaYAMLNode(schema.Items)
		if err != nil {
			return nil, err
		}

		appendPair("items", itemsNode)
	}

	if schema.Ref != "" {
		appendPair("$ref", yamlScalarNode("!!str", schema.Ref))
	}

	if schema.MinItems != nil {
		appendPair("minItems", yamlScalarNode("!!int", strconv.FormatUint(*schema.MinItems, 10)))
	}

	if schema.MaxItems != nil {
		appendPair("maxItems", yamlScalarNode("!!int", strconv.FormatUint(*schema.MaxItems, 10)))
	}

	if schema.UniqueItems != nil {
		appendPair("uniqueItems", yamlScalarNode("!!bool", strconv.FormatBool(*schema.UniqueItems)))
	}

	if schema.MinLength != nil {
		appendPair("minLength", yamlScalarNode("!!int", strconv.FormatUint(*schema.MinLength, 10)))
	}

	if schema.MaxLength != nil {
		appendPair("maxLength", yamlScalarNode("!!int", strconv.FormatUint(*schema.MaxLength, 10)))
	}

	if schema.XML != nil {
		xmlNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		xmlNode.Content = append(xmlNode.Content,
			yamlScalarNode("!!str", "name"), yamlScalarNode("!!str", schema.XML.Name))
		if schema.XML.Namespace != "" {
			xmlNode.Content = append(xmlNode.Content,
				yamlScalarNode("!!str", "namespace"), yamlScalarNode("!!str", schema.XML.Namespace))
		}

		appendPair("xml", xmlNode)
	}

	return node, nil
}

// yamlValueNode builds a scalar node for an example or default value.
func yamlValueNode(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case json.Number:
		if int64Value, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(int64Value, 10)), nil
		}

		float64Value, err := typed.Float64()
		if err != nil {
			return nil, err
		}

		return yamlScalarNode("!!float", strconv.FormatFloat(float64Value, 'g', -1, 64)), nil

	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil

	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil

	case uint64:
		return yamlScalarNode("!!int", strconv.FormatUint(typed, 10)), nil

	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil

	default:
		return nil, fmt.Errorf("unsupported value type %T", value)
	}
}

// yamlStringSequence builds a sequence node of string scalars.
func yamlStringSequence(values []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, value := range values {
		node.Content = append(node.Content, yamlScalarNode("!!str", value))
	}

	return node
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
