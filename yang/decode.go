// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yang

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDecodeModel is returned when model document YAML decoding fails.
	ErrDecodeModel = errors.New("decode model document")
	// ErrUnknownNodeKind is returned when a model document uses an unlisted node kind.
	ErrUnknownNodeKind = errors.New("unknown node kind")
	// ErrUnknownTypeName is returned when a model document uses an unlisted type name.
	ErrUnknownTypeName = errors.New("unknown type name")
	// ErrUnknownIdentity is returned when an identity reference cannot be linked.
	ErrUnknownIdentity = errors.New("unknown identity")
	// ErrDuplicateIdentity is returned when two model documents declare the
	// same identity name. References are linked by bare name, so a second
	// declaration would silently shadow the first.
	ErrDuplicateIdentity = errors.New("duplicate identity")
)

// moduleDoc is the raw YAML layout of one model document.
type moduleDoc struct {
	Name        string        `yaml:"name"`
	Namespace   string        `yaml:"namespace"`
	Prefix      string        `yaml:"prefix"`
	Description string        `yaml:"description"`
	Identities  []identityDoc `yaml:"identities"`
	Children    []nodeDoc     `yaml:"children"`
	RPCs        []rpcDoc      `yaml:"rpcs"`
}

type identityDoc struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Bases       []string `yaml:"bases"`
}

type rpcDoc struct {
	Name   string   `yaml:"name"`
	Input  *bodyDoc `yaml:"input"`
	Output *bodyDoc `yaml:"output"`
}

type bodyDoc struct {
	Children []nodeDoc `yaml:"children"`
}

type caseDoc struct {
	Name     string    `yaml:"name"`
	Children []nodeDoc `yaml:"children"`
}

type nodeDoc struct {
	Kind        string    `yaml:"kind"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Config      *bool     `yaml:"config"`
	Presence    bool      `yaml:"presence"`
	Mandatory   bool      `yaml:"mandatory"`
	MinElements *uint64   `yaml:"min-elements"`
	MaxElements *uint64   `yaml:"max-elements"`
	Type        *typeDoc  `yaml:"type"`
	Children    []nodeDoc `yaml:"children"`
	Actions     []rpcDoc  `yaml:"actions"`
	Cases       []caseDoc `yaml:"cases"`
	Default     string    `yaml:"default"`
}

type typeDoc struct {
	Name           string     `yaml:"name"`
	Default        *string    `yaml:"default"`
	Length         *Length    `yaml:"length"`
	Range          *rangeDoc  `yaml:"range"`
	FractionDigits int        `yaml:"fraction-digits"`
	Patterns       []string   `yaml:"patterns"`
	Bits           []string   `yaml:"bits"`
	Values         []string   `yaml:"values"`
	Base           *typeDoc   `yaml:"base"`
	BaseIdentity   string     `yaml:"base-identity"`
	Path           string     `yaml:"path"`
	Members        []*typeDoc `yaml:"members"`
}

// rangeDoc holds range bounds as floats so one YAML shape serves both the
// integer and decimal64 families.
type rangeDoc struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// modelBuilder links decoded documents into model values.
type modelBuilder struct {
	identities map[string]*Identity
}

// DecodeModule decodes one YAML model document into a schema module.
func DecodeModule(data []byte) (*Module, error) {
	modules, err := DecodeModules(data)
	if err != nil {
		return nil, err
	}

	return modules[0], nil
}

// DecodeModules decodes several YAML model documents and links identity
// references across all of them. Modules are returned in input order.
func DecodeModules(docs ...[]byte) ([]*Module, error) {
	raw := make([]moduleDoc, 0, len(docs))
	for _, data := range docs {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)

		var doc moduleDoc
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeModel, err)
		}

		raw = append(raw, doc)
	}

	builder := &modelBuilder{identities: make(map[string]*Identity)}

	// Identities first so identityref and bases can link across documents.
	modules := make([]*Module, len(raw))
	for index, doc := range raw {
		module := &Module{
			Name:        doc.Name,
			Namespace:   doc.Namespace,
			Prefix:      doc.Prefix,
			Description: doc.Description,
		}
		for _, identity := range doc.Identities {
			if _, exists := builder.identities[identity.Name]; exists {
				return nil, fmt.Errorf("%w %q", ErrDuplicateIdentity, identity.Name)
			}

			linked := &Identity{
				Name:        identity.Name,
				Namespace:   doc.Namespace,
				Description: identity.Description,
			}
			builder.identities[identity.Name] = linked
			module.Identities = append(module.Identities, linked)
		}

		modules[index] = module
	}

	for index, doc := range raw {
		module := modules[index]
		for position, identity := range doc.Identities {
			for _, baseName := range identity.Bases {
				base, ok := builder.identities[baseName]
				if !ok {
					return nil, fmt.Errorf("%w %q", ErrUnknownIdentity, baseName)
				}

				module.Identities[position].Bases = append(module.Identities[position].Bases, base)
			}
		}

		children, err := builder.buildNodes(doc.Children, module.Namespace, true)
		if err != nil {
			return nil, err
		}

		module.Children = children
		for _, rpc := range doc.RPCs {
			built, err := builder.buildRPC(rpc, module.Namespace)
			if err != nil {
				return nil, err
			}

			module.RPCs = append(module.RPCs, built)
		}
	}

	return modules, nil
}

// buildNodes converts raw node documents into data nodes. parentConfig
// propagates the YANG rule that config false applies to a whole subtree.
func (builder *modelBuilder) buildNodes(docs []nodeDoc, namespace string, parentConfig bool) ([]DataNode, error) {
	nodes := make([]DataNode, 0, len(docs))
	for _, doc := range docs {
		node, err := builder.buildNode(doc, namespace, parentConfig)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// buildNode converts one raw node document into a data node.
func (builder *modelBuilder) buildNode(doc nodeDoc, namespace string, parentConfig bool) (DataNode, error) {
	config := parentConfig
	if doc.Config != nil {
		config = parentConfig && *doc.Config
	}

	info := NodeInfo{
		Name:        doc.Name,
		Namespace:   namespace,
		Description: doc.Description,
		Config:      config,
	}

	switch strings.ToLower(strings.TrimSpace(doc.Kind)) {
	case "container":
		children, err := builder.buildNodes(doc.Children, namespace, config)
		if err != nil {
			return nil, err
		}

		actions, err := builder.buildActions(doc.Actions, namespace)
		if err != nil {
			return nil, err
		}

		return &Container{NodeInfo: info, Presence: doc.Presence, Children: children, Actions: actions}, nil

	case "list":
		children, err := builder.buildNodes(doc.Children, namespace, config)
		if err != nil {
			return nil, err
		}

		actions, err := builder.buildActions(doc.Actions, namespace)
		if err != nil {
			return nil, err
		}

		return &List{
			NodeInfo:    info,
			MinElements: doc.MinElements,
			MaxElements: doc.MaxElements,
			Children:    children,
			Actions:     actions,
		}, nil

	case "leaf":
		leafType, err := builder.buildType(doc.Type)
		if err != nil {
			return nil, err
		}

		return &Leaf{NodeInfo: info, Mandatory: doc.Mandatory, Type: leafType}, nil

	case "leaf-list":
		leafType, err := builder.buildType(doc.Type)
		if err != nil {
			return nil, err
		}

		return &LeafList{
			NodeInfo:    info,
			Type:        leafType,
			MinElements: doc.MinElements,
			MaxElements: doc.MaxElements,
		}, nil

	case "choice":
		cases := make([]*Case, 0, len(doc.Cases))
		for _, branch := range doc.Cases {
			children, err := builder.buildNodes(branch.Children, namespace, config)
			if err != nil {
				return nil, err
			}

			cases = append(cases, &Case{Name: branch.Name, Children: children})
		}

		return &Choice{NodeInfo: info, Mandatory: doc.Mandatory, Cases: cases, DefaultCase: doc.Default}, nil

	case "anydata":
		return &Anydata{NodeInfo: info, Mandatory: doc.Mandatory}, nil

	case "anyxml":
		return &Anyxml{NodeInfo: info, Mandatory: doc.Mandatory}, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownNodeKind, doc.Kind)
	}
}

// buildActions converts action documents declared inside a container or list.
func (builder *modelBuilder) buildActions(docs []rpcDoc, namespace string) ([]*RPC, error) {
	actions := make([]*RPC, 0, len(docs))
	for _, doc := range docs {
		action, err := builder.buildRPC(doc, namespace)
		if err != nil {
			return nil, err
		}

		actions = append(actions, action)
	}

	return actions, nil
}

// buildRPC converts one rpc or action document. Input and output bodies are
// always materialized, children of operations are never configuration.
func (builder *modelBuilder) buildRPC(doc rpcDoc, namespace string) (*RPC, error) {
	input, err := builder.buildBody(doc.Input, "input", namespace)
	if err != nil {
		return nil, err
	}

	output, err := builder.buildBody(doc.Output, "output", namespace)
	if err != nil {
		return nil, err
	}

	return &RPC{Name: doc.Name, Namespace: namespace, Input: input, Output: output}, nil
}

// buildBody converts one rpc input or output body into a container.
func (builder *modelBuilder) buildBody(doc *bodyDoc, name, namespace string) (*Container, error) {
	body := &Container{NodeInfo: NodeInfo{Name: name, Namespace: namespace}}
	if doc == nil {
		return body, nil
	}

	children, err := builder.buildNodes(doc.Children, namespace, false)
	if err != nil {
		return nil, err
	}

	body.Children = children
	return body, nil
}

// buildType converts one raw type document into a type definition.
func (builder *modelBuilder) buildType(doc *typeDoc) (TypeDef, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: missing type", ErrDecodeModel)
	}

	name := strings.ToLower(strings.TrimSpace(doc.Name))
	info := TypeInfo{Name: name}
	if doc.Default != nil {
		info.Default = *doc.Default
		info.HasDefault = true
	}

	switch name {
	case "binary":
		return &BinaryType{TypeInfo: info, Length: doc.Length}, nil

	case "bits":
		return &BitsType{TypeInfo: info, Bits: doc.Bits}, nil

	case "boolean":
		return &BooleanType{TypeInfo: info}, nil

	case "decimal64":
		var span *DecimalRange
		if doc.Range != nil {
			span = &DecimalRange{Min: doc.Range.Min, Max: doc.Range.Max}
		}

		return &DecimalType{TypeInfo: info, FractionDigits: doc.FractionDigits, Range: span}, nil

	case "empty":
		return &EmptyType{TypeInfo: info}, nil

	case "enumeration":
		return &EnumType{TypeInfo: info, Values: doc.Values}, nil

	case "identityref":
		base, ok := builder.identities[doc.BaseIdentity]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownIdentity, doc.BaseIdentity)
		}

		return &IdentityrefType{TypeInfo: info, Base: base}, nil

	case "instance-identifier":
		return &InstanceIDType{TypeInfo: info}, nil

	case "leafref":
		return &LeafrefType{TypeInfo: info, Path: doc.Path}, nil

	case "string":
		return builder.buildStringType(doc, info)

	case "union":
		members := make([]TypeDef, 0, len(doc.Members))
		for _, member := range doc.Members {
			built, err := builder.buildType(member)
			if err != nil {
				return nil, err
			}

			members = append(members, built)
		}

		return &UnionType{TypeInfo: info, Members: members}, nil

	case "int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64":
		return buildIntType(doc, info, name), nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownTypeName, doc.Name)
	}
}

// buildStringType converts a string type document including its base chain.
func (builder *modelBuilder) buildStringType(doc *typeDoc, info TypeInfo) (*StringType, error) {
	built := &StringType{TypeInfo: info, Length: doc.Length, Patterns: doc.Patterns}
	if doc.Base != nil {
		baseInfo := TypeInfo{Name: strings.ToLower(strings.TrimSpace(doc.Base.Name))}
		base, err := builder.buildStringType(doc.Base, baseInfo)
		if err != nil {
			return nil, err
		}

		built.Base = base
	}

	return built, nil
}

// buildIntType converts one member of the integer family.
func buildIntType(doc *typeDoc, info TypeInfo, name string) *IntType {
	unsigned := strings.HasPrefix(name, "u")
	width := 8
	switch {
	case strings.HasSuffix(name, "16"):
		width = 16
	case strings.HasSuffix(name, "32"):
		width = 32
	case strings.HasSuffix(name, "64"):
		width = 64
	}

	var span *IntRange
	if doc.Range != nil {
		span = &IntRange{Min: int64(doc.Range.Min), Max: int64(doc.Range.Max)}
	}

	return &IntType{TypeInfo: info, Width: width, Unsigned: unsigned, Range: span}
}
