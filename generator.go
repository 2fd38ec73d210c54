// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import (
	"fmt"
	"log/slog"

	"github.com/woozymasta/yangdoc/yang"
)

const (
	configSuffix = "_config"
	topSuffix    = "_TOP"
	moduleSuffix = "_module"
	inputSuffix  = "_input"
	outputSuffix = "_output"

	inputName  = "input"
	outputName = "output"
)

// generator carries the state of one compilation: the module being
// compiled, the resolution context, and the shared accumulators. A
// generator is created per call and never reused, so identityref locality
// checks are always made against the right module.
type generator struct {
	module *yang.Module
	ctx    yang.Context
	defs   Definitions
	names  *DefinitionNames
	prefix string
	logger *slog.Logger
}

// Compile converts one module into named definitions using fresh
// accumulators. With opt.SingleModule the result additionally carries the
// whole-module aggregate wrapper.
func Compile(module *yang.Module, ctx yang.Context, opt Options) (Definitions, error) {
	defs := make(Definitions)
	names := NewDefinitionNames()
	if opt.SingleModule {
		names.Reserve(module.Name + moduleSuffix)
	}

	if err := CompileInto(module, ctx, defs, names, opt); err != nil {
		return nil, err
	}

	return defs, nil
}

// CompileInto converts one module into definitions written to
// caller-owned accumulators. Compiling many modules into one shared
// document means calling CompileInto sequentially with the same defs and
// names pair; that is what keeps names globally unique across modules.
//
// The accumulators are not transactional: definitions written before a
// fatal error stay in place, and callers needing all-or-nothing semantics
// must discard them on error.
func CompileInto(module *yang.Module, ctx yang.Context, defs Definitions, names *DefinitionNames, opt Options) error {
	opt = opt.withDefaults()
	gen := &generator{
		module: module,
		ctx:    ctx,
		defs:   defs,
		names:  names,
		prefix: opt.ComponentsPrefix,
		logger: opt.Logger,
	}

	gen.processIdentities()
	if err := gen.processContainersAndLists(); err != nil {
		return err
	}

	if err := gen.processRPCs(); err != nil {
		return err
	}

	if opt.SingleModule {
		if err := gen.processModule(); err != nil {
			return err
		}
	}

	return nil
}

// processIdentities emits one definition per module identity.
func (gen *generator) processIdentities() {
	gen.logger.Debug("processing identities",
		"module", gen.module.Name,
		"count", len(gen.module.Identities),
	)

	for _, identity := range gen.module.Identities {
		schema := gen.buildIdentitySchema(identity)
		discriminator := gen.names.PickDiscriminator(identity, []string{identity.Name})
		gen.defs[identity.Name+discriminator] = schema
	}
}

// processContainersAndLists walks every top-level container and list in
// a config-only pass (when applicable), a full pass, and then descends
// into their action subtrees.
func (gen *generator) processContainersAndLists() error {
	for _, child := range gen.module.Children {
		switch child.(type) {
		case *yang.Container, *yang.List:
			if child.Info().Config {
				if _, err := gen.processDataNodeContainer(child, gen.module.Name, true); err != nil {
					return err
				}
			}

			if _, err := gen.processDataNodeContainer(child, gen.module.Name, false); err != nil {
				return err
			}

			if err := gen.processActions(child, gen.module.Name); err != nil {
				return err
			}
		}
	}

	return nil
}

// processActions emits definitions for every action declared on a
// container or list node.
func (gen *generator) processActions(node yang.DataNode, parentName string) error {
	for _, action := range nodeActions(node) {
		if err := gen.processOperation(action, parentName); err != nil {
			return err
		}
	}

	return nil
}

// processRPCs emits definitions for every module-level rpc.
func (gen *generator) processRPCs() error {
	for _, rpc := range gen.module.RPCs {
		if err := gen.processOperation(rpc, gen.module.Name); err != nil {
			return err
		}
	}

	return nil
}

// processOperation emits input and output definitions of one rpc or action.
func (gen *generator) processOperation(operation *yang.RPC, parentName string) error {
	if err := gen.processOperationBody(operation.Input, operation.Name, parentName, true); err != nil {
		return err
	}

	return gen.processOperationBody(operation.Output, operation.Name, parentName, false)
}

// processOperationBody emits the definition and Top wrapper for one rpc
// input or output body. Empty bodies produce no definitions at all.
func (gen *generator) processOperationBody(body *yang.Container, operationName, parentName string, isInput bool) error {
	if body == nil || len(body.Children) == 0 {
		return nil
	}

	suffix, xmlName := outputSuffix, outputName
	if isInput {
		suffix, xmlName = inputSuffix, inputName
	}

	filename := parentName + "_" + operationName + suffix
	child := &Schema{
		Title: filename,
		Type:  typeObject,
		XML:   &XML{Name: xmlName},
	}
	if err := gen.processChildren(child, body.Children, parentName, false); err != nil {
		return err
	}

	discriminator := gen.names.PickDiscriminator(body, []string{filename, filename + topSuffix})
	gen.defs[filename+discriminator] = child
	gen.topLevelWrapper(filename, discriminator, body)
	return nil
}

// processDataNodeContainer renders a container or list into an inline
// definition plus its Top wrapper and returns the property fragment to
// hang on the parent.
func (gen *generator) processDataNodeContainer(node yang.DataNode, parentName string, isConfig bool) (*Schema, error) {
	info := node.Info()
	localName := info.Name
	marker := ""
	if isConfig {
		marker = configSuffix
	}

	nodeName := parentName + marker + "_" + localName
	description := info.Description
	child := &Schema{
		Type:        typeObject,
		Title:       nodeName,
		Description: &description,
	}
	if err := gen.processChildren(child, nodeChildren(node), parentName+"_"+localName, isConfig); err != nil {
		return nil, err
	}

	var discriminator string
	if gen.names.Assigned(node) {
		discriminator = gen.names.Discriminator(node)
	} else {
		// All four name forms travel together so the config and full
		// variants of one node share a single discriminator.
		configName := parentName + configSuffix + "_" + localName
		fullName := parentName + "_" + localName
		discriminator = gen.names.PickDiscriminator(node, []string{
			configName, configName + topSuffix,
			fullName, fullName + topSuffix,
		})
	}

	child.XML = xmlFor(node)
	gen.defs[nodeName+discriminator] = child
	return gen.topLevelWrapper(nodeName, discriminator, node), nil
}

// topLevelWrapper emits the "<name>_TOP" definition exposing an inner
// definition as a single named property: an array item for lists, a bare
// reference for containers.
func (gen *generator) topLevelWrapper(filename, discriminator string, node yang.DataNode) *Schema {
	ref := gen.prefix + filename + discriminator
	topName := filename + topSuffix

	property := &Schema{}
	if _, isList := node.(*yang.List); isList {
		description := node.Info().Description
		property.Type = typeArray
		property.Items = &Schema{Ref: ref}
		property.Description = &description
	} else {
		// Nothing is allowed alongside $ref, including the description.
		property.Ref = ref
	}

	properties := NewProperties()
	properties.Set(node.Info().Name, property)
	gen.defs[topName+discriminator] = &Schema{
		Type:       typeObject,
		Title:      topName,
		Properties: properties,
	}

	return property
}

// processChildren fills the parent schema's properties and required set
// from the given child nodes. The required key is left out entirely when
// no child is mandatory; consumers must never see an empty array there.
func (gen *generator) processChildren(parent *Schema, nodes []yang.DataNode, parentName string, isConfig bool) error {
	properties := NewProperties()
	var required []string
	for _, node := range nodes {
		if !isConfig || node.Info().Config {
			if err := gen.processChildNode(node, parentName, isConfig, properties, &required); err != nil {
				return err
			}
		}
	}

	parent.Properties = properties
	if len(required) > 0 {
		parent.Required = required
	}

	return nil
}

// processChildNode dispatches one child node by kind. The variant set is
// closed; anything else is a compiler bug surfaced as a fatal error.
func (gen *generator) processChildNode(node yang.DataNode, parentName string, isConfig bool, properties *Properties, required *[]string) error {
	name := node.Info().Name
	switch typed := node.(type) {
	case *yang.Leaf:
		return gen.processLeaf(typed, name, properties, required)

	case *yang.Anydata:
		gen.processOpaqueNode(&typed.NodeInfo, typed.Mandatory, name, properties, required)

	case *yang.Anyxml:
		gen.processOpaqueNode(&typed.NodeInfo, typed.Mandatory, name, properties, required)

	case *yang.Container, *yang.List:
		if isNodeMandatory(node) {
			*required = append(*required, name)
		}

		property, err := gen.processDataNodeContainer(node, parentName, isConfig)
		if err != nil {
			return err
		}

		if !isConfig {
			if err := gen.processActions(node, parentName); err != nil {
				return err
			}
		}

		properties.Set(name, property)

	case *yang.LeafList:
		if isNodeMandatory(node) {
			*required = append(*required, name)
		}

		property, err := gen.processLeafList(typed)
		if err != nil {
			return err
		}

		properties.Set(name, property)

	case *yang.Choice:
		// Only the default (or first declared) case surfaces; its children
		// are inlined straight into the parent's property set and the
		// remaining cases are dropped from the output. A lossy but
		// deliberate simplification.
		branch := typed.Default()
		if branch == nil {
			return nil
		}

		for _, child := range branch.Children {
			if err := gen.processChildNode(child, parentName, isConfig, properties, required); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("%w: %T", ErrUnknownNodeKind, node)
	}

	return nil
}

// processLeaf emits one typed scalar property. Identityref leaves lose
// their description because a $ref tolerates no sibling keys.
func (gen *generator) processLeaf(leaf *yang.Leaf, name string, properties *Properties, required *[]string) error {
	property := &Schema{}
	if _, isIdentityref := leaf.Type.(*yang.IdentityrefType); !isIdentityref {
		description := leaf.Description
		property.Description = &description
	}

	if _, err := gen.mapTypeDef(leaf.Type, leaf, property); err != nil {
		return err
	}

	properties.Set(name, property)
	property.XML = xmlFor(leaf)
	if leaf.Mandatory {
		*required = append(*required, name)
	}

	return nil
}

// processLeafList emits an array property whose items carry the leaf type
// mapping and whose bounds mirror the element count constraint.
func (gen *generator) processLeafList(node *yang.LeafList) (*Schema, error) {
	property := &Schema{Type: typeArray}
	if node.MinElements != nil {
		minItems := *node.MinElements
		property.MinItems = &minItems
	}

	if node.MaxElements != nil {
		maxItems := *node.MaxElements
		property.MaxItems = &maxItems
	}

	items := &Schema{}
	if _, err := gen.mapTypeDef(node.Type, node, items); err != nil {
		return nil, err
	}

	property.Items = items
	description := node.Description
	property.Description = &description
	return property, nil
}

// processOpaqueNode emits the shared string rendition of anydata and
// anyxml nodes with a synthesized markup example.
func (gen *generator) processOpaqueNode(info *yang.NodeInfo, mandatory bool, name string, properties *Properties, required *[]string) {
	description := info.Description
	property := &Schema{
		Type:        typeString,
		Description: &description,
		Default:     fmt.Sprintf("<%s> ... </%s>", info.Name, info.Name),
		XML:         &XML{Name: info.Name, Namespace: info.Namespace},
	}

	properties.Set(name, property)
	if mandatory {
		*required = append(*required, name)
	}
}

// processModule emits the synthetic whole-module wrapper enumerating the
// module's direct configuration children.
func (gen *generator) processModule() error {
	properties := NewProperties()
	var required []string
	definitionName := gen.module.Name + moduleSuffix

	for _, node := range gen.module.Children {
		if !node.Info().Config {
			continue
		}

		localName := node.Info().Name
		switch typed := node.(type) {
		case *yang.Container, *yang.List:
			if isNodeMandatory(node) {
				required = append(required, localName)
			}

			// The property is contributed per child, so a childless
			// container or list leaves no trace in the wrapper.
			if len(nodeChildren(node)) == 0 {
				continue
			}

			ref := gen.prefix + gen.module.Name + configSuffix + "_" + localName + gen.names.Discriminator(node)
			property := &Schema{}
			if _, isList := node.(*yang.List); isList {
				description := node.Info().Description
				property.Type = typeArray
				property.Items = &Schema{Ref: ref}
				property.Description = &description
				property.Title = localName + configSuffix
			} else {
				property.Ref = ref
			}

			properties.Set(localName, property)

		case *yang.Leaf:
			if err := gen.processLeaf(typed, localName, properties, &required); err != nil {
				return err
			}
		}
	}

	description := gen.module.Description
	schema := &Schema{
		Title:       definitionName,
		Type:        typeObject,
		Properties:  properties,
		Description: &description,
	}
	if len(required) > 0 {
		schema.Required = required
	}

	gen.defs[definitionName] = schema
	return nil
}

// isNodeMandatory implements the RFC 7950 mandatory-node rules the walker
// needs: a non-presence container with at least one mandatory child, or a
// list/leaf-list with a minimum element count above zero.
func isNodeMandatory(node yang.DataNode) bool {
	switch typed := node.(type) {
	case *yang.Container:
		if typed.Presence {
			return false
		}

		for _, child := range typed.Children {
			if aware, ok := child.(yang.MandatoryAware); ok && aware.IsMandatory() {
				return true
			}
		}

		return false

	case *yang.List:
		return typed.MinElements != nil && *typed.MinElements > 0

	case *yang.LeafList:
		return typed.MinElements != nil && *typed.MinElements > 0

	default:
		return false
	}
}

// nodeChildren returns the child nodes of a container or list.
func nodeChildren(node yang.DataNode) []yang.DataNode {
	switch typed := node.(type) {
	case *yang.Container:
		return typed.Children
	case *yang.List:
		return typed.Children
	default:
		return nil
	}
}

// nodeActions returns the actions declared on a container or list.
func nodeActions(node yang.DataNode) []*yang.RPC {
	switch typed := node.(type) {
	case *yang.Container:
		return typed.Actions
	case *yang.List:
		return typed.Actions
	default:
		return nil
	}
}

// xmlFor builds the xml metadata pair for one node.
func xmlFor(node yang.DataNode) *XML {
	info := node.Info()
	return &XML{Name: info.Name, Namespace: info.Namespace}
}
