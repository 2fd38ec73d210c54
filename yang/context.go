// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yang

import "strings"

// Context resolves cross-module references during one compilation.
type Context interface {
	// ResolveLeafref returns the type definition of the leaf the reference
	// points at. Callers are responsible for breaking reference cycles
	// before invoking resolution.
	ResolveLeafref(ref *LeafrefType) (TypeDef, bool)
	// DerivedIdentities returns the identities directly derived from base,
	// in declaration order.
	DerivedIdentities(base *Identity) []*Identity
	// ModuleByNamespace returns the module declaring the given namespace.
	ModuleByNamespace(namespace string) (*Module, bool)
}

// ModelContext is a map-backed [Context] over a fixed set of modules.
type ModelContext struct {
	modules []*Module
	byNS    map[string]*Module
}

// NewModelContext builds a context over the given modules. Later modules
// shadow earlier ones when namespaces collide.
func NewModelContext(modules ...*Module) *ModelContext {
	byNS := make(map[string]*Module, len(modules))
	for _, module := range modules {
		byNS[module.Namespace] = module
	}

	return &ModelContext{modules: modules, byNS: byNS}
}

// Modules returns the modules the context was built over, in order.
func (ctx *ModelContext) Modules() []*Module { return ctx.modules }

// ModuleByNamespace returns the module declaring the given namespace.
func (ctx *ModelContext) ModuleByNamespace(namespace string) (*Module, bool) {
	module, ok := ctx.byNS[namespace]
	return module, ok
}

// DerivedIdentities returns identities directly derived from base, in the
// declaration order of their modules.
func (ctx *ModelContext) DerivedIdentities(base *Identity) []*Identity {
	var derived []*Identity
	for _, module := range ctx.modules {
		for _, identity := range module.Identities {
			for _, candidate := range identity.Bases {
				if candidate == base {
					derived = append(derived, identity)
					break
				}
			}
		}
	}

	return derived
}

// ResolveLeafref resolves an absolute leafref path of the form
// "/a/b/leaf" against the context modules. Path segments may carry module
// prefixes ("/ex:a/ex:b"); prefixes are ignored, matching is by local
// name. Choice cases are looked through transparently.
func (ctx *ModelContext) ResolveLeafref(ref *LeafrefType) (TypeDef, bool) {
	segments := splitLeafrefPath(ref.Path)
	if len(segments) == 0 {
		return nil, false
	}

	for _, module := range ctx.modules {
		if leafType, ok := resolvePathIn(module.Children, segments); ok {
			return leafType, true
		}
	}

	return nil, false
}

// splitLeafrefPath splits an absolute leafref path into local-name segments.
func splitLeafrefPath(path string) []string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		return nil
	}

	raw := strings.Split(strings.Trim(path, "/"), "/")
	segments := make([]string, 0, len(raw))
	for _, segment := range raw {
		if at := strings.IndexByte(segment, ':'); at >= 0 {
			segment = segment[at+1:]
		}

		segment = strings.TrimSpace(segment)
		if segment == "" {
			return nil
		}

		segments = append(segments, segment)
	}

	return segments
}

// resolvePathIn walks one segment level of a leafref path.
func resolvePathIn(nodes []DataNode, segments []string) (TypeDef, bool) {
	name := segments[0]
	for _, node := range nodes {
		switch typed := node.(type) {
		case *Choice:
			// Case layers are transparent in leafref paths.
			for _, branch := range typed.Cases {
				if leafType, ok := resolvePathIn(branch.Children, segments); ok {
					return leafType, ok
				}
			}
		case *Leaf:
			if typed.Name == name && len(segments) == 1 {
				return typed.Type, true
			}
		case *LeafList:
			if typed.Name == name && len(segments) == 1 {
				return typed.Type, true
			}
		case *Container:
			if typed.Name == name && len(segments) > 1 {
				return resolvePathIn(typed.Children, segments[1:])
			}
		case *List:
			if typed.Name == name && len(segments) > 1 {
				return resolvePathIn(typed.Children, segments[1:])
			}
		}
	}

	return nil, false
}
