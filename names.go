// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import "strconv"

// DefinitionNames assigns stable, collision-free definition names across
// one generated document. Assignment is keyed by schema node identity
// (pointer), not by node name: two distinct nodes sharing a name diverge,
// while the same node queried twice always gets its first answer back.
//
// A registry is not safe for concurrent use. Compilations merging several
// modules into one document must share a single registry and run
// sequentially.
type DefinitionNames struct {
	discriminators map[any]string
	assigned       map[any]string
	claimed        map[string]struct{}
}

// NewDefinitionNames returns an empty registry.
func NewDefinitionNames() *DefinitionNames {
	return &DefinitionNames{
		discriminators: make(map[any]string),
		assigned:       make(map[any]string),
		claimed:        make(map[string]struct{}),
	}
}

// Reserve claims a name outright, making it unavailable to any
// node-derived candidate. Used for the "<module>_module" wrapper name.
func (names *DefinitionNames) Reserve(name string) {
	names.claimed[name] = struct{}{}
}

// PickDiscriminator chooses the smallest discriminator suffix under which
// every candidate name form is simultaneously free, claims all of them,
// and pins the choice to the node. Candidates travel together so that a
// definition and its "_TOP" wrapper always share one suffix. Repeated
// calls for the same node return the original discriminator.
func (names *DefinitionNames) PickDiscriminator(node any, candidates []string) string {
	if discriminator, ok := names.discriminators[node]; ok {
		return discriminator
	}

	discriminator := ""
	for suffix := 1; !names.allFree(candidates, discriminator); suffix++ {
		discriminator = strconv.Itoa(suffix)
	}

	for _, candidate := range candidates {
		names.claimed[candidate+discriminator] = struct{}{}
	}

	names.discriminators[node] = discriminator
	return discriminator
}

// Discriminator returns the discriminator previously picked for node, or
// an empty string when none was picked yet.
func (names *DefinitionNames) Discriminator(node any) string {
	return names.discriminators[node]
}

// Assigned reports whether node already has a discriminator, letting
// callers skip re-emission of an already-produced definition.
func (names *DefinitionNames) Assigned(node any) bool {
	_, ok := names.discriminators[node]
	return ok
}

// Assign walks candidates in order and permanently binds the first name
// not claimed by a different node to this node. When every candidate is
// taken, a numeric suffix is appended to the last candidate until unique.
func (names *DefinitionNames) Assign(node any, candidates []string) string {
	if name, ok := names.assigned[node]; ok {
		return name
	}

	for _, candidate := range candidates {
		if _, taken := names.claimed[candidate]; !taken {
			return names.bind(node, candidate)
		}
	}

	last := candidates[len(candidates)-1]
	for suffix := 1; ; suffix++ {
		candidate := last + strconv.Itoa(suffix)
		if _, taken := names.claimed[candidate]; !taken {
			return names.bind(node, candidate)
		}
	}
}

// bind claims one name for a node assigned through Assign.
func (names *DefinitionNames) bind(node any, name string) string {
	names.claimed[name] = struct{}{}
	names.assigned[node] = name
	return name
}

// allFree reports whether every candidate plus discriminator is unclaimed.
func (names *DefinitionNames) allFree(candidates []string, discriminator string) bool {
	for _, candidate := range candidates {
		if _, taken := names.claimed[candidate+discriminator]; taken {
			return false
		}
	}

	return true
}
