// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

/*
Package yang holds the schema model consumed by the yangdoc compiler.

The model is an already-parsed tree of typed nodes: one [Module] owns data
nodes (containers, lists, leaves, leaf-lists, choices, anydata, anyxml),
RPC signatures, and identity declarations. Type definitions form a closed
set; the compiler dispatches on them exhaustively and treats an unknown
variant as a fatal error.

The package does not parse YANG text. Models are built programmatically or
decoded from a YAML model document with [DecodeModule] / [DecodeModules].
*/
package yang

// Module is the root of one schema tree.
type Module struct {
	// Name is the module name, used as the prefix of generated definition names.
	Name string
	// Namespace is the module XML namespace URI.
	Namespace string
	// Prefix is the module prefix used in instance-identifier examples.
	Prefix string
	// Description is the module description text.
	Description string
	// Children are the top-level data nodes in declaration order.
	Children []DataNode
	// RPCs are the module-level rpc statements in declaration order.
	RPCs []*RPC
	// Identities are the identity statements in declaration order.
	Identities []*Identity
}

// Identity is a named abstract category; other identities derive from it
// through Bases.
type Identity struct {
	Name        string
	Namespace   string
	Description string
	// Bases lists identities this identity is derived from.
	Bases []*Identity
}

// RPC describes an rpc or action signature. A nil body and a body
// container with no children are equivalent: neither produces output.
type RPC struct {
	Name      string
	Namespace string
	Input     *Container
	Output    *Container
}
