// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import "errors"

var (
	// ErrUnknownNodeKind is returned when the walker meets a schema node
	// variant it was never taught. This aborts the whole compilation.
	ErrUnknownNodeKind = errors.New("unknown schema node kind")
	// ErrUnknownType is returned when the type mapper meets a type
	// definition variant it was never taught. This aborts the whole
	// compilation.
	ErrUnknownType = errors.New("unknown type definition")
	// ErrResolveLeafref is returned when a leafref target cannot be
	// resolved through the compilation context.
	ErrResolveLeafref = errors.New("resolve leafref target")
	// ErrEncodeDocumentJSON is returned when definitions JSON encoding fails.
	ErrEncodeDocumentJSON = errors.New("encode definitions json")
	// ErrEncodeDocumentYAML is returned when definitions YAML encoding fails.
	ErrEncodeDocumentYAML = errors.New("encode definitions yaml")
)
