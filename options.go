// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import (
	"io"
	"log/slog"
	"strings"
)

// DefaultComponentsPrefix prefixes every generated $ref target.
const DefaultComponentsPrefix = "#/components/schemas/"

// Options configure one compilation.
type Options struct {
	// SingleModule additionally emits the whole-module aggregate wrapper
	// named "<module>_module", enumerating the module's direct mandatory
	// configuration children. The wrapper name is reserved before any
	// node-derived name is assigned.
	SingleModule bool
	// ComponentsPrefix overrides [DefaultComponentsPrefix] for $ref targets.
	ComponentsPrefix string
	// Logger receives degraded-path warnings, e.g. when a pattern
	// constraint cannot be turned into an example string. Nil discards.
	Logger *slog.Logger
}

// withDefaults fills unset option fields.
func (opt Options) withDefaults() Options {
	if strings.TrimSpace(opt.ComponentsPrefix) == "" {
		opt.ComponentsPrefix = DefaultComponentsPrefix
	}

	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return opt
}
