// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

/*
Package yangdoc compiles a YANG schema model into named JSON-Schema
definitions for API documentation tooling.

The compiler walks an already-parsed schema tree (package yang) and emits
one definition per container, list, rpc/action body and identity, plus a
"_TOP" wrapper per container and list that exposes the inner definition as
a single named property. Definition names are made collision-free across a
whole document by a shared [DefinitionNames] registry.

Compile a single module into a fresh document:

	module, err := yang.DecodeModule(modelBytes)
	if err != nil {
		return err
	}

	defs, err := yangdoc.Compile(module, yang.NewModelContext(module), yangdoc.Options{
		SingleModule: true,
	})
	if err != nil {
		return err
	}

	data, err := yangdoc.MarshalDocumentJSON(defs)
	if err != nil {
		return err
	}

	fmt.Println(string(data))

Merge several modules into one shared document:

	defs := make(yangdoc.Definitions)
	names := yangdoc.NewDefinitionNames()
	for _, module := range modules {
		if err := yangdoc.CompileInto(module, ctx, defs, names, yangdoc.Options{}); err != nil {
			return err
		}
	}

Known limitation: a choice contributes only its default case (or the
first declared one when no default exists); the other cases' fields do
not appear in the output at all.
*/
package yangdoc
