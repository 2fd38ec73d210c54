// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yangdoc

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/yangdoc/yang"
)

var updateGolden = flag.Bool("update", false, "update golden files")

// compileModule compiles one module over a context holding only itself.
func compileModule(t *testing.T, module *yang.Module, opt Options) Definitions {
	t.Helper()

	defs, err := Compile(module, yang.NewModelContext(module), opt)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	return defs
}

func mustDefinition(t *testing.T, defs Definitions, name string) *Schema {
	t.Helper()

	schema, ok := defs[name]
	if !ok {
		t.Fatalf("definition %q missing, have %v", name, defs.Names())
	}

	return schema
}

func mustProperty(t *testing.T, schema *Schema, name string) *Schema {
	t.Helper()

	if schema.Properties == nil {
		t.Fatalf("schema %q has no properties", schema.Title)
	}

	property, ok := schema.Properties.Get(name)
	if !ok {
		t.Fatalf("property %q missing, have %v", name, schema.Properties.Keys())
	}

	return property
}

func TestCompileEmptyOperationEmitsNothing(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		RPCs: []*yang.RPC{{
			Name:      "ping",
			Namespace: "urn:example",
			Input:     &yang.Container{NodeInfo: yang.NodeInfo{Name: "input", Namespace: "urn:example"}},
		}},
	}

	defs := compileModule(t, module, Options{})
	if len(defs) != 0 {
		t.Fatalf("empty operation produced definitions: %v", defs.Names())
	}
}

func TestCompileOperationBodies(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		RPCs: []*yang.RPC{{
			Name:      "launch",
			Namespace: "urn:example",
			Input: &yang.Container{
				NodeInfo: yang.NodeInfo{Name: "input", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "delay", Namespace: "urn:example"},
						Type:     &yang.IntType{Width: 32},
					},
				},
			},
			Output: &yang.Container{
				NodeInfo: yang.NodeInfo{Name: "output", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "job-id", Namespace: "urn:example"},
						Type:     &yang.StringType{},
					},
				},
			},
		}},
	}

	defs := compileModule(t, module, Options{})

	input := mustDefinition(t, defs, "ex_launch_input")
	if input.Type != typeObject || input.Title != "ex_launch_input" {
		t.Fatalf("input definition malformed: %+v", input)
	}

	if input.XML == nil || input.XML.Name != "input" {
		t.Fatalf("input xml name = %+v, want input", input.XML)
	}

	mustProperty(t, input, "delay")

	top := mustDefinition(t, defs, "ex_launch_input_TOP")
	wrapper := mustProperty(t, top, "input")
	if wrapper.Ref != "#/components/schemas/ex_launch_input" {
		t.Fatalf("wrapper ref = %q", wrapper.Ref)
	}

	if wrapper.Type != "" || wrapper.Description != nil {
		t.Fatalf("nothing may sit alongside the wrapper ref: %+v", wrapper)
	}

	mustDefinition(t, defs, "ex_launch_output")
	mustDefinition(t, defs, "ex_launch_output_TOP")
}

func TestCompilePatternLeafExample(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "code", Namespace: "urn:example"},
						Type:     &yang.StringType{Patterns: []string{"[0-9]{3}"}},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	code := mustProperty(t, mustDefinition(t, defs, "ex_settings"), "code")
	if code.Type != typeString {
		t.Fatalf("type = %q, want string", code.Type)
	}

	if code.Default != "000" {
		t.Fatalf("pattern example = %v, want 000", code.Default)
	}
}

func TestCompileStringFallbackExample(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "host", Namespace: "urn:example"},
						Type:     &yang.StringType{},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	host := mustProperty(t, mustDefinition(t, defs, "ex_settings"), "host")
	if host.Default != "Some host" {
		t.Fatalf("fallback example = %v, want %q", host.Default, "Some host")
	}
}

func TestCompileIdentityEnumeration(t *testing.T) {
	t.Parallel()

	base := &yang.Identity{Name: "transport", Namespace: "urn:example"}
	tcp := &yang.Identity{Name: "tcp", Namespace: "urn:example", Bases: []*yang.Identity{base}}
	udp := &yang.Identity{Name: "udp", Namespace: "urn:example", Bases: []*yang.Identity{base}}
	module := &yang.Module{
		Name:       "ex",
		Namespace:  "urn:example",
		Prefix:     "ex",
		Identities: []*yang.Identity{base, tcp, udp},
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "conn", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "proto", Namespace: "urn:example", Description: "transport choice"},
						Type:     &yang.IdentityrefType{Base: base},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})

	identity := mustDefinition(t, defs, "transport")
	want := []string{"transport", "tcp", "udp"}
	if len(identity.Enum) != len(want) {
		t.Fatalf("identity enum = %v, want %v", identity.Enum, want)
	}

	for index, value := range want {
		if identity.Enum[index] != value {
			t.Fatalf("identity enum = %v, want %v", identity.Enum, want)
		}
	}

	proto := mustProperty(t, mustDefinition(t, defs, "ex_conn"), "proto")
	if proto.Ref != "#/components/schemas/transport" {
		t.Fatalf("identityref $ref = %q", proto.Ref)
	}

	if proto.Type != "" || proto.Description != nil || proto.Default != nil {
		t.Fatalf("identityref reference must be bare: %+v", proto)
	}
}

func TestCompileImportedIdentityIsDuplicated(t *testing.T) {
	t.Parallel()

	foreign := &yang.Identity{Name: "cipher", Namespace: "urn:crypto"}
	provider := &yang.Module{
		Name:       "crypto",
		Namespace:  "urn:crypto",
		Prefix:     "crypto",
		Identities: []*yang.Identity{foreign},
	}
	consumer := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "tls", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "suite", Namespace: "urn:example"},
						Type:     &yang.IdentityrefType{Base: foreign},
					},
				},
			},
		},
	}

	ctx := yang.NewModelContext(provider, consumer)
	defs, err := Compile(consumer, ctx, Options{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cipher := mustDefinition(t, defs, "cipher")
	if cipher.Title != "cipher" || cipher.Type != typeString {
		t.Fatalf("duplicated identity malformed: %+v", cipher)
	}

	suite := mustProperty(t, mustDefinition(t, defs, "ex_tls"), "suite")
	if suite.Ref != "#/components/schemas/cipher" {
		t.Fatalf("imported identityref $ref = %q", suite.Ref)
	}
}

func TestCompileConfigAndFullPasses(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "iface", Namespace: "urn:example", Config: true},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "mtu", Namespace: "urn:example", Config: true},
						Type:     &yang.IntType{Width: 16, Unsigned: true},
					},
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "oper-status", Namespace: "urn:example"},
						Type:     &yang.StringType{},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	for _, name := range []string{"ex_config_iface", "ex_config_iface_TOP", "ex_iface", "ex_iface_TOP"} {
		mustDefinition(t, defs, name)
	}

	// The configuration view filters out state-only children; the full
	// view keeps them.
	config := mustDefinition(t, defs, "ex_config_iface")
	if _, ok := config.Properties.Get("oper-status"); ok {
		t.Fatal("state leaf leaked into the configuration view")
	}

	full := mustDefinition(t, defs, "ex_iface")
	mustProperty(t, full, "mtu")
	mustProperty(t, full, "oper-status")
}

func TestCompileDuplicateNamesDiverge(t *testing.T) {
	t.Parallel()

	build := func(namespace string) *yang.Module {
		return &yang.Module{
			Name:      "dup",
			Namespace: namespace,
			Prefix:    "dup",
			Children: []yang.DataNode{
				&yang.Container{
					NodeInfo: yang.NodeInfo{Name: "box", Namespace: namespace},
					Children: []yang.DataNode{
						&yang.Leaf{
							NodeInfo: yang.NodeInfo{Name: "label", Namespace: namespace},
							Type:     &yang.StringType{},
						},
					},
				},
			},
		}
	}

	first := build("urn:dup:one")
	second := build("urn:dup:two")
	ctx := yang.NewModelContext(first, second)
	defs := make(Definitions)
	names := NewDefinitionNames()
	for _, module := range []*yang.Module{first, second} {
		if err := CompileInto(module, ctx, defs, names, Options{}); err != nil {
			t.Fatalf("compile %q: %v", module.Namespace, err)
		}
	}

	for _, name := range []string{"dup_box", "dup_box_TOP", "dup_box1", "dup_box_TOP1"} {
		mustDefinition(t, defs, name)
	}

	top := mustDefinition(t, defs, "dup_box_TOP1")
	if ref := mustProperty(t, top, "box").Ref; ref != "#/components/schemas/dup_box1" {
		t.Fatalf("discriminated wrapper ref = %q", ref)
	}
}

func TestCompileSingleModuleWrapper(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:        "ex",
		Namespace:   "urn:example",
		Prefix:      "ex",
		Description: "example device model",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "device", Namespace: "urn:example", Config: true},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo:  yang.NodeInfo{Name: "name", Namespace: "urn:example", Config: true},
						Mandatory: true,
						Type:      &yang.StringType{},
					},
				},
			},
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "session", Namespace: "urn:example", Config: true},
				Presence: true,
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo:  yang.NodeInfo{Name: "token", Namespace: "urn:example", Config: true},
						Mandatory: true,
						Type:      &yang.StringType{},
					},
				},
			},
			&yang.Leaf{
				NodeInfo: yang.NodeInfo{Name: "enabled", Namespace: "urn:example", Config: true},
				Type:     &yang.BooleanType{},
			},
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "telemetry", Namespace: "urn:example"},
			},
		},
	}

	defs := compileModule(t, module, Options{SingleModule: true})
	wrapper := mustDefinition(t, defs, "ex_module")
	if wrapper.Title != "ex_module" || wrapper.Type != typeObject {
		t.Fatalf("module wrapper malformed: %+v", wrapper)
	}

	// Only the non-presence container with a mandatory child is required.
	if len(wrapper.Required) != 1 || wrapper.Required[0] != "device" {
		t.Fatalf("wrapper required = %v, want [device]", wrapper.Required)
	}

	device := mustProperty(t, wrapper, "device")
	if device.Ref != "#/components/schemas/ex_config_device" {
		t.Fatalf("wrapper points at %q, want the configuration view", device.Ref)
	}

	mustProperty(t, wrapper, "session")
	enabled := mustProperty(t, wrapper, "enabled")
	if enabled.Default != true {
		t.Fatalf("boolean leaf default = %v, want true", enabled.Default)
	}

	if _, ok := wrapper.Properties.Get("telemetry"); ok {
		t.Fatal("state container leaked into the module wrapper")
	}
}

func TestCompileModuleWrapperSkipsChildlessContainer(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "placeholder", Namespace: "urn:example", Config: true},
			},
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example", Config: true},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "host", Namespace: "urn:example", Config: true},
						Type:     &yang.StringType{},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{SingleModule: true})
	wrapper := mustDefinition(t, defs, "ex_module")
	if _, ok := wrapper.Properties.Get("placeholder"); ok {
		t.Fatal("childless container contributed a wrapper property")
	}

	mustProperty(t, wrapper, "settings")

	// The container still gets its own definitions, only the wrapper
	// entry is elided.
	mustDefinition(t, defs, "ex_config_placeholder")
}

func TestCompileListWrapperUsesArray(t *testing.T) {
	t.Parallel()

	one := uint64(1)
	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.List{
				NodeInfo:    yang.NodeInfo{Name: "servers", Namespace: "urn:example", Description: "upstream servers"},
				MinElements: &one,
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "address", Namespace: "urn:example"},
						Type:     &yang.StringType{},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	top := mustDefinition(t, defs, "ex_servers_TOP")
	servers := mustProperty(t, top, "servers")
	if servers.Type != typeArray {
		t.Fatalf("list wrapper type = %q, want array", servers.Type)
	}

	if servers.Items == nil || servers.Items.Ref != "#/components/schemas/ex_servers" {
		t.Fatalf("list wrapper items = %+v", servers.Items)
	}

	if servers.Description == nil || *servers.Description != "upstream servers" {
		t.Fatalf("list wrapper description = %v", servers.Description)
	}
}

func TestCompileLeafListBounds(t *testing.T) {
	t.Parallel()

	one, five := uint64(1), uint64(5)
	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "dns", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.LeafList{
						NodeInfo:    yang.NodeInfo{Name: "search", Namespace: "urn:example"},
						Type:        &yang.StringType{},
						MinElements: &one,
						MaxElements: &five,
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	dns := mustDefinition(t, defs, "ex_dns")
	if len(dns.Required) != 1 || dns.Required[0] != "search" {
		t.Fatalf("required = %v, want [search]", dns.Required)
	}

	search := mustProperty(t, dns, "search")
	if search.Type != typeArray {
		t.Fatalf("leaf-list type = %q, want array", search.Type)
	}

	if search.MinItems == nil || *search.MinItems != 1 || search.MaxItems == nil || *search.MaxItems != 5 {
		t.Fatalf("leaf-list bounds = %v/%v, want 1/5", search.MinItems, search.MaxItems)
	}

	if search.Items == nil || search.Items.Type != typeString {
		t.Fatalf("leaf-list items = %+v", search.Items)
	}
}

func TestCompileRequiredOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "host", Namespace: "urn:example"},
						Type:     &yang.StringType{},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	settings := mustDefinition(t, defs, "ex_settings")
	if settings.Required != nil {
		t.Fatalf("required = %v, want absent", settings.Required)
	}
}

func TestCompileLeafrefFollowsTarget(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "listen", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "port", Namespace: "urn:example"},
						Type:     &yang.IntType{Width: 16, Unsigned: true, Range: &yang.IntRange{Min: 1, Max: 65535}},
					},
				},
			},
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "mirror", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "target-port", Namespace: "urn:example"},
						Type:     &yang.LeafrefType{Path: "/ex:listen/ex:port"},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	target := mustProperty(t, mustDefinition(t, defs, "ex_mirror"), "target-port")
	if target.Type != typeInteger || target.Format != formatInt32 {
		t.Fatalf("leafref mapping = %q/%q, want integer/int32", target.Type, target.Format)
	}

	if target.Default != int64(1) {
		t.Fatalf("leafref default = %v, want range minimum", target.Default)
	}
}

func TestCompileUnresolvableLeafrefFails(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "mirror", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "target", Namespace: "urn:example"},
						Type:     &yang.LeafrefType{Path: "/nowhere/leaf"},
					},
				},
			},
		},
	}

	_, err := Compile(module, yang.NewModelContext(module), Options{})
	if !errors.Is(err, ErrResolveLeafref) {
		t.Fatalf("err = %v, want ErrResolveLeafref", err)
	}
}

func TestCompileChoiceInlinesDefaultCase(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "routing", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Choice{
						NodeInfo:    yang.NodeInfo{Name: "mode", Namespace: "urn:example"},
						DefaultCase: "dynamic",
						Cases: []*yang.Case{
							{Name: "static", Children: []yang.DataNode{
								&yang.Leaf{
									NodeInfo: yang.NodeInfo{Name: "next-hop", Namespace: "urn:example"},
									Type:     &yang.StringType{},
								},
							}},
							{Name: "dynamic", Children: []yang.DataNode{
								&yang.Leaf{
									NodeInfo: yang.NodeInfo{Name: "protocol", Namespace: "urn:example"},
									Type:     &yang.StringType{},
								},
							}},
						},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	routing := mustDefinition(t, defs, "ex_routing")
	mustProperty(t, routing, "protocol")
	if _, ok := routing.Properties.Get("next-hop"); ok {
		t.Fatal("non-default case leaked into the output")
	}
}

func TestCompileAnydataRendersAsMarkupString(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "inbox", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Anydata{
						NodeInfo:  yang.NodeInfo{Name: "payload", Namespace: "urn:example"},
						Mandatory: true,
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	inbox := mustDefinition(t, defs, "ex_inbox")
	payload := mustProperty(t, inbox, "payload")
	if payload.Type != typeString {
		t.Fatalf("anydata type = %q, want string", payload.Type)
	}

	if payload.Default != "<payload> ... </payload>" {
		t.Fatalf("anydata example = %v", payload.Default)
	}

	if len(inbox.Required) != 1 || inbox.Required[0] != "payload" {
		t.Fatalf("required = %v, want [payload]", inbox.Required)
	}
}

func TestCompileInstanceIdentifierExamplePath(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "target-node", Namespace: "urn:example"},
						Type:     &yang.InstanceIDType{},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	target := mustProperty(t, mustDefinition(t, defs, "ex_settings"), "target-node")
	if target.Default != "/ex:settings" {
		t.Fatalf("instance-identifier example = %v, want /ex:settings", target.Default)
	}
}

func TestCompileActionBodies(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "device", Namespace: "urn:example"},
				Actions: []*yang.RPC{{
					Name:      "reboot",
					Namespace: "urn:example",
					Input: &yang.Container{
						NodeInfo: yang.NodeInfo{Name: "input", Namespace: "urn:example"},
						Children: []yang.DataNode{
							&yang.Leaf{
								NodeInfo: yang.NodeInfo{Name: "delay", Namespace: "urn:example"},
								Type:     &yang.IntType{Width: 32, Unsigned: true},
							},
						},
					},
				}},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	mustDefinition(t, defs, "ex_reboot_input")
	mustDefinition(t, defs, "ex_reboot_input_TOP")
}

func TestCompileUnknownTypeDefinitionFails(t *testing.T) {
	t.Parallel()

	type mysteryType struct{ yang.TypeInfo }
	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "odd", Namespace: "urn:example"},
						Type:     &mysteryType{},
					},
				},
			},
		},
	}

	_, err := Compile(module, yang.NewModelContext(module), Options{})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *yang.Module {
		return &yang.Module{
			Name:      "ex",
			Namespace: "urn:example",
			Prefix:    "ex",
			Identities: []*yang.Identity{
				{Name: "role", Namespace: "urn:example"},
			},
			Children: []yang.DataNode{
				&yang.Container{
					NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example", Config: true},
					Children: []yang.DataNode{
						&yang.Leaf{
							NodeInfo: yang.NodeInfo{Name: "host", Namespace: "urn:example", Config: true},
							Type:     &yang.StringType{},
						},
						&yang.Leaf{
							NodeInfo: yang.NodeInfo{Name: "port", Namespace: "urn:example", Config: true},
							Type:     &yang.IntType{Width: 16, Unsigned: true},
						},
					},
				},
			},
		}
	}

	render := func() []byte {
		defs := compileModule(t, build(), Options{SingleModule: true})
		data, err := MarshalDocumentJSON(defs)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		return data
	}

	first := render()
	second := render()
	if !bytes.Equal(first, second) {
		t.Fatal("repeated compilations produced different documents")
	}
}

func TestCompileOctalDefaultStaysStringInBothFormats(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "mask", Namespace: "urn:example"},
						Type: &yang.IntType{
							TypeInfo: yang.TypeInfo{Name: "uint64", Default: "010", HasDefault: true},
							Width:    64,
							Unsigned: true,
						},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	mask := mustProperty(t, mustDefinition(t, defs, "ex_settings"), "mask")
	if mask.Type != typeString {
		t.Fatalf("octal-default property type = %q, want string", mask.Type)
	}

	if mask.Default != "010" {
		t.Fatalf("octal default = %v (%T), want the literal string", mask.Default, mask.Default)
	}

	// The literal must survive both output formats as a quoted string;
	// a bare 010 is not a JSON token and YAML would reread it as 10.
	jsonDoc, err := MarshalDocumentJSON(defs)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}

	if !strings.Contains(string(jsonDoc), `"default": "010"`) {
		t.Fatalf("json document lost the octal literal:\n%s", jsonDoc)
	}

	yamlDoc, err := MarshalDocumentYAML(defs)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}

	if !strings.Contains(string(yamlDoc), `default: "010"`) {
		t.Fatalf("yaml document lost the octal literal:\n%s", yamlDoc)
	}
}

func TestCompileDocumentGolden(t *testing.T) {
	t.Parallel()

	module := &yang.Module{
		Name:      "ex",
		Namespace: "urn:example",
		Prefix:    "ex",
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "settings", Namespace: "urn:example"},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "host", Namespace: "urn:example"},
						Type:     &yang.StringType{},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{})
	data, err := MarshalDocumentJSON(defs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	goldenPath := filepath.Join("testdata", "settings.json")
	if *updateGolden {
		if err := os.WriteFile(goldenPath, data, 0o644); err != nil {
			t.Fatalf("update golden: %v", err)
		}
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	if !bytes.Equal(data, want) {
		t.Fatalf("document differs from golden:\n%s", data)
	}
}

func TestCompileDocumentRefsAreClosed(t *testing.T) {
	t.Parallel()

	one := uint64(1)
	base := &yang.Identity{Name: "role", Namespace: "urn:example"}
	module := &yang.Module{
		Name:       "ex",
		Namespace:  "urn:example",
		Prefix:     "ex",
		Identities: []*yang.Identity{base},
		Children: []yang.DataNode{
			&yang.Container{
				NodeInfo: yang.NodeInfo{Name: "device", Namespace: "urn:example", Config: true},
				Children: []yang.DataNode{
					&yang.Leaf{
						NodeInfo: yang.NodeInfo{Name: "role", Namespace: "urn:example", Config: true},
						Type:     &yang.IdentityrefType{Base: base},
					},
					&yang.List{
						NodeInfo:    yang.NodeInfo{Name: "ports", Namespace: "urn:example", Config: true},
						MinElements: &one,
						Children: []yang.DataNode{
							&yang.Leaf{
								NodeInfo: yang.NodeInfo{Name: "index", Namespace: "urn:example", Config: true},
								Type:     &yang.IntType{Width: 16, Unsigned: true},
							},
						},
					},
				},
			},
		},
	}

	defs := compileModule(t, module, Options{SingleModule: true})

	var check func(schema *Schema)
	check = func(schema *Schema) {
		if schema == nil {
			return
		}

		if schema.Ref != "" {
			name := strings.TrimPrefix(schema.Ref, DefaultComponentsPrefix)
			if _, ok := defs[name]; !ok {
				t.Fatalf("dangling $ref %q", schema.Ref)
			}
		}

		check(schema.Items)
		if schema.Properties != nil {
			for _, key := range schema.Properties.Keys() {
				property, _ := schema.Properties.Get(key)
				check(property)
			}
		}
	}

	for _, name := range defs.Names() {
		check(defs[name])
	}
}
