// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/yangdoc

package yang

// NodeInfo carries the fields shared by every data node.
type NodeInfo struct {
	// Name is the module-local node name.
	Name string
	// Namespace is the XML namespace of the node's module.
	Namespace string
	// Description is the node description text, possibly empty.
	Description string
	// Config reports whether the node is part of the configuration view.
	Config bool
}

// Info returns the shared node fields.
func (info *NodeInfo) Info() *NodeInfo { return info }

// DataNode is one typed element of the schema tree. The set of
// implementations is closed: Container, List, Leaf, LeafList, Choice,
// Anydata and Anyxml. Code dispatching on DataNode must handle every
// variant and fail loudly on anything else.
type DataNode interface {
	Info() *NodeInfo
	dataNode()
}

// MandatoryAware is implemented by data nodes that can carry a YANG
// mandatory statement.
type MandatoryAware interface {
	IsMandatory() bool
}

// Container is an interior node holding child data nodes.
type Container struct {
	NodeInfo
	// Presence reports whether the container carries a presence statement.
	Presence bool
	Children []DataNode
	// Actions are action statements declared inside the container.
	Actions []*RPC
}

func (*Container) dataNode() {}

// List is a keyed sequence of entries sharing one child layout.
type List struct {
	NodeInfo
	// MinElements and MaxElements mirror the element count constraint;
	// nil means unconstrained.
	MinElements *uint64
	MaxElements *uint64
	Children    []DataNode
	Actions     []*RPC
}

func (*List) dataNode() {}

// Leaf is a typed scalar node.
type Leaf struct {
	NodeInfo
	Mandatory bool
	Type      TypeDef
}

func (*Leaf) dataNode() {}

// IsMandatory reports whether the leaf carries a mandatory statement.
func (leaf *Leaf) IsMandatory() bool { return leaf.Mandatory }

// LeafList is a typed sequence of scalar values.
type LeafList struct {
	NodeInfo
	Type        TypeDef
	MinElements *uint64
	MaxElements *uint64
}

func (*LeafList) dataNode() {}

// Choice selects exactly one of its cases.
type Choice struct {
	NodeInfo
	Mandatory bool
	Cases     []*Case
	// DefaultCase names the default case, or is empty when none is declared.
	DefaultCase string
}

func (*Choice) dataNode() {}

// IsMandatory reports whether the choice carries a mandatory statement.
func (choice *Choice) IsMandatory() bool { return choice.Mandatory }

// Default returns the declared default case, or the first declared case,
// or nil when the choice has no cases.
func (choice *Choice) Default() *Case {
	for _, candidate := range choice.Cases {
		if candidate.Name == choice.DefaultCase {
			return candidate
		}
	}

	if len(choice.Cases) > 0 {
		return choice.Cases[0]
	}

	return nil
}

// Case is one alternative branch of a Choice.
type Case struct {
	Name     string
	Children []DataNode
}

// Anydata is an opaque subtree modeled after RFC 7950 anydata.
type Anydata struct {
	NodeInfo
	Mandatory bool
}

func (*Anydata) dataNode() {}

// IsMandatory reports whether the anydata node carries a mandatory statement.
func (node *Anydata) IsMandatory() bool { return node.Mandatory }

// Anyxml is an opaque XML fragment node.
type Anyxml struct {
	NodeInfo
	Mandatory bool
}

func (*Anyxml) dataNode() {}

// IsMandatory reports whether the anyxml node carries a mandatory statement.
func (node *Anyxml) IsMandatory() bool { return node.Mandatory }
