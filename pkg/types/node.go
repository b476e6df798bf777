// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the lingtex pipeline:
// the exported document tree, citation-package declarations, and the
// annotations pulled out of example text during transcoding.
package types

// NodeKind identifies the variant of a document tree node.
type NodeKind string

const (
	// KindDocument is the container at the root of a loaded tree; it
	// never takes part in example rendering.
	KindDocument  NodeKind = "document"
	KindList      NodeKind = "list"
	KindItem      NodeKind = "item"
	KindParagraph NodeKind = "paragraph"
	KindText      NodeKind = "text"
	KindTarget    NodeKind = "target"
)

// validNodeKinds is the set of accepted node kinds.
var validNodeKinds = map[NodeKind]bool{
	KindDocument:  true,
	KindList:      true,
	KindItem:      true,
	KindParagraph: true,
	KindText:      true,
	KindTarget:    true,
}

// IsValid returns true if the node kind is one of the known variants.
func (k NodeKind) IsValid() bool {
	return validNodeKinds[k]
}

// Node is one node of the document tree produced by the export engine.
// The tree is transient: it exists for a single export pass. Parent is a
// non-owning back pointer used for upward navigation only; Children are
// owned and ordered.
type Node struct {
	// Kind selects the variant: list, item, paragraph, text, or target.
	Kind NodeKind

	// Text is the payload of a text node; empty for other kinds.
	Text string

	// Key is the cross-reference key of a target node; empty otherwise.
	Key string

	// Tag is an author-supplied identifier on an item that replaces
	// automatic example numbering. Empty when the item is auto-numbered.
	Tag string

	// Declaration is the citation-package declaration carried by a list
	// node. Nil on non-list nodes and on lists that inherit from an
	// ancestor.
	Declaration *Declaration

	// Parent points at the containing node, nil at the root.
	Parent *Node

	// Children are the node's ordered child nodes.
	Children []*Node

	// Attrs is scratch storage for inter-pass communication: a renderer
	// writes a value once and an ancestor's renderer reads it later in
	// the same bottom-up traversal.
	Attrs map[string]string
}

// NewNode returns a node of the given kind with an empty attribute map.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, Attrs: make(map[string]string)}
}

// Append adds children to n in order, wiring their parent pointers.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
}

// SetAttr stores an attribute value on the node.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// Attr returns the attribute value for key and whether it was set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// ParagraphChildren returns the node's direct paragraph children.
func (n *Node) ParagraphChildren() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == KindParagraph {
			out = append(out, c)
		}
	}
	return out
}

// SiblingPosition locates a node within its parent's child sequence.
type SiblingPosition int

const (
	PositionOnly SiblingPosition = iota
	PositionFirst
	PositionMiddle
	PositionLast
)

// Position computes the node's sibling position. A node without a parent
// counts as an only child.
func (n *Node) Position() SiblingPosition {
	if n.Parent == nil {
		return PositionOnly
	}
	siblings := n.Parent.Children
	first := len(siblings) > 0 && siblings[0] == n
	last := len(siblings) > 0 && siblings[len(siblings)-1] == n
	switch {
	case first && last:
		return PositionOnly
	case first:
		return PositionFirst
	case last:
		return PositionLast
	default:
		return PositionMiddle
	}
}
