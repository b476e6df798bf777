// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doctree provides services over the exported document tree:
// citation-package resolution along the ancestor chain, and loading of
// trees from the export engine's YAML document files.
package doctree

import (
	"github.com/pdiddy/lingtex/pkg/types"
)

// Resolve returns the citation-package declaration governing a node: the
// node's own declaration if it is a declaring list, otherwise the nearest
// ancestor's. Returns nil when no ancestor declares one.
func Resolve(n *types.Node) *types.Declaration {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == types.KindList && cur.Declaration != nil {
			return cur.Declaration
		}
	}
	return nil
}

// Convention returns the convention governing a node, or ConventionNone.
func Convention(n *types.Node) types.Convention {
	if d := Resolve(n); d != nil {
		return d.Package
	}
	return types.ConventionNone
}

// Declares reports whether the list node carries its own declaration for
// the given convention. Used to distinguish a top-level example list from
// a sub-list, which inherits its convention.
func Declares(n *types.Node, c types.Convention) bool {
	return n != nil && n.Kind == types.KindList &&
		n.Declaration != nil && n.Declaration.Package == c
}

// ApplyDefaultPackage attaches a declaration for conv to every list in
// the tree that would otherwise resolve to no convention. Lists with an
// inherited or own declaration are left alone.
func ApplyDefaultPackage(root *types.Node, conv types.Convention) {
	if conv == types.ConventionNone {
		return
	}
	walk(root, func(n *types.Node) {
		if n.Kind == types.KindList && Resolve(n) == nil {
			n.Declaration = &types.Declaration{Package: conv}
		}
	})
}

// walk visits every node top-down.
func walk(n *types.Node, fn func(*types.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		walk(c, fn)
	}
}

// Walk visits every node of the tree top-down.
func Walk(root *types.Node, fn func(*types.Node)) {
	walk(root, fn)
}
