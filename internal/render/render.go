// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render implements the per-citation-package renderers that turn
// example paragraphs, items, and lists into LaTeX fragments. Each
// supported package (gb4e, linguex) provides one implementation behind a
// uniform interface; a registry maps conventions to implementations.
package render

import (
	"github.com/pdiddy/lingtex/pkg/types"
)

// PackageRenderer renders the three example node kinds for one citation
// package. Calls arrive bottom-up: Paragraph before the enclosing Item,
// Item before the enclosing List, each receiving the already-rendered
// content of the level below. The resolved declaration is passed in
// explicitly; renderers never re-derive it from the tree.
type PackageRenderer interface {
	// Paragraph renders a paragraph's final fragment from its extracted
	// annotations.
	Paragraph(n *types.Node, ann types.Annotations) string

	// Item wraps a rendered paragraph fragment in the item-introducing
	// command for this package.
	Item(n *types.Node, decl *types.Declaration, childContent string) (string, error)

	// List wraps the concatenated item fragments in the list-level
	// environment, resolving any deferred placeholders.
	List(n *types.Node, decl *types.Declaration, childContent string) (string, error)
}

// WarnFunc receives warnings for conditions that produce output but
// deserve author attention.
type WarnFunc func(format string, args ...any)

// Registry maps each supported convention to its renderer. The warn sink
// is shared by all renderers in the registry; pass nil to discard
// warnings.
func Registry(warn WarnFunc) map[types.Convention]PackageRenderer {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return map[types.Convention]PackageRenderer{
		types.ConventionGb4e:    &Gb4e{warn: warn},
		types.ConventionLinguex: &Linguex{},
	}
}
