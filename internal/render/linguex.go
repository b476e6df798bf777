// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"github.com/pdiddy/lingtex/pkg/types"
)

// Linguex renders examples for the linguex package: a flat sequence of
// \ex., \a., \b. commands. Items are self-terminating, so the list level
// adds nothing.
type Linguex struct{}

// Paragraph emits judgment, label, and text concatenated with no
// separator. The judgment must follow the item-introducing command with
// zero intervening whitespace or linguex misaligns the example.
func (l *Linguex) Paragraph(n *types.Node, ann types.Annotations) string {
	return ann.Judgment + ann.Label + ann.Text
}

// Item picks the introducing command from the item's position: \ex. for
// a top-level example (the parent list declares linguex itself), \a. for
// the first item of a sub-list, \b. for the rest. The trailing command
// closes the example: \par at top level, \z. after the last sub-list
// item.
func (l *Linguex) Item(n *types.Node, decl *types.Declaration, childContent string) (string, error) {
	topLevel := n.Parent != nil && n.Parent.Kind == types.KindList &&
		n.Parent.Declaration != nil && n.Parent.Declaration.Package == types.ConventionLinguex
	pos := n.Position()

	intro := `\b.`
	switch {
	case topLevel && decl != nil && decl.IntroCommand != "":
		intro = decl.IntroCommand
	case topLevel:
		intro = `\ex.`
	case pos == types.PositionFirst || pos == types.PositionOnly:
		intro = `\a.`
	}

	trailing := "\n"
	switch {
	case topLevel:
		trailing = `\par` + "\n"
	case pos == types.PositionLast || pos == types.PositionOnly:
		trailing = `\z.` + "\n"
	}

	tag := ""
	if n.Tag != "" {
		tag = "[" + n.Tag + "]"
	}

	return intro + tag + childContent + trailing, nil
}

// List is the identity: linguex items already emit complete fragments.
func (l *Linguex) List(n *types.Node, decl *types.Declaration, childContent string) (string, error) {
	return childContent, nil
}
