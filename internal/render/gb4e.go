// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/pdiddy/lingtex/internal/extract"
	"github.com/pdiddy/lingtex/pkg/types"
)

// optionPlaceholder stands in for the optional judgment argument of an
// unjudged item until the enclosing list knows whether any sibling is
// judged. NUL bytes cannot occur in exported text, so the token cannot
// collide with author content.
const optionPlaceholder = "\x00exopt\x00"

// AttrJudged is the attribute under which the gb4e item renderer records
// judgment presence for the enclosing list renderer.
const AttrJudged = "gb4e.judged"

// Gb4e renders examples for the gb4e package: \begin{exe}/\begin{xlist}
// environments with \ex[judgment]{...} items.
type Gb4e struct {
	warn WarnFunc
}

// Paragraph emits the braced example body. Label goes first, inside the
// braces; putting it outside shifts the example number in the output. An
// empty body is emitted without braces because an empty braced group
// breaks nested xlist syntax.
func (g *Gb4e) Paragraph(n *types.Node, ann types.Annotations) string {
	if ann.Text == "" {
		return ann.Label
	}
	return "{" + ann.Label + ann.Text + "}"
}

// Item wraps the paragraph fragment in \ex or, when the author supplied
// an override tag, \exi{tag}. A judged item gets its judgment as the
// optional argument; an unjudged one gets the placeholder, resolved by
// the enclosing list once judgment presence is known list-wide.
func (g *Gb4e) Item(n *types.Node, decl *types.Declaration, childContent string) (string, error) {
	paras := n.ParagraphChildren()
	if len(paras) != 1 {
		return "", &MalformedItemError{Paragraphs: len(paras)}
	}
	ann, _ := extract.Published(paras[0])

	intro := `\ex`
	switch {
	case n.Tag != "":
		intro = `\exi{` + n.Tag + `}`
	case decl != nil && decl.IntroCommand != "":
		intro = decl.IntroCommand
	}

	if ann.HasJudgment() {
		n.SetAttr(AttrJudged, "true")
		return intro + "[" + ann.Judgment + "]" + childContent + "\n", nil
	}
	n.SetAttr(AttrJudged, "false")
	return intro + optionPlaceholder + childContent + "\n", nil
}

// List wraps the concatenated item fragments in the exe environment (or
// xlist for an inherited sub-list) and resolves the placeholders: if any
// direct item child is judged, every placeholder becomes an empty
// optional argument so sibling examples stay aligned; otherwise all
// placeholders are removed.
func (g *Gb4e) List(n *types.Node, decl *types.Declaration, childContent string) (string, error) {
	anyJudged := false
	for _, c := range n.Children {
		if c.Kind != types.KindItem {
			continue
		}
		if v, _ := c.Attr(AttrJudged); v == "true" {
			anyJudged = true
			break
		}
	}

	var resolved string
	if anyJudged {
		resolved = strings.ReplaceAll(childContent, optionPlaceholder, "[ ]")
		g.warnEmptyUnjudged(n)
	} else {
		resolved = strings.ReplaceAll(childContent, optionPlaceholder, "")
	}

	if c := strings.Count(resolved, optionPlaceholder); c > 0 {
		return "", &PlaceholderError{Count: c}
	}

	env := "xlist"
	switch {
	case decl != nil && decl.Environment != "":
		env = decl.Environment
	case n.Declaration != nil:
		// The list declares gb4e itself, so it opens a top-level
		// example environment; only inherited sub-lists use xlist.
		env = "exe"
	}

	opts := ""
	if decl != nil {
		opts = decl.Options
	}

	return `\begin{` + env + `}` + opts + "\n" + resolved + `\end{` + env + `}` + "\n", nil
}

// warnEmptyUnjudged flags the unresolved corner case: an unjudged item
// with empty example text sitting among judged siblings still receives a
// uniform [ ], which keeps alignment but may not be what the author
// wants for a bare sub-list introduction.
func (g *Gb4e) warnEmptyUnjudged(n *types.Node) {
	for _, c := range n.Children {
		if c.Kind != types.KindItem {
			continue
		}
		if v, _ := c.Attr(AttrJudged); v != "false" {
			continue
		}
		paras := c.ParagraphChildren()
		if len(paras) != 1 {
			continue
		}
		if ann, ok := extract.Published(paras[0]); ok && ann.Text == "" {
			g.warn("unjudged item with empty text among judged siblings gets [ ]")
		}
	}
}
