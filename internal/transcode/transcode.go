// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcode drives the export pass: it walks a document tree
// bottom-up, routes each list, item, and paragraph to the renderer for
// its governing citation package, and falls back to the engine's default
// rendering where no package applies.
package transcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/lingtex/internal/doctree"
	"github.com/pdiddy/lingtex/internal/extract"
	"github.com/pdiddy/lingtex/internal/render"
	"github.com/pdiddy/lingtex/pkg/types"
)

// UnknownConventionError reports a paragraph whose ancestor chain
// resolved to a convention with no registered renderer at transcode time.
// The dispatch guard makes this unreachable for well-formed trees; it is
// a programming-invariant violation and aborts the pass.
type UnknownConventionError struct {
	Convention types.Convention
}

func (e *UnknownConventionError) Error() string {
	return fmt.Sprintf("no renderer for convention %q at paragraph transcode time", e.Convention)
}

// Fallback is the engine's default rendering for nodes outside example
// lists. Embedders replace it to splice lingtex into a larger exporter.
type Fallback interface {
	Paragraph(n *types.Node, childContent string) string
	Item(n *types.Node, childContent string) string
	List(n *types.Node, childContent string) string
}

// engineFallback is the built-in default rendering: paragraphs become
// blank-line separated blocks, items and lists pass content through.
type engineFallback struct{}

func (engineFallback) Paragraph(n *types.Node, childContent string) string {
	return childContent + "\n\n"
}

func (engineFallback) Item(n *types.Node, childContent string) string {
	return childContent
}

func (engineFallback) List(n *types.Node, childContent string) string {
	return childContent
}

// Result is the outcome of one export pass over a document tree.
type Result struct {
	// Output is the rendered LaTeX for the whole tree.
	Output string

	// Warnings lists non-fatal conditions encountered during the pass.
	Warnings []string
}

// Transcoder runs export passes. It is single-threaded: one pass at a
// time, with per-node attributes written once and read only by ancestors
// later in the same bottom-up traversal.
type Transcoder struct {
	renderers map[types.Convention]render.PackageRenderer
	fallback  Fallback
	warnings  []string
}

// New returns a Transcoder with the built-in engine fallback.
func New() *Transcoder {
	return NewWithFallback(engineFallback{})
}

// NewWithFallback returns a Transcoder delegating non-example rendering
// to fb.
func NewWithFallback(fb Fallback) *Transcoder {
	t := &Transcoder{fallback: fb}
	t.renderers = render.Registry(t.warnf)
	return t
}

func (t *Transcoder) warnf(format string, args ...any) {
	t.warnings = append(t.warnings, fmt.Sprintf(format, args...))
}

// Document renders a full tree bottom-up and returns the output together
// with any warnings the pass produced.
func (t *Transcoder) Document(root *types.Node) (Result, error) {
	t.warnings = nil
	out, err := t.renderNode(root)
	if err != nil {
		return Result{}, err
	}
	return Result{Output: out, Warnings: t.warnings}, nil
}

// renderNode renders children first, then dispatches the node itself
// with the concatenated child content, matching the callback order the
// export engine uses.
func (t *Transcoder) renderNode(n *types.Node) (string, error) {
	switch n.Kind {
	case types.KindText:
		return n.Text, nil
	case types.KindTarget:
		// Cross-reference targets are rewritten into label commands
		// before extraction sees them.
		return `\label{` + n.Key + `}`, nil
	}

	var b strings.Builder
	for _, c := range n.Children {
		s, err := t.renderNode(c)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	content := b.String()

	switch n.Kind {
	case types.KindParagraph:
		return t.Paragraph(n, content)
	case types.KindItem:
		return t.Item(n, content)
	case types.KindList:
		return t.List(n, content)
	default:
		return content, nil
	}
}

// Paragraph is the paragraph-level callback: it extracts annotations
// from the rendered inline text, publishes them on the node, and renders
// the paragraph fragment for the governing convention.
func (t *Transcoder) Paragraph(n *types.Node, childContent string) (string, error) {
	conv := doctree.Convention(n)
	if conv == types.ConventionNone {
		return t.fallback.Paragraph(n, childContent), nil
	}
	r, ok := t.renderers[conv]
	if !ok {
		return "", &UnknownConventionError{Convention: conv}
	}
	ann := extract.Publish(n, childContent)
	return r.Paragraph(n, ann), nil
}

// Item is the item-level callback. A malformed item (not exactly one
// paragraph child) is reported as a warning and rendered through the
// fallback rather than producing broken LaTeX.
func (t *Transcoder) Item(n *types.Node, childContent string) (string, error) {
	decl := doctree.Resolve(n)
	if decl == nil {
		return t.fallback.Item(n, childContent), nil
	}
	r, ok := t.renderers[decl.Package]
	if !ok {
		return t.fallback.Item(n, childContent), nil
	}
	out, err := r.Item(n, decl, childContent)
	if err != nil {
		var mie *render.MalformedItemError
		if errors.As(err, &mie) {
			t.warnf("item rendered without example command: %v", mie)
			return t.fallback.Item(n, childContent), nil
		}
		return "", err
	}
	return out, nil
}

// List is the list-level callback. Placeholder-resolution failures from
// the gb4e renderer abort the pass.
func (t *Transcoder) List(n *types.Node, childContent string) (string, error) {
	decl := doctree.Resolve(n)
	if decl == nil {
		return t.fallback.List(n, childContent), nil
	}
	r, ok := t.renderers[decl.Package]
	if !ok {
		return t.fallback.List(n, childContent), nil
	}
	return r.List(n, decl, childContent)
}
