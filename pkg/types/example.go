// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Annotations is the result of splitting a rendered example line into its
// embedded markers and the remaining text. Rejoining Label, Judgment, and
// Text in their original order reproduces the input modulo the whitespace
// that surrounded the removed markers.
type Annotations struct {
	// Label is the full cross-reference definition command found in the
	// text (e.g. `\label{s:x}`), or empty if none was present.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Judgment is the grammaticality marker found at the start of the
	// text (e.g. "*", "??", "%"), or empty if none was present.
	Judgment string `json:"judgment,omitempty" yaml:"judgment,omitempty"`

	// Text is the example text with label and judgment removed.
	Text string `json:"text" yaml:"text"`
}

// HasLabel reports whether a label command was found.
func (a Annotations) HasLabel() bool {
	return a.Label != ""
}

// HasJudgment reports whether a judgment marker was found.
func (a Annotations) HasJudgment() bool {
	return a.Judgment != ""
}

// LabelRecord is one catalog row: a label discovered in a document,
// together with the example context it was attached to.
type LabelRecord struct {
	// Document is the identifier of the document the label came from.
	Document string `json:"document" yaml:"document"`

	// Key is the cross-reference key (the KEY in \label{KEY}).
	Key string `json:"key" yaml:"key"`

	// Package is the citation package governing the example.
	Package Convention `json:"package" yaml:"package"`

	// Judgment is the example's grammaticality marker, if any.
	Judgment string `json:"judgment,omitempty" yaml:"judgment,omitempty"`

	// Tag is the example's override tag, if any.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`

	// Text is the example text the label was attached to.
	Text string `json:"text" yaml:"text"`
}
