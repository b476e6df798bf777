// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls embedded annotations out of rendered example text:
// the cross-reference label command and the grammaticality judgment marker
// that authors write inline within a list item.
package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/lingtex/pkg/types"
)

// Attribute keys under which the extractor publishes its results on a
// paragraph node for consumption by ancestor renderers.
const (
	AttrLabel    = "extract.label"
	AttrJudgment = "extract.judgment"
	AttrText     = "extract.text"
)

var (
	// labelRe matches a cross-reference definition command anywhere in
	// the text, together with the whitespace around it. The key charset
	// mirrors what the export engine emits for target names.
	labelRe = regexp.MustCompile(`[ \t]*(\\label\{[A-Za-z0-9_.:-]+\})[ \t]*`)

	// judgmentRe matches a judgment marker anchored at the start of the
	// text: a maximal run of judgment characters followed by whitespace.
	// The whitespace requirement keeps a literal "?" ending a question
	// from being read as a judgment.
	judgmentRe = regexp.MustCompile(`^[ \t]*([*?%#\\]+)[ \t]+`)

	// labelKeyRe captures the key inside a label command.
	labelKeyRe = regexp.MustCompile(`\\label\{([A-Za-z0-9_.:-]+)\}`)

	// refRe matches a cross-reference use command.
	refRe = regexp.MustCompile(`\\ref\{([A-Za-z0-9_.:-]+)\}`)
)

// Annotations splits rendered example text into (label, judgment, text).
// The label is removed first, wherever it occurs; only then is the
// judgment detected, so a label sitting in front of the judgment does not
// suppress it. Text with neither pattern is returned unchanged.
func Annotations(text string) types.Annotations {
	ann := types.Annotations{Text: text}

	if m := labelRe.FindStringSubmatchIndex(text); m != nil {
		ann.Label = text[m[2]:m[3]]
		before, after := text[:m[0]], text[m[1]:]
		if before != "" && after != "" {
			// Interior label: rejoin the halves with a single space so
			// words on either side do not run together.
			ann.Text = before + " " + after
		} else {
			ann.Text = before + after
		}
	}

	if m := judgmentRe.FindStringSubmatchIndex(ann.Text); m != nil {
		ann.Judgment = ann.Text[m[2]:m[3]]
		ann.Text = ann.Text[m[1]:]
	}

	return ann
}

// Publish extracts annotations from text and records them as attributes
// on the paragraph node, returning the extracted triple. Ancestor item
// renderers read the judgment; the catalog reads the label.
func Publish(node *types.Node, text string) types.Annotations {
	ann := Annotations(text)
	node.SetAttr(AttrLabel, ann.Label)
	node.SetAttr(AttrJudgment, ann.Judgment)
	node.SetAttr(AttrText, ann.Text)
	return ann
}

// Published reads a previously published triple back off a paragraph
// node. The boolean is false if the node was never run through Publish.
func Published(node *types.Node) (types.Annotations, bool) {
	label, ok := node.Attr(AttrLabel)
	if !ok {
		return types.Annotations{}, false
	}
	judgment, _ := node.Attr(AttrJudgment)
	text, _ := node.Attr(AttrText)
	return types.Annotations{Label: label, Judgment: judgment, Text: text}, true
}

// LabelKey returns the key inside a label command, or "" if the string
// is not a label command.
func LabelKey(label string) string {
	m := labelKeyRe.FindStringSubmatch(label)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// References returns the distinct cross-reference keys used in text, in
// order of first appearance.
func References(text string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range refRe.FindAllStringSubmatch(text, -1) {
		key := m[1]
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

// Reconstruct rebuilds the original text from an extracted triple, with
// the label and judgment restored in canonical order. Used to verify the
// extraction did not lose content.
func Reconstruct(ann types.Annotations) string {
	var parts []string
	if ann.Judgment != "" {
		parts = append(parts, ann.Judgment)
	}
	if ann.Label != "" {
		parts = append(parts, ann.Label)
	}
	if ann.Text != "" {
		parts = append(parts, ann.Text)
	}
	return strings.Join(parts, " ")
}
