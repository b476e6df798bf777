// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/pdiddy/lingtex/pkg/types"
)

func TestAnnotations(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Annotations
	}{
		{
			name: "plain text unchanged",
			text: "This is fine.",
			want: types.Annotations{Text: "This is fine."},
		},
		{
			name: "judgment and trailing label",
			text: `* This is bad. \label{s:x}`,
			want: types.Annotations{Label: `\label{s:x}`, Judgment: "*", Text: "This is bad."},
		},
		{
			name: "star judgment",
			text: "* Bad sentence",
			want: types.Annotations{Judgment: "*", Text: "Bad sentence"},
		},
		{
			name: "double question judgment",
			text: "?? Very marginal",
			want: types.Annotations{Judgment: "??", Text: "Very marginal"},
		},
		{
			name: "percent judgment",
			text: "% Dialectal variant",
			want: types.Annotations{Judgment: "%", Text: "Dialectal variant"},
		},
		{
			name: "hash and backslash run",
			text: `#\ Odd marking`,
			want: types.Annotations{Judgment: `#\`, Text: "Odd marking"},
		},
		{
			name: "question mark ending a sentence is not a judgment",
			text: "Is this right?",
			want: types.Annotations{Text: "Is this right?"},
		},
		{
			name: "judgment needs following whitespace",
			text: "*bad",
			want: types.Annotations{Text: "*bad"},
		},
		{
			name: "leading whitespace before judgment",
			text: "  ? Really",
			want: types.Annotations{Judgment: "?", Text: "Really"},
		},
		{
			name: "interior label rejoined with single space",
			text: `foo \label{a.b} bar`,
			want: types.Annotations{Label: `\label{a.b}`, Text: "foo bar"},
		},
		{
			name: "label before judgment does not suppress detection",
			text: `\label{x} * starred`,
			want: types.Annotations{Label: `\label{x}`, Judgment: "*", Text: "starred"},
		},
		{
			name: "label only",
			text: `\label{intro:list}`,
			want: types.Annotations{Label: `\label{intro:list}`, Text: ""},
		},
		{
			name: "malformed label key is ignored",
			text: `\label{has space} text`,
			want: types.Annotations{Text: `\label{has space} text`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotations(tt.text)
			if got != tt.want {
				t.Errorf("Annotations(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

// TestAnnotationsReconstruct verifies no content is lost: the rejoined
// triple carries exactly the words of the input. Reconstruct restores
// the markers in canonical order, so comparison is order-insensitive.
func TestAnnotationsReconstruct(t *testing.T) {
	inputs := []string{
		"This is fine.",
		`* This is bad. \label{s:x}`,
		`\label{x} * starred`,
		`foo \label{a.b} bar`,
		"?? Very marginal",
	}
	for _, text := range inputs {
		ann := Annotations(text)
		got := strings.Fields(Reconstruct(ann))
		want := strings.Fields(text)
		sort.Strings(got)
		sort.Strings(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Reconstruct(Annotations(%q)) lost content: got %v, want %v", text, got, want)
		}
	}
}

func TestPublish(t *testing.T) {
	n := types.NewNode(types.KindParagraph)

	if _, ok := Published(n); ok {
		t.Fatal("Published returned true before Publish")
	}

	want := Publish(n, `* Bad \label{k}`)
	got, ok := Published(n)
	if !ok {
		t.Fatal("Published returned false after Publish")
	}
	if got != want {
		t.Errorf("Published = %+v, want %+v", got, want)
	}
	if got.Judgment != "*" || got.Label != `\label{k}` || got.Text != "Bad" {
		t.Errorf("unexpected triple: %+v", got)
	}
}

func TestLabelKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{`\label{s:x}`, "s:x"},
		{`\label{intro.1-a}`, "intro.1-a"},
		{"not a label", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LabelKey(tt.label); got != tt.want {
			t.Errorf("LabelKey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestReferences(t *testing.T) {
	text := `Compare \ref{s:x} with \ref{s:y}; see also \ref{s:x}.`
	got := References(text)
	want := []string{"s:x", "s:y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("References = %v, want %v", got, want)
	}

	if got := References("no references here"); got != nil {
		t.Errorf("References on plain text = %v, want nil", got)
	}
}
