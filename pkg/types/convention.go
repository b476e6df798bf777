// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Convention identifies the citation package governing an example list.
type Convention string

const (
	// ConventionGb4e renders examples with gb4e environments
	// (\begin{exe}, \begin{xlist}, \ex[...]{...}).
	ConventionGb4e Convention = "gb4e"

	// ConventionLinguex renders examples as linguex command sequences
	// (\ex., \a., \b., \z.).
	ConventionLinguex Convention = "linguex"

	// ConventionNone means no citation package applies; nodes fall back
	// to the engine's default rendering.
	ConventionNone Convention = ""
)

// ParseConvention maps a document-level package directive to a Convention.
// Anything other than "gb4e" or "linguex" is treated as no declared
// convention.
func ParseConvention(s string) Convention {
	switch s {
	case string(ConventionGb4e):
		return ConventionGb4e
	case string(ConventionLinguex):
		return ConventionLinguex
	default:
		return ConventionNone
	}
}

// Declaration is a citation-package declaration carried on a list node
// and inherited by descendants that do not declare their own.
type Declaration struct {
	// Package selects the citation package.
	Package Convention `json:"package" yaml:"package"`

	// Environment overrides the list environment name (gb4e only;
	// default exe for a declaring list, xlist for a nested one).
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`

	// IntroCommand overrides the item-introducing command.
	IntroCommand string `json:"intro_command,omitempty" yaml:"intro_command,omitempty"`

	// Options is an extra argument string appended to the environment
	// opening (gb4e only).
	Options string `json:"options,omitempty" yaml:"options,omitempty"`
}
