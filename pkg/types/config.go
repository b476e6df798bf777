// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenderConfig holds settings for the render stage.
type RenderConfig struct {
	// DocumentsDir is the directory holding exported document trees
	// (one YAML file per document).
	DocumentsDir string `json:"documents_dir" yaml:"documents_dir"`

	// OutputDir is the directory LaTeX fragments are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DefaultPackage applies to documents whose lists declare no
	// citation package. Empty means such lists fall back to the
	// engine's default rendering.
	DefaultPackage string `json:"default_package,omitempty" yaml:"default_package,omitempty"`
}

// CatalogConfig holds settings for the label catalog.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults caps the number of rows returned by catalog listings
	// (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
