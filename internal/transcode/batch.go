// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/lingtex/internal/doctree"
	"github.com/pdiddy/lingtex/pkg/types"
)

// Status is the outcome of rendering one document.
type Status string

const (
	StatusRendered Status = "rendered"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// BatchResult holds counts from a batch render run.
type BatchResult struct {
	Rendered int
	Skipped  int
	Failed   int
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Rendered + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// RenderDocument renders a single exported document file to
// OutputDir/<id>.tex. If the output already exists it is left alone and
// the document is skipped. Warnings are printed to w but do not fail the
// document.
func RenderDocument(path string, cfg types.RenderConfig, w io.Writer) Status {
	id, root, err := doctree.Load(path)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(path), err)
		return StatusFailed
	}

	outPath := filepath.Join(cfg.OutputDir, id+".tex")
	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", id)
		return StatusSkipped
	}

	doctree.ApplyDefaultPackage(root, types.ParseConvention(cfg.DefaultPackage))

	res, err := New().Document(root)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
		return StatusFailed
	}
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "warning: %s: %s\n", id, warning)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
		return StatusFailed
	}
	if err := os.WriteFile(outPath, []byte(res.Output), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "rendered: %s\n", id)
	return StatusRendered
}

// RenderPaths renders a list of document files, printing per-file status
// to w and returning a summary.
func RenderPaths(paths []string, cfg types.RenderConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		switch RenderDocument(p, cfg, w) {
		case StatusRendered:
			result.Rendered++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d rendered, %d skipped, %d failed (total: %d)\n",
		result.Rendered, result.Skipped, result.Failed, result.Total())
	return result
}

// RenderBatch renders every YAML document under cfg.DocumentsDir.
func RenderBatch(cfg types.RenderConfig, w io.Writer) (BatchResult, error) {
	entries, err := os.ReadDir(cfg.DocumentsDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading documents directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(cfg.DocumentsDir, e.Name()))
	}
	sort.Strings(paths)

	return RenderPaths(paths, cfg, w), nil
}
