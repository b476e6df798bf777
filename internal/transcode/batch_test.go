// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/lingtex/pkg/types"
)

const gb4eDoc = `id: demo
nodes:
  - kind: list
    package: gb4e
    children:
      - kind: item
        children:
          - kind: paragraph
            children:
              - kind: text
                text: "* This is bad. "
              - kind: target
                key: "s:x"
`

const plainDoc = `id: plain
nodes:
  - kind: list
    children:
      - kind: item
        children:
          - kind: paragraph
            children:
              - kind: text
                text: "No package here"
`

func writeDocs(t *testing.T, docs map[string]string) types.RenderConfig {
	t.Helper()
	base := t.TempDir()
	docsDir := filepath.Join(base, "documents")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range docs {
		if err := os.WriteFile(filepath.Join(docsDir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return types.RenderConfig{
		DocumentsDir: docsDir,
		OutputDir:    filepath.Join(base, "tex"),
	}
}

func TestRenderBatch(t *testing.T) {
	cfg := writeDocs(t, map[string]string{
		"demo.yaml":  gb4eDoc,
		"plain.yaml": plainDoc,
	})

	var out strings.Builder
	result, err := RenderBatch(cfg, &out)
	if err != nil {
		t.Fatal(err)
	}
	if result.Rendered != 2 || result.Failed != 0 {
		t.Fatalf("result = %+v, want 2 rendered", result)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "demo.tex"))
	if err != nil {
		t.Fatal(err)
	}
	want := "\\begin{exe}\n\\ex[*]{\\label{s:x}This is bad.}\n\\end{exe}\n"
	if string(data) != want {
		t.Errorf("demo.tex = %q, want %q", data, want)
	}

	// Lists without a declared package fall back to plain rendering.
	plain, err := os.ReadFile(filepath.Join(cfg.OutputDir, "plain.tex"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(plain), `\begin`) {
		t.Errorf("plain.tex = %q, want no environment", plain)
	}

	// A second run skips everything.
	var again strings.Builder
	result, err = RenderBatch(cfg, &again)
	if err != nil {
		t.Fatal(err)
	}
	if result.Skipped != 2 || result.Rendered != 0 {
		t.Errorf("second run = %+v, want 2 skipped", result)
	}
	if !strings.Contains(again.String(), "skipped: demo (already exists)") {
		t.Errorf("output = %q, want skip notice", again.String())
	}
}

func TestRenderBatchDefaultPackage(t *testing.T) {
	cfg := writeDocs(t, map[string]string{"plain.yaml": plainDoc})
	cfg.DefaultPackage = "linguex"

	var out strings.Builder
	result, err := RenderBatch(cfg, &out)
	if err != nil {
		t.Fatal(err)
	}
	if result.Rendered != 1 {
		t.Fatalf("result = %+v, want 1 rendered", result)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "plain.tex"))
	if err != nil {
		t.Fatal(err)
	}
	want := `\ex.No package here\par` + "\n"
	if string(data) != want {
		t.Errorf("plain.tex = %q, want %q", data, want)
	}
}

func TestRenderPathsFailure(t *testing.T) {
	cfg := writeDocs(t, nil)

	var out strings.Builder
	result := RenderPaths([]string{filepath.Join(cfg.DocumentsDir, "missing.yaml")}, cfg, &out)
	if result.Failed != 1 {
		t.Errorf("result = %+v, want 1 failed", result)
	}
	if !result.HasFailures() {
		t.Error("HasFailures = false, want true")
	}
	if !strings.Contains(out.String(), "failed:") {
		t.Errorf("output = %q, want failure notice", out.String())
	}
}
