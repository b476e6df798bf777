// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lingtex/internal/transcode"
	"github.com/pdiddy/lingtex/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render [documents...]",
	Short: "Render exported documents to LaTeX example lists",
	Long: `Render reads exported document trees (YAML) and writes one .tex
fragment per document. Lists declaring gb4e or linguex are rendered with
that package's example commands; other content uses default rendering.

Pass document files as arguments, or --batch to render every document in
the documents directory. Existing output files are skipped.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	batch, _ := cmd.Flags().GetBool("batch")
	cfg := renderConfig(cmd)

	if !batch && len(args) == 0 {
		return fmt.Errorf("no documents given (pass files or --batch)")
	}

	var result transcode.BatchResult
	if batch {
		var err error
		result, err = transcode.RenderBatch(cfg, os.Stdout)
		if err != nil {
			return err
		}
	} else {
		result = transcode.RenderPaths(args, cfg, os.Stdout)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed rendering", result.Failed)
	}
	return nil
}

// renderConfig builds the render configuration from flags, falling back
// to config-file values and then defaults.
func renderConfig(cmd *cobra.Command) types.RenderConfig {
	documentsDir, _ := cmd.Flags().GetString("documents-dir")
	if documentsDir == "" {
		documentsDir = viper.GetString("render.documents_dir")
	}
	if documentsDir == "" {
		documentsDir = "documents"
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("render.output_dir")
	}
	if outputDir == "" {
		outputDir = "output/tex"
	}

	defaultPackage, _ := cmd.Flags().GetString("package")
	if defaultPackage == "" {
		defaultPackage = viper.GetString("render.default_package")
	}

	return types.RenderConfig{
		DocumentsDir:   documentsDir,
		OutputDir:      outputDir,
		DefaultPackage: defaultPackage,
	}
}

func init() {
	renderCmd.Flags().String("documents-dir", "", "directory of exported documents (default: documents)")
	renderCmd.Flags().String("output-dir", "", "directory for .tex output (default: output/tex)")
	renderCmd.Flags().String("package", "", "citation package for lists without a declaration: gb4e or linguex")
	renderCmd.Flags().Bool("batch", false, "render all documents in documents-dir")

	rootCmd.AddCommand(renderCmd)
}
