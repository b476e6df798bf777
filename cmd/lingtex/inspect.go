// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lingtex/internal/catalog"
	"github.com/pdiddy/lingtex/internal/doctree"
	"github.com/pdiddy/lingtex/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show the annotations extracted from a document",
	Long: `Inspect loads an exported document and prints, for every example
paragraph, the governing citation package and the judgment, label key,
and override tag the extractor found. Useful for checking what render
would emit without writing output.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	id, root, err := doctree.Load(args[0])
	if err != nil {
		return err
	}

	pkg, _ := cmd.Flags().GetString("package")
	doctree.ApplyDefaultPackage(root, types.ParseConvention(pkg))

	records := catalog.Collect(id, root)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PACKAGE\tKEY\tJUDGMENT\tTAG\tTEXT")
	for _, r := range records {
		pkgName := string(r.Package)
		if pkgName == "" {
			pkgName = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", pkgName, r.Key, r.Judgment, r.Tag, r.Text)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%s: %d labeled example(s)\n", id, len(records))
	return nil
}

func init() {
	inspectCmd.Flags().String("package", "", "citation package for lists without a declaration")

	rootCmd.AddCommand(inspectCmd)
}
