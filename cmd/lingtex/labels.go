// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lingtex/internal/catalog"
	"github.com/pdiddy/lingtex/internal/doctree"
	"github.com/pdiddy/lingtex/pkg/types"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Manage the cross-document label catalog",
	Long: `Labels maintains a SQLite catalog of the cross-reference labels found
in exported documents. Use subcommands to index documents, list or look
up labels, or check a document for dangling references.`,
}

// --- store subcommand ---

var labelsStoreCmd = &cobra.Command{
	Use:   "store [documents...]",
	Short: "Index the labels of exported documents into the catalog",
	RunE:  runLabelsStore,
}

func runLabelsStore(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no documents given")
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	failed := 0
	for _, path := range args {
		id, root, err := doctree.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed %s: %v\n", path, err)
			failed++
			continue
		}
		if _, err := store.Ingest(ctx, id, root, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "failed %s: %v\n", id, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d document(s) failed indexing", failed)
	}
	return nil
}

// --- list subcommand ---

var labelsListCmd = &cobra.Command{
	Use:   "list [key]",
	Short: "List catalog labels, or look up a single key",
	RunE:  runLabelsList,
}

func runLabelsList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if len(args) == 0 {
		return store.List(ctx, os.Stdout)
	}

	records, err := store.Lookup(ctx, args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no label %q in catalog", args[0])
	}
	for _, r := range records {
		fmt.Printf("%s\t%s\t%s\n", r.Document, r.Key, r.Text)
	}
	return nil
}

// --- check subcommand ---

var labelsCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Report cross-references with no catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runLabelsCheck,
}

func runLabelsCheck(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	id, root, err := doctree.Load(args[0])
	if err != nil {
		return err
	}

	dangling, err := store.Check(context.Background(), root)
	if err != nil {
		return err
	}
	if len(dangling) == 0 {
		fmt.Printf("%s: all references resolve\n", id)
		return nil
	}
	for _, key := range dangling {
		fmt.Printf("dangling: %s\n", key)
	}
	return fmt.Errorf("%d dangling reference(s)", len(dangling))
}

// catalogConfig builds the catalog configuration from flags and the
// config file.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	if catalogDir == "" {
		catalogDir = viper.GetString("catalog.catalog_dir")
	}
	if catalogDir == "" {
		catalogDir = "catalog"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: maxResults,
	}
}

func init() {
	for _, c := range []*cobra.Command{labelsStoreCmd, labelsListCmd, labelsCheckCmd} {
		c.Flags().String("catalog-dir", "", "base directory for the catalog (default: catalog)")
	}
	labelsListCmd.Flags().Int("max-results", 0, "maximum rows to list (default 50)")

	labelsCmd.AddCommand(labelsStoreCmd, labelsListCmd, labelsCheckCmd)
	rootCmd.AddCommand(labelsCmd)
}
