// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists the cross-reference labels discovered in
// exported documents into a SQLite index, so references can be looked up
// and checked across a whole corpus.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/lingtex/internal/doctree"
	"github.com/pdiddy/lingtex/internal/extract"
	"github.com/pdiddy/lingtex/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "lingtex.db"
)

// Store manages the label catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at
// catalogDir/index/lingtex.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CatalogDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			label_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS labels (
			document TEXT NOT NULL REFERENCES documents(id),
			key TEXT NOT NULL,
			package TEXT,
			judgment TEXT,
			tag TEXT,
			text TEXT,
			PRIMARY KEY (document, key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_labels_key ON labels(key)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Collect walks a document tree and returns a record for every paragraph
// carrying a label, together with the governing citation package and the
// enclosing item's tag.
func Collect(docID string, root *types.Node) []types.LabelRecord {
	var records []types.LabelRecord
	doctree.Walk(root, func(n *types.Node) {
		if n.Kind != types.KindParagraph {
			return
		}
		ann := extract.Annotations(inlineText(n))
		if !ann.HasLabel() {
			return
		}
		rec := types.LabelRecord{
			Document: docID,
			Key:      extract.LabelKey(ann.Label),
			Package:  doctree.Convention(n),
			Judgment: ann.Judgment,
			Text:     ann.Text,
		}
		if n.Parent != nil && n.Parent.Kind == types.KindItem {
			rec.Tag = n.Parent.Tag
		}
		records = append(records, rec)
	})
	return records
}

// inlineText renders a paragraph's inline content the way the export
// engine does: text nodes verbatim, targets as label commands.
func inlineText(n *types.Node) string {
	var b strings.Builder
	for _, c := range n.Children {
		switch c.Kind {
		case types.KindText:
			b.WriteString(c.Text)
		case types.KindTarget:
			b.WriteString(`\label{` + c.Key + `}`)
		}
	}
	return b.String()
}

// Ingest replaces the catalog rows for one document with the labels
// found in its tree and reports the count to w.
func (s *Store) Ingest(ctx context.Context, docID string, root *types.Node, w io.Writer) (int, error) {
	records := Collect(docID, root)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM labels WHERE document = ?`, docID); err != nil {
		return 0, fmt.Errorf("clearing document labels: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (id, label_count) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET label_count = excluded.label_count`,
		docID, len(records)); err != nil {
		return 0, fmt.Errorf("recording document: %w", err)
	}

	for _, r := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO labels (document, key, package, judgment, tag, text)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(document, key) DO UPDATE SET
			   package = excluded.package,
			   judgment = excluded.judgment,
			   tag = excluded.tag,
			   text = excluded.text`,
			r.Document, r.Key, string(r.Package), r.Judgment, r.Tag, r.Text); err != nil {
			return 0, fmt.Errorf("inserting label %s: %w", r.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "indexed %s (%d labels)\n", docID, len(records))
	return len(records), nil
}

// List prints the catalog contents to w, capped at the configured
// maximum.
func (s *Store) List(ctx context.Context, w io.Writer) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document, key, package, judgment, tag, text
		 FROM labels ORDER BY document, key LIMIT ?`, s.maxResults)
	if err != nil {
		return fmt.Errorf("querying labels: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var r types.LabelRecord
		var pkg string
		if err := rows.Scan(&r.Document, &r.Key, &pkg, &r.Judgment, &r.Tag, &r.Text); err != nil {
			return fmt.Errorf("scanning label row: %w", err)
		}
		r.Package = types.Convention(pkg)
		line := fmt.Sprintf("%s\t%s", r.Document, r.Key)
		if r.Judgment != "" {
			line += "\t[" + r.Judgment + "]"
		}
		if r.Tag != "" {
			line += "\t(" + r.Tag + ")"
		}
		fmt.Fprintf(w, "%s\t%s\n", line, r.Text)
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating labels: %w", err)
	}
	fmt.Fprintf(w, "\n%d label(s)\n", count)
	return nil
}

// Lookup returns every catalog record for a cross-reference key.
func (s *Store) Lookup(ctx context.Context, key string) ([]types.LabelRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document, key, package, judgment, tag, text
		 FROM labels WHERE key = ? ORDER BY document`, key)
	if err != nil {
		return nil, fmt.Errorf("querying key %s: %w", key, err)
	}
	defer rows.Close()

	var records []types.LabelRecord
	for rows.Next() {
		var r types.LabelRecord
		var pkg string
		if err := rows.Scan(&r.Document, &r.Key, &pkg, &r.Judgment, &r.Tag, &r.Text); err != nil {
			return nil, fmt.Errorf("scanning label row: %w", err)
		}
		r.Package = types.Convention(pkg)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Check returns the cross-reference keys used in a document tree that
// have no entry in the catalog (dangling references).
func (s *Store) Check(ctx context.Context, root *types.Node) ([]string, error) {
	var keys []string
	seen := make(map[string]bool)
	doctree.Walk(root, func(n *types.Node) {
		if n.Kind != types.KindText {
			return
		}
		for _, key := range extract.References(n.Text) {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	})

	var dangling []string
	for _, key := range keys {
		var count int
		if err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM labels WHERE key = ?`, key).Scan(&count); err != nil {
			return nil, fmt.Errorf("checking key %s: %w", key, err)
		}
		if count == 0 {
			dangling = append(dangling, key)
		}
	}
	return dangling, nil
}
