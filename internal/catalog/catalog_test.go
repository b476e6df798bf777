// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lingtex/pkg/types"
)

// exampleTree builds a document with one gb4e example carrying a label
// and a prose paragraph referencing it.
func exampleTree() *types.Node {
	root := types.NewNode(types.KindDocument)

	list := types.NewNode(types.KindList)
	list.Declaration = &types.Declaration{Package: types.ConventionGb4e}
	item := types.NewNode(types.KindItem)
	item.Tag = "i"
	para := types.NewNode(types.KindParagraph)
	txt := types.NewNode(types.KindText)
	txt.Text = "* This is bad. "
	target := types.NewNode(types.KindTarget)
	target.Key = "s:x"
	para.Append(txt, target)
	item.Append(para)
	list.Append(item)

	prose := types.NewNode(types.KindParagraph)
	proseTxt := types.NewNode(types.KindText)
	proseTxt.Text = `As \ref{s:x} shows, this fails; compare \ref{s:missing}.`
	prose.Append(proseTxt)

	root.Append(list, prose)
	return root
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{CatalogDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCollect(t *testing.T) {
	records := Collect("ch1", exampleTree())
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "ch1", r.Document)
	assert.Equal(t, "s:x", r.Key)
	assert.Equal(t, types.ConventionGb4e, r.Package)
	assert.Equal(t, "*", r.Judgment)
	assert.Equal(t, "i", r.Tag)
	assert.Equal(t, "This is bad.", r.Text)
}

func TestIngestAndLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var out strings.Builder
	count, err := store.Ingest(ctx, "ch1", exampleTree(), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), "indexed ch1 (1 labels)")

	records, err := store.Lookup(ctx, "s:x")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ch1", records[0].Document)
	assert.Equal(t, "*", records[0].Judgment)

	// Re-ingesting replaces rather than duplicates.
	_, err = store.Ingest(ctx, "ch1", exampleTree(), &out)
	require.NoError(t, err)
	records, err = store.Lookup(ctx, "s:x")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var discard strings.Builder
	_, err := store.Ingest(ctx, "ch1", exampleTree(), &discard)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, store.List(ctx, &out))
	assert.Contains(t, out.String(), "ch1\ts:x")
	assert.Contains(t, out.String(), "1 label(s)")
}

func TestCheck(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tree := exampleTree()
	var discard strings.Builder
	_, err := store.Ingest(ctx, "ch1", tree, &discard)
	require.NoError(t, err)

	dangling, err := store.Check(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"s:missing"}, dangling)
}

func TestCheckEmptyCatalog(t *testing.T) {
	store := newTestStore(t)

	dangling, err := store.Check(context.Background(), exampleTree())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s:x", "s:missing"}, dangling)
}
