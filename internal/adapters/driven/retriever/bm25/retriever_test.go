package bm25

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

func testCorpus() []domain.Document {
	return []domain.Document{
		{
			ID:      "ctx-kobe",
			Title:   "Kobe Bryant",
			Content: "Kobe Bryant spent his entire career with the Los Angeles Lakers and scored 81 points in a single game.",
		},
		{
			ID:      "ctx-jordan",
			Title:   "Michael Jordan",
			Content: "Michael Jordan won six championships with the Chicago Bulls.",
		},
		{
			ID:      "ctx-naismith",
			Title:   "James Naismith",
			Content: "James Naismith invented basketball in 1891 at a YMCA training school.",
		},
	}
}

func TestRetriever_Retrieve_RanksRelevantFirst(t *testing.T) {
	r := New()
	ctx := context.Background()
	require.NoError(t, r.Index(ctx, testCorpus()))

	results, err := r.Retrieve(ctx, "Kobe Bryant points", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "ctx-kobe", results[0].Document.ID)
	assert.Greater(t, results[0].Score, 0.0)
}

func TestRetriever_Retrieve_TopKLimit(t *testing.T) {
	r := New()
	ctx := context.Background()
	require.NoError(t, r.Index(ctx, testCorpus()))

	results, err := r.Retrieve(ctx, "basketball", 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 1)
}

func TestRetriever_Retrieve_EmptyCorpus(t *testing.T) {
	r := New()

	results, err := r.Retrieve(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetriever_Retrieve_DefaultTopK(t *testing.T) {
	r := New()
	ctx := context.Background()
	require.NoError(t, r.Index(ctx, testCorpus()))

	// Zero topK falls back to the configured default.
	results, err := r.Retrieve(ctx, "basketball championships", 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), domain.DefaultRetrieverTopK)
}

func TestRetriever_Index_Incremental(t *testing.T) {
	r := New()
	ctx := context.Background()

	docs := testCorpus()
	require.NoError(t, r.Index(ctx, docs[:1]))
	require.NoError(t, r.Index(ctx, docs[1:]))

	assert.Equal(t, 3, r.Count())

	results, err := r.Retrieve(ctx, "Chicago Bulls", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "ctx-jordan", results[0].Document.ID)
}

func TestRetriever_Reset(t *testing.T) {
	r := New()
	ctx := context.Background()
	require.NoError(t, r.Index(ctx, testCorpus()))
	require.Equal(t, 3, r.Count())

	r.Reset()

	assert.Zero(t, r.Count())
	results, err := r.Retrieve(ctx, "Kobe", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetriever_Retrieve_Cancelled(t *testing.T) {
	r := New()
	require.NoError(t, r.Index(context.Background(), testCorpus()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Retrieve(ctx, "Kobe", 10)
	assert.Error(t, err)
}

func TestRenderMarkdown(t *testing.T) {
	doc := domain.Document{Title: "Kobe Bryant", Content: "Scored 81 points."}
	assert.Equal(t, "# Kobe Bryant\n\nScored 81 points.", renderMarkdown(doc))

	untitled := domain.Document{Content: "Scored 81 points."}
	assert.Equal(t, "Scored 81 points.", renderMarkdown(untitled))
}
