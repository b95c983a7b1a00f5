package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.documents)
}

func TestDocumentStore_Put_Success(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	docs := []domain.Document{
		{
			ID:      "ctx-1",
			Title:   "Kobe Bryant",
			Content: "Kobe Bryant was an American professional basketball player.",
			URL:     "https://en.wikipedia.org/wiki/Kobe_Bryant",
			Source:  "QASports",
		},
	}

	err := store.Put(ctx, docs)
	require.NoError(t, err)

	saved, err := store.Get(ctx, "ctx-1")
	require.NoError(t, err)
	assert.Equal(t, "ctx-1", saved.ID)
	assert.Equal(t, "Kobe Bryant", saved.Title)
	assert.Equal(t, "QASports", saved.Source)
}

func TestDocumentStore_Put_Overwrite(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	err := store.Put(ctx, []domain.Document{{ID: "ctx-1", Title: "Original"}})
	require.NoError(t, err)
	err = store.Put(ctx, []domain.Document{{ID: "ctx-1", Title: "Updated"}})
	require.NoError(t, err)

	saved, err := store.Get(ctx, "ctx-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated", saved.Title)

	// Overwriting must not inflate the count.
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_List_InsertionOrder(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var docs []domain.Document
	for i := 0; i < 5; i++ {
		docs = append(docs, domain.Document{ID: fmt.Sprintf("ctx-%d", i)})
	}
	require.NoError(t, store.Put(ctx, docs))

	listed, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, listed, 5)
	for i, doc := range listed {
		assert.Equal(t, fmt.Sprintf("ctx-%d", i), doc.ID)
	}
}

func TestDocumentStore_List_Pagination(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var docs []domain.Document
	for i := 0; i < 10; i++ {
		docs = append(docs, domain.Document{ID: fmt.Sprintf("ctx-%d", i)})
	}
	require.NoError(t, store.Put(ctx, docs))

	tests := []struct {
		name     string
		limit    int
		offset   int
		expected []string
	}{
		{"First page", 3, 0, []string{"ctx-0", "ctx-1", "ctx-2"}},
		{"Second page", 3, 3, []string{"ctx-3", "ctx-4", "ctx-5"}},
		{"Past the end", 3, 9, []string{"ctx-9"}},
		{"Offset beyond corpus", 3, 20, nil},
		{"Negative offset treated as zero", 2, -1, []string{"ctx-0", "ctx-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listed, err := store.List(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			require.Len(t, listed, len(tt.expected))
			for i, id := range tt.expected {
				assert.Equal(t, id, listed[i].ID)
			}
		})
	}
}

func TestDocumentStore_Clear(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, []domain.Document{{ID: "ctx-1"}, {ID: "ctx-2"}}))
	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	listed, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Put(ctx, []domain.Document{{ID: fmt.Sprintf("ctx-%d", n)}})
			_, _ = store.Count(ctx)
			_, _ = store.List(ctx, 5, 0)
		}(i)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}
