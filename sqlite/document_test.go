package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/akraszewski/webdoc"
	"github.com/akraszewski/webdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &webdoc.Document{
			CollectionID: collection.ID,
			SourceURL:    "https://example.com/docs/page1",
			Title:        "Page 1",
			Content:      "# Page 1\n\nThis is the content.",
		}

		err := svc.CreateDocument(ctx, doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.False(t, doc.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("identical content produces identical hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		a := &webdoc.Document{CollectionID: collection.ID, SourceURL: "https://example.com/a", Content: "same"}
		b := &webdoc.Document{CollectionID: collection.ID, SourceURL: "https://example.com/b", Content: "same"}
		c := &webdoc.Document{CollectionID: collection.ID, SourceURL: "https://example.com/c", Content: "different"}

		require.NoError(t, svc.CreateDocument(ctx, a))
		require.NoError(t, svc.CreateDocument(ctx, b))
		require.NoError(t, svc.CreateDocument(ctx, c))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &webdoc.Document{} // missing required fields

		err := svc.CreateDocument(ctx, doc)
		require.Error(t, err)
		assert.Equal(t, webdoc.EINVALID, webdoc.ErrorCode(err))
	})

	t.Run("stores position field", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &webdoc.Document{
			CollectionID: collection.ID,
			SourceURL:    "https://example.com/docs/page1",
			Position:     42,
		}

		err := svc.CreateDocument(ctx, doc)
		require.NoError(t, err)

		found, err := svc.FindDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, 42, found.Position)
	})

	t.Run("rejects document for unknown collection", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &webdoc.Document{
			CollectionID: "no-such-collection",
			SourceURL:    "https://example.com/docs/page1",
		}

		err := svc.CreateDocument(ctx, doc)
		require.Error(t, err, "foreign key constraint should reject orphan documents")
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns documents ordered by position", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		// Create out of order to verify sorting.
		for _, pos := range []int{2, 0, 1} {
			doc := &webdoc.Document{
				CollectionID: collection.ID,
				SourceURL:    fmt.Sprintf("https://example.com/docs/page%d", pos),
				Position:     pos,
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		found, err := svc.FindDocuments(ctx, webdoc.DocumentFilter{CollectionID: &collection.ID})
		require.NoError(t, err)
		require.Len(t, found, 3)
		for i, doc := range found {
			assert.Equal(t, i, doc.Position)
		}
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			doc := &webdoc.Document{
				CollectionID: collection.ID,
				SourceURL:    fmt.Sprintf("https://example.com/docs/page%d", i),
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		url := "https://example.com/docs/page1"
		found, err := svc.FindDocuments(ctx, webdoc.DocumentFilter{SourceURL: &url})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, url, found[0].SourceURL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			doc := &webdoc.Document{
				CollectionID: collection.ID,
				SourceURL:    fmt.Sprintf("https://example.com/docs/page%d", i),
				Position:     i,
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		found, err := svc.FindDocuments(ctx, webdoc.DocumentFilter{
			CollectionID: &collection.ID,
			Limit:        2,
			Offset:       2,
		})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, 2, found[0].Position)
		assert.Equal(t, 3, found[1].Position)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &webdoc.Document{
			CollectionID: collection.ID,
			SourceURL:    "https://example.com/docs/page1",
		}
		require.NoError(t, svc.CreateDocument(ctx, doc))

		require.NoError(t, svc.DeleteDocument(ctx, doc.ID))

		_, err := svc.FindDocumentByID(ctx, doc.ID)
		assert.Equal(t, webdoc.ENOTFOUND, webdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.DeleteDocument(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, webdoc.ENOTFOUND, webdoc.ErrorCode(err))
	})
}

func TestDocumentService_DeleteDocumentsByCollection(t *testing.T) {
	t.Parallel()

	t.Run("removes all documents for the collection", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		collection := createTestCollection(t, db)
		other := createTestCollection(t, db)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			doc := &webdoc.Document{
				CollectionID: collection.ID,
				SourceURL:    fmt.Sprintf("https://example.com/docs/page%d", i),
			}
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}
		kept := &webdoc.Document{CollectionID: other.ID, SourceURL: "https://example.com/other"}
		require.NoError(t, svc.CreateDocument(ctx, kept))

		require.NoError(t, svc.DeleteDocumentsByCollection(ctx, collection.ID))

		found, err := svc.FindDocuments(ctx, webdoc.DocumentFilter{CollectionID: &collection.ID})
		require.NoError(t, err)
		assert.Empty(t, found)

		remaining, err := svc.FindDocuments(ctx, webdoc.DocumentFilter{CollectionID: &other.ID})
		require.NoError(t, err)
		assert.Len(t, remaining, 1, "other collections are untouched")
	})

	t.Run("deleting from empty collection is not an error", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		require.NoError(t, svc.DeleteDocumentsByCollection(context.Background(), "no-such-id"))
	})
}
