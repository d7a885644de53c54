package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/akraszewski/webdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webdoc.CollectionService = (*CollectionService)(nil)

// CollectionService implements webdoc.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates a new collection.
func (s *CollectionService) CreateCollection(ctx context.Context, collection *webdoc.Collection) error {
	if err := collection.Validate(); err != nil {
		return err
	}

	collection.ID = uuid.New().String()
	collection.CreatedAt = time.Now().UTC()
	collection.UpdatedAt = collection.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, source_url, selector, filter, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, collection.ID, collection.Name, collection.SourceURL, collection.Selector, collection.Filter,
		formatTime(collection.CreatedAt), formatTime(collection.UpdatedAt))

	return err
}

// FindCollectionByID retrieves a collection by ID.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*webdoc.Collection, error) {
	var c webdoc.Collection
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_url, selector, filter, created_at, updated_at
		FROM collections
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.SourceURL, &c.Selector, &c.Filter, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, webdoc.Errorf(webdoc.ENOTFOUND, "collection not found")
	}
	if err != nil {
		return nil, err
	}

	if c.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &c, nil
}

// FindCollections retrieves collections matching the filter.
func (s *CollectionService) FindCollections(ctx context.Context, filter webdoc.CollectionFilter) ([]*webdoc.Collection, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_url, selector, filter, created_at, updated_at FROM collections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*webdoc.Collection
	for rows.Next() {
		var c webdoc.Collection
		var createdAt, updatedAt string

		if err := rows.Scan(&c.ID, &c.Name, &c.SourceURL, &c.Selector, &c.Filter, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if c.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		collections = append(collections, &c)
	}

	return collections, rows.Err()
}

// UpdateCollection updates an existing collection.
func (s *CollectionService) UpdateCollection(ctx context.Context, id string, upd webdoc.CollectionUpdate) (*webdoc.Collection, error) {
	collection, err := s.FindCollectionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		collection.Name = *upd.Name
	}
	if upd.SourceURL != nil {
		collection.SourceURL = *upd.SourceURL
	}
	if upd.Selector != nil {
		collection.Selector = *upd.Selector
	}
	if upd.Filter != nil {
		collection.Filter = *upd.Filter
	}

	if err := collection.Validate(); err != nil {
		return nil, err
	}

	collection.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE collections
		SET name = ?, source_url = ?, selector = ?, filter = ?, updated_at = ?
		WHERE id = ?
	`, collection.Name, collection.SourceURL, collection.Selector, collection.Filter,
		formatTime(collection.UpdatedAt), id)

	if err != nil {
		return nil, err
	}

	return collection, nil
}

// DeleteCollection permanently removes a collection and all associated
// documents (documents cascade via foreign key).
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return webdoc.Errorf(webdoc.ENOTFOUND, "collection not found")
	}

	return nil
}
