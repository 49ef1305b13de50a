package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

// Collection provides the shared CRUD surface domain repositories build on.
// Listing is newest-first so freshly created rows land at the top of the
// dashboard tables.
type Collection[T any] struct {
	db *gorm.DB
}

// NewCollection builds a collection tied to the provided GORM DB.
func NewCollection[T any](db *gorm.DB) *Collection[T] {
	return &Collection[T]{db: db}
}

// WithTx returns a collection bound to the provided transaction.
func (c *Collection[T]) WithTx(tx *gorm.DB) *Collection[T] {
	return &Collection[T]{db: tx}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (c *Collection[T]) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return c.db
	}
	return c.db.WithContext(ctx)
}

// List returns all rows ordered by creation time, newest first.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := c.DB(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get loads a single row by ID.
func (c *Collection[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := c.DB(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
		}
		return nil, err
	}
	return &row, nil
}

// Insert creates a new row.
func (c *Collection[T]) Insert(ctx context.Context, row *T) (*T, error) {
	if err := c.DB(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update saves all fields of an existing row.
func (c *Collection[T]) Update(ctx context.Context, row *T) (*T, error) {
	if err := c.DB(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes a row by ID. Deleting an absent row reports not found.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var row T
	res := c.DB(ctx).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
	}
	return nil
}

// Count returns the number of rows in the collection.
func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	var row T
	var n int64
	if err := c.DB(ctx).Model(&row).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
