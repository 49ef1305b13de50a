package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/pkg/db/models"
	pkgerrors "github.com/Seb-Replay/gestion-production/pkg/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.StockLocation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return conn
}

func TestCollectionCRUD(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection[models.StockLocation](newTestDB(t))

	created, err := coll.Insert(ctx, &models.StockLocation{Name: "Atelier A", Description: "rayonnage 1"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected id to be assigned on insert")
	}

	got, err := coll.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Atelier A" {
		t.Fatalf("expected name to round-trip, got %q", got.Name)
	}

	got.Description = "rayonnage 2"
	if _, err := coll.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	reloaded, err := coll.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if reloaded.Description != "rayonnage 2" {
		t.Fatalf("expected updated description, got %q", reloaded.Description)
	}

	if err := coll.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := coll.Get(ctx, created.ID); err == nil {
		t.Fatalf("expected not found after delete")
	}
}

func TestCollectionListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	coll := NewCollection[models.StockLocation](db)

	older := models.StockLocation{Name: "ancien"}
	newer := models.StockLocation{Name: "recent"}
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer.CreatedAt = time.Now()
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("seed older: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("seed newer: %v", err)
	}

	rows, err := coll.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "recent" {
		t.Fatalf("expected newest row first, got %q", rows[0].Name)
	}

	count, err := coll.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
}

func TestCollectionNotFoundCodes(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection[models.StockLocation](newTestDB(t))

	_, err := coll.Get(ctx, uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code on get, got %v", err)
	}

	err = coll.Delete(ctx, uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code on delete, got %v", err)
	}
}
