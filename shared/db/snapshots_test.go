package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := NewDB(filepath.Join(t.TempDir(), "placement-test.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { _ = Close(database) })
	return database
}

func TestLatestWithoutSnapshots(t *testing.T) {
	store := NewSnapshotStore(newTestDB(t))

	if _, err := store.Latest(context.Background()); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestSaveAndLoadLatestSnapshot(t *testing.T) {
	store := NewSnapshotStore(newTestDB(t))
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	older := &models.DatasetSnapshot{
		FileName:  "2023.csv",
		Rows:      3,
		CreatedAt: base.Add(-time.Hour),
		Counts: []models.StatusCount{
			{Status: "Placed", Count: 2},
			{Status: "Not Placed", Count: 1},
		},
	}
	if err := store.Save(ctx, older); err != nil {
		t.Fatalf("Save older: %v", err)
	}
	if older.ID == uuid.Nil {
		t.Fatalf("expected Save to assign an ID")
	}

	newer := &models.DatasetSnapshot{
		FileName:  "2024.csv",
		Rows:      6,
		HasBranch: true,
		CreatedAt: base,
		Counts: []models.StatusCount{
			{Branch: "CSE", Status: "Placed", Count: 3},
			{Branch: "IT", Status: "Placed", Count: 1},
			{Branch: "IT", Status: "Not Placed", Count: 2},
		},
	}
	if err := store.Save(ctx, newer); err != nil {
		t.Fatalf("Save newer: %v", err)
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != newer.ID || latest.FileName != "2024.csv" {
		t.Fatalf("expected newest snapshot, got %+v", latest)
	}
	if !latest.HasBranch || latest.Rows != 6 {
		t.Fatalf("unexpected snapshot fields: %+v", latest)
	}
	if len(latest.Counts) != 3 {
		t.Fatalf("expected 3 counts, got %d", len(latest.Counts))
	}
	totals := latest.StatusTotals()
	if totals["Placed"] != 4 || totals["Not Placed"] != 2 {
		t.Fatalf("unexpected totals: %v", totals)
	}
}
