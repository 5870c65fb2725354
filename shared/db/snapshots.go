package db

import (
	"context"
	"errors"
	"time"

	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNoSnapshot is returned when no dataset has been uploaded yet.
var ErrNoSnapshot = errors.New("no dataset snapshot")

type SnapshotStore interface {
	Save(ctx context.Context, snapshot *models.DatasetSnapshot) error
	Latest(ctx context.Context) (*models.DatasetSnapshot, error)
}

type snapshotStore struct {
	db *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) SnapshotStore {
	return &snapshotStore{db: db}
}

// Save inserts the snapshot and its counts in one transaction.
func (s *snapshotStore) Save(ctx context.Context, snapshot *models.DatasetSnapshot) error {
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}
	for i := range snapshot.Counts {
		snapshot.Counts[i].SnapshotID = snapshot.ID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(snapshot).Error
	})
}

func (s *snapshotStore) Latest(ctx context.Context) (*models.DatasetSnapshot, error) {
	var snapshot models.DatasetSnapshot
	err := s.db.WithContext(ctx).
		Preload("Counts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("branch, status")
		}).
		Order("created_at DESC").
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
