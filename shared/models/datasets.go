package models

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// DatasetSnapshot
// ===============================
// Aggregate view of one uploaded dataset. Rows themselves are never stored.
type DatasetSnapshot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileName  string    `gorm:"type:varchar(255)"`
	Rows      int       `gorm:"not null"`
	HasBranch bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"index"`

	Counts []StatusCount `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE"`
}

// ===============================
// StatusCount
// ===============================
// Branch is empty when the dataset had no Branch column.
type StatusCount struct {
	ID         uint      `gorm:"primaryKey"`
	SnapshotID uuid.UUID `gorm:"type:uuid;not null;index"`
	Branch     string    `gorm:"type:varchar(64)"`
	Status     string    `gorm:"type:varchar(64);not null"`
	Count      int       `gorm:"not null"`
}

// StatusTotals sums counts per status across branches.
func (s DatasetSnapshot) StatusTotals() map[string]int {
	totals := make(map[string]int)
	for _, c := range s.Counts {
		totals[c.Status] += c.Count
	}
	return totals
}
