// Package persistence implements the storage adapters using GORM.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/integration/persistence/model"
)

// SnapshotRepository implements adapter.SnapshotStore over the slots table.
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new SnapshotRepository instance.
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load reads the slot payload. A missing slot returns (nil, nil).
func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var slot model.SlotModel
	err := r.db.WithContext(ctx).First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %s: %w", key, err)
	}
	return slot.Data, nil
}

// Save upserts the slot payload.
func (r *SnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	slot := model.SlotModel{Key: key, Data: data}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}

// Ensure implementation satisfies the interface.
var _ adapter.SnapshotStore = (*SnapshotRepository)(nil)
