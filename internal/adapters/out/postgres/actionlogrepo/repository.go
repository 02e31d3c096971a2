package actionlogrepo

import (
	"context"

	"console/internal/core/ports"

	"gorm.io/gorm"
)

// GormActionLogRepository implements ports.ActionLog using GORM.
type GormActionLogRepository struct {
	db *gorm.DB
}

// NewGormActionLogRepository creates a new GORM action log repository.
func NewGormActionLogRepository(db *gorm.DB) *GormActionLogRepository {
	return &GormActionLogRepository{db: db}
}

// Append inserts one audit row.
func (r *GormActionLogRepository) Append(ctx context.Context, entry ports.ActionEntry) error {
	dto := fromEntry(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
