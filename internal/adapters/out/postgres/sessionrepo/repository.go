package sessionrepo

import (
	"context"
	"errors"
	"time"

	"console/internal/core/ports"
	"console/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements ports.SessionStore using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Save replaces the active session. The store keeps at most one row, so the
// previous session is deleted in the same transaction.
func (r *GormSessionRepository) Save(ctx context.Context, session ports.Session) error {
	if session.Token == "" {
		return errs.NewValueIsRequiredError("session token")
	}

	dto := fromSession(session)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&SessionDTO{}).Error; err != nil {
			return err
		}
		return tx.Create(&dto).Error
	})
}

// Current returns the active session.
func (r *GormSessionRepository) Current(ctx context.Context) (ports.Session, error) {
	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Session{}, errs.NewObjectNotFoundError("session", "current")
		}
		return ports.Session{}, err
	}

	return toSession(dto), nil
}

// Clear removes the active session. Clearing an empty store is a no-op.
func (r *GormSessionRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&SessionDTO{}).Error
}

// PurgeExpired removes sessions whose expiry lies before now.
func (r *GormSessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&SessionDTO{})
	return result.RowsAffected, result.Error
}
