// Package actionlogrepo persists the workflow audit trail. Every workflow
// action appends one row; the history panel reads them back through the
// query side.
package actionlogrepo

import (
	"time"

	"console/internal/core/ports"
)

// ActionEntryDTO is the database row for one recorded workflow action.
type ActionEntryDTO struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	OrderID    int64  `gorm:"index;not null"`
	Action     string `gorm:"type:varchar(32);not null"`
	Outcome    string `gorm:"type:varchar(16);not null"`
	Message    string
	OccurredAt time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default naming to use "action_log".
func (ActionEntryDTO) TableName() string {
	return "action_log"
}

func fromEntry(entry ports.ActionEntry) ActionEntryDTO {
	return ActionEntryDTO{
		OrderID:    entry.OrderID,
		Action:     entry.Action,
		Outcome:    entry.Outcome,
		Message:    entry.Message,
		OccurredAt: entry.OccurredAt,
	}
}
