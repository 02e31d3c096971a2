// Package sessionrepo persists the console session. The console holds at most
// one active session; saving replaces whatever was stored before, and teardown
// is a single delete.
package sessionrepo

import (
	"time"

	"console/internal/core/ports"
)

// SessionDTO is the database row for the active console session.
type SessionDTO struct {
	Token     string `gorm:"primaryKey;type:varchar(64)"`
	Role      string `gorm:"type:varchar(32);not null"`
	UserName  string `gorm:"type:varchar(128);not null"`
	StartedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromSession(session ports.Session) SessionDTO {
	return SessionDTO{
		Token:     session.Token,
		Role:      session.Role,
		UserName:  session.UserName,
		StartedAt: session.StartedAt,
		ExpiresAt: session.ExpiresAt,
	}
}

func toSession(dto SessionDTO) ports.Session {
	return ports.Session{
		Token:     dto.Token,
		Role:      dto.Role,
		UserName:  dto.UserName,
		StartedAt: dto.StartedAt,
		ExpiresAt: dto.ExpiresAt,
	}
}
