package ports

import (
	"context"
	"time"
)

// Session is the explicit session context read once at session start and
// passed to the HTTP client. It replaces the scattered key-value reads the
// original console performed on every request.
type Session struct {
	Token     string
	Role      string
	UserName  string
	StartedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session has passed its expiry.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// SessionStore persists the single active console session. Teardown is one
// explicit Clear call, not a scattered set of key removals.
type SessionStore interface {
	// Save replaces the active session.
	Save(ctx context.Context, session Session) error

	// Current returns the active session.
	// Returns an ObjectNotFoundError when no session exists.
	Current(ctx context.Context) (Session, error)

	// Clear removes the active session. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error

	// PurgeExpired removes sessions whose expiry lies before now and reports
	// how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
