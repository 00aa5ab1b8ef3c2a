package repository

import (
	"context"

	"github.com/vendorconnect/api/internal/domain/entity"
)

// SessionRepository persists the single active session. Implementations
// map the session onto the isLoggedIn/userType/userPhone keys; a partial
// key set decodes as an unauthenticated session.
type SessionRepository interface {
	// Get returns the stored session, or nil when no session is stored.
	Get(ctx context.Context) (*entity.Session, error)
	// Save stores the session, replacing any previous one.
	Save(ctx context.Context, s *entity.Session) error
	// Clear removes all session keys. From the single actor's point of view
	// the removal is atomic.
	Clear(ctx context.Context) error
}
