package state

import (
	"context"

	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
)

// SessionRepository maps the Session onto the flat isLoggedIn / userType /
// userPhone / businessType keys, keeping the persisted layout identical to
// the browser profile of the original demo.
type SessionRepository struct {
	store repository.Store
}

// NewSessionRepository builds the repository over a Store.
func NewSessionRepository(store repository.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get reassembles the session from its keys. Any partial or inconsistent
// key set yields an unauthenticated session (nil), never an error: the gate
// treats partial state as logged out.
func (r *SessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	logged, ok, err := r.store.Get(ctx, repository.KeyIsLoggedIn)
	if err != nil {
		return nil, err
	}
	if !ok || string(logged) != "true" {
		return nil, nil
	}
	role, okRole, err := r.store.Get(ctx, repository.KeyUserType)
	if err != nil {
		return nil, err
	}
	phone, okPhone, err := r.store.Get(ctx, repository.KeyUserPhone)
	if err != nil {
		return nil, err
	}
	if !okRole || !okPhone || !entity.ValidRole(string(role)) || len(phone) == 0 {
		return nil, nil
	}
	s := &entity.Session{
		Role:          string(role),
		Phone:         string(phone),
		Authenticated: true,
	}
	if bt, ok, err := r.store.Get(ctx, repository.KeyBusinessType); err != nil {
		return nil, err
	} else if ok {
		s.BusinessType = string(bt)
	}
	return s, nil
}

// Save writes every session key. The flag key goes last so a crash
// mid-save leaves a partial set that still reads as unauthenticated.
func (r *SessionRepository) Save(ctx context.Context, s *entity.Session) error {
	if err := r.store.Set(ctx, repository.KeyUserType, []byte(s.Role)); err != nil {
		return err
	}
	if err := r.store.Set(ctx, repository.KeyUserPhone, []byte(s.Phone)); err != nil {
		return err
	}
	if s.BusinessType != "" {
		if err := r.store.Set(ctx, repository.KeyBusinessType, []byte(s.BusinessType)); err != nil {
			return err
		}
	}
	if !s.Authenticated {
		return r.store.Delete(ctx, repository.KeyIsLoggedIn)
	}
	return r.store.Set(ctx, repository.KeyIsLoggedIn, []byte("true"))
}

// Clear removes all session keys. The flag key goes first, so the session
// reads as logged out even if a later delete fails.
func (r *SessionRepository) Clear(ctx context.Context) error {
	for _, key := range []string{
		repository.KeyIsLoggedIn,
		repository.KeyUserType,
		repository.KeyUserPhone,
		repository.KeyBusinessType,
	} {
		if err := r.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
