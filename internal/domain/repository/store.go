package repository

import "context"

// Typed keys of the persisted state. The names mirror the browser-profile
// layout the demo front end used, so a dump of either store reads the same.
const (
	KeyIsLoggedIn   = "isLoggedIn"
	KeyUserType     = "userType"
	KeyUserPhone    = "userPhone"
	KeyBusinessType = "businessType"
	KeyProducts     = "supplierProducts"
)

// Store is the narrow key-value port every backend implements (in-memory
// map, bbolt file, PostgreSQL table). Values are opaque bytes; callers own
// serialization. No expiry, no migration, no schema versioning.
type Store interface {
	// Get returns the value and true, or nil and false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op when the key is absent.
	Delete(ctx context.Context, key string) error
	Close() error
}
