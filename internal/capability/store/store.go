package store

import (
	"context"
	"errors"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Capabilities() Capabilities

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn returns
	// an error and committing otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail is used during login and token validation.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Capabilities interface {
	// ListCapabilities returns all capabilities ordered by name, rosters
	// included.
	ListCapabilities(ctx context.Context) ([]domain.Capability, error)

	// GetCapabilityByName fetches one capability with its roster.
	GetCapabilityByName(ctx context.Context, name string) (domain.Capability, error)

	// CreateCapability inserts a capability and its initial roster.
	CreateCapability(ctx context.Context, c domain.Capability) error

	// AddConsultant appends email to the capability's roster.
	// Returns ErrAlreadyExists when the email is already registered.
	AddConsultant(ctx context.Context, capabilityID, email string) error

	// RemoveConsultant removes email from the capability's roster.
	// Returns ErrNotFound when the email is not registered.
	RemoveConsultant(ctx context.Context, capabilityID, email string) error

	// IsEmpty returns true if there are no capabilities.
	IsEmpty(ctx context.Context) (bool, error)
}
