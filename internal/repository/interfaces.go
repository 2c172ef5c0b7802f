package repository

import (
	"context"

	"github.com/abrezinsky/reviewwheel/internal/models"
)

// SessionKey is the storage key of the single session slot
const SessionKey = "roulette_data"

// SessionRepository is the single-slot store for the wheel's SessionRecord
type SessionRepository interface {
	// LoadSession returns nil, nil when no record is stored
	LoadSession(ctx context.Context) (*models.SessionRecord, error)
	SaveSession(ctx context.Context, rec models.SessionRecord) error
	ClearSession(ctx context.Context) error
}

// StorageRepository is raw string slot access
type StorageRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// FullRepository combines all repository interfaces
type FullRepository interface {
	SessionRepository
	StorageRepository
	Ping(ctx context.Context) error
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
