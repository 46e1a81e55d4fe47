// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/google/uuid"
)

// PantryRepository defines the interface for pantry lot persistence.
// The store is treated as a transactional collection keyed by lot ID.
type PantryRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, lot *pantry.Lot) error
	Update(ctx context.Context, lot *pantry.Lot) error
	FindByID(ctx context.Context, id uuid.UUID) (*pantry.Lot, error)

	// Query operations
	FindStockedByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.Lot, error)
	FindExpiringBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]*pantry.Lot, error)

	// DeductLots applies every deduction as a single all-or-nothing
	// transaction: if any lot would go negative, no lot is mutated.
	// This is the single writer for recipe-completion stock changes.
	DeductLots(ctx context.Context, userID uuid.UUID, deductions []pantry.Deduction) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
