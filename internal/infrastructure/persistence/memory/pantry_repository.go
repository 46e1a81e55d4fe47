// Package memory provides in-memory repository implementations used in
// tests and single-process demos.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/alchemorsel/pantry/internal/ports/outbound"
	"github.com/google/uuid"
)

// PantryRepository implements an in-memory pantry repository
type PantryRepository struct {
	mu   sync.RWMutex
	lots map[uuid.UUID]*pantry.Lot
	seq  map[uuid.UUID]int // discovery order
	next int
}

// NewPantryRepository creates a new in-memory pantry repository
func NewPantryRepository() outbound.PantryRepository {
	return &PantryRepository{
		lots: make(map[uuid.UUID]*pantry.Lot),
		seq:  make(map[uuid.UUID]int),
	}
}

// Create stores a new lot
func (r *PantryRepository) Create(ctx context.Context, lot *pantry.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lots[lot.ID()] = copyLot(lot)
	r.seq[lot.ID()] = r.next
	r.next++
	return nil
}

// Update replaces a stored lot
func (r *PantryRepository) Update(ctx context.Context, lot *pantry.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[lot.ID()]; !ok {
		return pantry.ErrLotNotFound
	}
	r.lots[lot.ID()] = copyLot(lot)
	return nil
}

// FindByID returns a copy of the stored lot
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[id]
	if !ok {
		return nil, pantry.ErrLotNotFound
	}
	return copyLot(lot), nil
}

// FindStockedByUser returns the user's stocked lots in discovery order
func (r *PantryRepository) FindStockedByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lots []*pantry.Lot
	for _, lot := range r.lots {
		if lot.UserID() == userID && lot.Status() == pantry.LotStatusStocked {
			lots = append(lots, copyLot(lot))
		}
	}
	sort.Slice(lots, func(i, j int) bool {
		return r.seq[lots[i].ID()] < r.seq[lots[j].ID()]
	})
	return lots, nil
}

// FindExpiringBefore returns the user's stocked lots expiring before the
// cutoff, soonest first
func (r *PantryRepository) FindExpiringBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]*pantry.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lots []*pantry.Lot
	for _, lot := range r.lots {
		if lot.UserID() != userID || lot.Status() != pantry.LotStatusStocked {
			continue
		}
		if exp := lot.ExpiresAt(); exp != nil && exp.Before(cutoff) {
			lots = append(lots, copyLot(lot))
		}
	}
	sort.Slice(lots, func(i, j int) bool {
		return lots[i].ExpiresAt().Before(*lots[j].ExpiresAt())
	})
	return lots, nil
}

// DeductLots applies the batch all-or-nothing under a single lock: every
// draw is validated against aggregated amounts before any lot is mutated.
func (r *PantryRepository) DeductLots(ctx context.Context, userID uuid.UUID, deductions []pantry.Deduction) error {
	if len(deductions) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate first; a batch may draw from the same lot more than once.
	totals := make(map[uuid.UUID]float64, len(deductions))
	for _, d := range deductions {
		lot, ok := r.lots[d.LotID]
		if !ok || lot.UserID() != userID {
			return pantry.ErrLotNotFound
		}
		if d.Amount <= 0 {
			return pantry.ErrInvalidDeduction
		}
		totals[d.LotID] += d.Amount
		if totals[d.LotID] > lot.Quantity() {
			return pantry.ErrInsufficientQuantity
		}
	}

	for lotID, amount := range totals {
		if err := r.lots[lotID].Deduct(amount); err != nil {
			return err
		}
	}
	return nil
}

func copyLot(lot *pantry.Lot) *pantry.Lot {
	return pantry.RestoreLot(
		lot.ID(),
		lot.UserID(),
		lot.Version(),
		lot.CanonicalName(),
		lot.Quantity(),
		lot.Unit(),
		lot.ExpiresAt(),
		lot.CreatedAt(),
		lot.UpdatedAt(),
	)
}
