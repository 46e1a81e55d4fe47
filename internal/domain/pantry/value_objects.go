package pantry

import (
	"sort"

	"github.com/alchemorsel/pantry/internal/domain/recipe"
	"github.com/google/uuid"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Deduction instructs the ledger to subtract an amount from one lot,
// expressed in the lot's own unit. Deductions are ephemeral: computed per
// commit, never persisted.
type Deduction struct {
	LotID  uuid.UUID
	Amount float64
}

// ExcludedLot records why a candidate lot could not take part in an
// allocation (for example an unsupported cross-family unit conversion).
type ExcludedLot struct {
	LotID  uuid.UUID
	Reason string
}

// UsagePlan captures how much of one recipe ingredient the user intends to
// draw from the pantry, and from which candidate lots.
type UsagePlan struct {
	Requirement recipe.IngredientRequirement

	// CandidateLots must be sorted earliest-expiration-first; lots without
	// an expiration date follow all dated lots in discovery order.
	CandidateLots []*Lot

	// SelectedAmount is the amount the user chose to use, in SelectedUnit.
	// Defaults to the requirement's own quantity and unit.
	SelectedAmount float64
	SelectedUnit   string
}

// TotalCandidateQuantity sums candidate stock held in the given unit.
// Lots in other units are skipped; the allocator handles conversion.
func (p UsagePlan) TotalCandidateQuantity(unit string) float64 {
	var total float64
	for _, lot := range p.CandidateLots {
		if lot.Unit() == unit {
			total += lot.Quantity()
		}
	}
	return total
}

// AllocationResult is the outcome of turning a usage plan into concrete
// per-lot draws. A non-zero Unmet remainder is not an error: the caller
// decides whether to proceed with partial use.
type AllocationResult struct {
	Deductions []Deduction
	Unmet      float64
	Excluded   []ExcludedLot
}

// Satisfied reports whether the full selected amount was covered
func (r AllocationResult) Satisfied() bool {
	return r.Unmet == 0
}

// SortLotsByExpiry orders lots earliest-expiration-first in place.
// Lots without an expiration date sort after all dated lots, keeping
// their original discovery order among themselves.
func SortLotsByExpiry(lots []*Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		a, b := lots[i].ExpiresAt(), lots[j].ExpiresAt()
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}
