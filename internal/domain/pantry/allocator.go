package pantry

import (
	"fmt"
	"math"

	"github.com/alchemorsel/pantry/internal/domain/measure"
)

// quantityEpsilon absorbs float error from round-trip unit conversion
const quantityEpsilon = 1e-9

// Allocator turns a usage plan into concrete per-lot draws, drawing from
// the soonest-to-expire stock first.
type Allocator struct {
	converter *measure.Converter
}

// NewAllocator creates an allocator using the given unit converter
func NewAllocator(converter *measure.Converter) *Allocator {
	return &Allocator{converter: converter}
}

// Allocate greedily draws the plan's selected amount from its candidate
// lots in order. Lots whose unit cannot be converted to the selected unit
// are excluded with a note rather than failing the whole allocation, and a
// plan that exceeds total availability yields a partial result with the
// unmet remainder reported. Stock is never invented to cover a shortfall.
func (a *Allocator) Allocate(plan UsagePlan) AllocationResult {
	unit := plan.SelectedUnit
	if unit == "" {
		unit = plan.Requirement.Unit
	}

	result := AllocationResult{}
	remaining := plan.SelectedAmount

	for _, lot := range plan.CandidateLots {
		if remaining <= quantityEpsilon {
			remaining = 0
			break
		}

		available, err := a.converter.Convert(lot.Quantity(), lot.Unit(), unit)
		if err != nil {
			result.Excluded = append(result.Excluded, ExcludedLot{
				LotID:  lot.ID(),
				Reason: fmt.Sprintf("incompatible unit: cannot convert %s to %s", lot.Unit(), unit),
			})
			continue
		}

		draw := math.Min(available, remaining)
		if draw <= 0 {
			continue
		}

		// Express the draw in the lot's own unit for the ledger.
		lotDraw, err := a.converter.Convert(draw, unit, lot.Unit())
		if err != nil {
			result.Excluded = append(result.Excluded, ExcludedLot{
				LotID:  lot.ID(),
				Reason: fmt.Sprintf("incompatible unit: cannot convert %s to %s", unit, lot.Unit()),
			})
			continue
		}
		// The round trip can land a few ulps above the lot's stock.
		if lotDraw > lot.Quantity() {
			lotDraw = lot.Quantity()
		}

		result.Deductions = append(result.Deductions, Deduction{
			LotID:  lot.ID(),
			Amount: lotDraw,
		})
		remaining -= draw
	}

	if remaining > quantityEpsilon {
		result.Unmet = remaining
	}

	return result
}
