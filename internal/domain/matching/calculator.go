package matching

import (
	"sort"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/alchemorsel/pantry/internal/domain/recipe"
)

// Availability aggregates one recipe evaluation against a pantry.
//
// The counts are of ingredient INSTANCES, not unique ingredient IDs: a
// recipe listing the same ingredient ID twice contributes two to
// TotalCount. AvailableCount + MissingCount == TotalCount always holds.
type Availability struct {
	AvailableCount int `json:"available_count"`
	MissingCount   int `json:"missing_count"`
	TotalCount     int `json:"total_count"`

	// ID sets; an ID repeated across instances with different match
	// outcomes can appear in both.
	AvailableIDs []string `json:"available_ids"`
	MissingIDs   []string `json:"missing_ids"`
}

// Calculate runs the matcher over every requirement instance and
// accumulates instance counts and ID sets.
func (m *Matcher) Calculate(requirements []recipe.IngredientRequirement, lots []*pantry.Lot) Availability {
	availableIDs := make(map[string]struct{})
	missingIDs := make(map[string]struct{})

	result := Availability{TotalCount: len(requirements)}
	for _, req := range requirements {
		if m.IsAvailable(req, lots) {
			result.AvailableCount++
			availableIDs[req.IngredientID] = struct{}{}
		} else {
			result.MissingCount++
			missingIDs[req.IngredientID] = struct{}{}
		}
	}

	result.AvailableIDs = sortedKeys(availableIDs)
	result.MissingIDs = sortedKeys(missingIDs)
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
