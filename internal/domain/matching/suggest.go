package matching

import (
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/google/uuid"
)

// Suggestion ranks one pantry lot against a free-text name
type Suggestion struct {
	LotID uuid.UUID `json:"lot_id"`
	Name  string    `json:"name"`
	Score float64   `json:"score"`
}

// Suggest ranks pantry lots by edit-distance similarity to the given name,
// best first, limited to limit entries (or all when limit <= 0). It never
// affects IsAvailable semantics; it exists for "did you mean" surfaces.
func (m *Matcher) Suggest(name string, lots []*pantry.Lot, limit int) []Suggestion {
	normalized := m.normalizer.Normalize(name)
	if normalized == "" || len(lots) == 0 {
		return nil
	}

	suggestions := make([]Suggestion, 0, len(lots))
	for _, lot := range lots {
		lotName := m.normalizer.Normalize(lot.CanonicalName())
		if lotName == "" {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			LotID: lot.ID(),
			Name:  lot.CanonicalName(),
			Score: similarity(normalized, lotName),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// similarity scores two strings 0.0-1.0 using Levenshtein distance:
// 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
