package matching

import (
	"strings"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/alchemorsel/pantry/internal/domain/recipe"
)

// candidate is one normalized ingredient name prepared for the cascade
type candidate struct {
	name     string
	keywords []string
}

// Strategy is one pure match predicate tried against a normalized lot name.
// Strategies are held as an ordered list so they can be added, reordered
// and tested independently.
type Strategy struct {
	Name  string
	Match func(c candidate, lotName string) bool
}

// DefaultStrategies returns the escalating cascade: exact match, lot name
// contains ingredient, ingredient contains lot name, keyword overlap.
//
// The substring strategies can produce false positives for short names
// ("egg" matches inside "eggplant"); a minimum-length guard is a pending
// product decision, so the behavior stands.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name: "exact",
			Match: func(c candidate, lotName string) bool {
				return c.name == lotName
			},
		},
		{
			Name: "lot-contains-ingredient",
			Match: func(c candidate, lotName string) bool {
				return strings.Contains(lotName, c.name)
			},
		},
		{
			Name: "ingredient-contains-lot",
			Match: func(c candidate, lotName string) bool {
				return strings.Contains(c.name, lotName)
			},
		},
		{
			Name: "keyword-overlap",
			Match: func(c candidate, lotName string) bool {
				for _, kw := range c.keywords {
					if strings.Contains(lotName, kw) || strings.Contains(kw, lotName) {
						return true
					}
				}
				return false
			},
		},
	}
}

// Matcher decides whether recipe ingredients are available against a
// pantry. It answers "is there any stock", not "how much": a match gates
// inclusion only, quantity sufficiency is the allocator's concern.
type Matcher struct {
	normalizer *Normalizer
	strategies []Strategy
}

// NewMatcher creates a matcher with the default strategy cascade
func NewMatcher(normalizer *Normalizer) *Matcher {
	return &Matcher{
		normalizer: normalizer,
		strategies: DefaultStrategies(),
	}
}

// IsAvailable reports whether any pantry lot matches the requirement.
// The cascade runs first against the display name, then once more against
// the original text when it differs (the display name may be over-trimmed).
// Empty pantries and empty ingredient names are simply unavailable.
func (m *Matcher) IsAvailable(req recipe.IngredientRequirement, lots []*pantry.Lot) bool {
	if len(lots) == 0 {
		return false
	}

	for _, c := range m.candidates(req) {
		for _, strategy := range m.strategies {
			for _, lot := range lots {
				lotName := m.normalizer.Normalize(lot.CanonicalName())
				if lotName == "" {
					continue
				}
				if strategy.Match(c, lotName) {
					return true
				}
			}
		}
	}

	return false
}

// MatchingLots returns every lot the requirement matches by any strategy,
// in pantry discovery order. Used to build allocation candidate lists.
func (m *Matcher) MatchingLots(req recipe.IngredientRequirement, lots []*pantry.Lot) []*pantry.Lot {
	candidates := m.candidates(req)
	if len(candidates) == 0 {
		return nil
	}

	var matched []*pantry.Lot
	for _, lot := range lots {
		lotName := m.normalizer.Normalize(lot.CanonicalName())
		if lotName == "" {
			continue
		}
		if m.lotMatches(candidates, lotName) {
			matched = append(matched, lot)
		}
	}
	return matched
}

func (m *Matcher) lotMatches(candidates []candidate, lotName string) bool {
	for _, c := range candidates {
		for _, strategy := range m.strategies {
			if strategy.Match(c, lotName) {
				return true
			}
		}
	}
	return false
}

func (m *Matcher) candidates(req recipe.IngredientRequirement) []candidate {
	var out []candidate

	if name := m.normalizer.Normalize(req.DisplayName); name != "" {
		out = append(out, candidate{name: name, keywords: m.normalizer.Keywords(req.DisplayName)})
	}

	if req.MatchText() != req.DisplayName {
		if name := m.normalizer.Normalize(req.MatchText()); name != "" {
			out = append(out, candidate{name: name, keywords: m.normalizer.Keywords(req.MatchText())})
		}
	}

	return out
}
