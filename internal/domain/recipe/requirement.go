// Package recipe contains the domain model for recipe data as supplied
// by external recipe sources.
package recipe

import "strings"

// IngredientRequirement is one line of a recipe's ingredient list.
//
// IngredientID is the identifier assigned by the recipe source and is NOT
// unique across lines: a recipe using the same ingredient twice (divided
// use) repeats the ID, and each occurrence counts as a separate requirement.
type IngredientRequirement struct {
	IngredientID string
	DisplayName  string
	OriginalText string

	// Amount needed as written; zero means "amount unknown" and is
	// excluded from sufficiency checks but still matched for availability.
	Quantity float64
	Unit     string
}

// MatchText returns the raw annotated text for fallback matching.
// Sources may omit it, in which case the display name is used.
func (r IngredientRequirement) MatchText() string {
	if strings.TrimSpace(r.OriginalText) == "" {
		return r.DisplayName
	}
	return r.OriginalText
}

// HasKnownQuantity reports whether the requirement carries a usable amount
func (r IngredientRequirement) HasKnownQuantity() bool {
	return r.Quantity > 0
}
