// Package measure contains unit-of-measure domain logic: classification of
// quantities into whole-count and continuous families, validation of
// user-entered amounts, and conversion between compatible units.
package measure

import (
	"fmt"
	"math"
	"strings"
)

// QuantityRule describes how a quantity for an item may be adjusted:
// whether fractional amounts are allowed and the stepper increment the UI
// should use.
type QuantityRule struct {
	AllowFractional bool    `json:"allow_fractional"`
	MinValue        float64 `json:"min_value"`
	MaxValue        float64 `json:"max_value"` // zero means unbounded
	Step            float64 `json:"step"`
}

// ValidationError reports a rejected quantity
type ValidationError struct {
	Quantity float64
	Reason   string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid quantity %g: %s", e.Quantity, e.Reason)
}

// Config holds the whole-count lookup tables. The lists are data, not code
// branches, so deployments can extend them without touching control flow.
type Config struct {
	WholeCountUnits []string
	WholeCountItems []string
}

// DefaultConfig returns the built-in whole-count tables
func DefaultConfig() Config {
	return Config{
		WholeCountUnits: []string{
			"each", "piece", "pieces", "pcs", "pc",
			"bottle", "bottles", "can", "cans", "jar", "jars",
			"package", "packages", "pack", "packs", "bag", "bags",
			"box", "boxes", "carton", "cartons", "container", "containers",
			"tube", "tubes", "roll", "rolls", "stick", "sticks",
			"bar", "bars", "block", "blocks", "loaf", "loaves",
			"slice", "slices",
		},
		WholeCountItems: []string{
			"egg", "banana", "apple", "orange", "lemon", "lime",
			"avocado", "onion", "potato", "tomato", "cucumber",
			"zucchini", "eggplant", "bell pepper", "corn cob",
			"bagel", "bun", "tortilla", "pita", "croissant", "muffin",
			"sausage", "chicken breast", "chicken thigh", "drumstick",
			"steak", "pork chop", "fillet",
		},
	}
}

// Canonicalizer classifies item quantities into unit families
type Canonicalizer struct {
	wholeUnits map[string]struct{}
	wholeItems []string
}

// NewCanonicalizer creates a canonicalizer from the given tables
func NewCanonicalizer(cfg Config) *Canonicalizer {
	units := make(map[string]struct{}, len(cfg.WholeCountUnits))
	for _, u := range cfg.WholeCountUnits {
		units[normalizeUnit(u)] = struct{}{}
	}
	return &Canonicalizer{
		wholeUnits: units,
		wholeItems: cfg.WholeCountItems,
	}
}

// Classify returns the quantity rule for an item and unit. The unit decides
// first, regardless of item name; the item-name list is only consulted for
// units outside the whole-count table.
func (c *Canonicalizer) Classify(itemName, unit string) QuantityRule {
	if c.isWholeCount(itemName, unit) {
		return QuantityRule{AllowFractional: false, MinValue: 1, Step: 1}
	}
	return QuantityRule{AllowFractional: true, MinValue: 0.1, Step: 0.1}
}

// ValidateQuantity rejects amounts the quantity rule does not permit
func (c *Canonicalizer) ValidateQuantity(quantity float64, itemName, unit string) error {
	if quantity <= 0 {
		return &ValidationError{Quantity: quantity, Reason: "quantity must be greater than zero"}
	}

	rule := c.Classify(itemName, unit)
	if !rule.AllowFractional && quantity != math.Trunc(quantity) {
		return &ValidationError{
			Quantity: quantity,
			Reason:   fmt.Sprintf("%q is counted in whole units", itemName),
		}
	}
	if quantity < rule.MinValue {
		return &ValidationError{
			Quantity: quantity,
			Reason:   fmt.Sprintf("quantity must be at least %g", rule.MinValue),
		}
	}
	if rule.MaxValue > 0 && quantity > rule.MaxValue {
		return &ValidationError{
			Quantity: quantity,
			Reason:   fmt.Sprintf("quantity must not exceed %g", rule.MaxValue),
		}
	}

	return nil
}

func (c *Canonicalizer) isWholeCount(itemName, unit string) bool {
	if _, ok := c.wholeUnits[normalizeUnit(unit)]; ok {
		return true
	}
	name := strings.ToLower(itemName)
	for _, item := range c.wholeItems {
		if strings.Contains(name, item) {
			return true
		}
	}
	return false
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
