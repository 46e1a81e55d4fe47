// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/alchemorsel/pantry/internal/domain/measure"
	"github.com/google/uuid"
)

// IngredientInput is one recipe ingredient line as supplied by a recipe
// source. IngredientID may repeat across lines; each line is a separate
// instance.
type IngredientInput struct {
	IngredientID string  `json:"ingredient_id"`
	DisplayName  string  `json:"display_name" validate:"required"`
	OriginalText string  `json:"original_text"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit"`
}

// EvaluateAvailabilityCommand asks which of a recipe's ingredient
// instances are covered by the user's pantry.
type EvaluateAvailabilityCommand struct {
	UserID      uuid.UUID
	RecipeID    string // opaque; used for result caching when present
	Ingredients []IngredientInput
}

// AvailabilityDTO mirrors matching.Availability for the API edge
type AvailabilityDTO struct {
	AvailableCount int      `json:"available_count"`
	MissingCount   int      `json:"missing_count"`
	TotalCount     int      `json:"total_count"`
	AvailableIDs   []string `json:"available_ids"`
	MissingIDs     []string `json:"missing_ids"`
}

// ClassifyQuantityCommand asks for the stepper rule of an item and unit
type ClassifyQuantityCommand struct {
	ItemName string
	Unit     string
}

// ValidateQuantityCommand asks whether a chosen amount is acceptable
type ValidateQuantityCommand struct {
	Quantity float64
	ItemName string
	Unit     string
}

// FormatInputCommand asks for a sanitized rendition of free-text entry
type FormatInputCommand struct {
	Raw      string
	ItemName string
	Unit     string
}

// BuildUsagePlansCommand prepares per-ingredient usage plans before commit
type BuildUsagePlansCommand struct {
	UserID      uuid.UUID
	Ingredients []IngredientInput
}

// CandidateLotDTO is one matched lot, in expiry order
type CandidateLotDTO struct {
	LotID     uuid.UUID  `json:"lot_id"`
	Name      string     `json:"name"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `json:"unit"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// UsagePlanDTO is the plan for one ingredient instance. Matched lots whose
// unit cannot convert to the requested unit are noted in ExcludedLots
// instead of being listed as candidates.
type UsagePlanDTO struct {
	IngredientID      string            `json:"ingredient_id"`
	DisplayName       string            `json:"display_name"`
	RequestedQuantity float64           `json:"requested_quantity"`
	RequestedUnit     string            `json:"requested_unit"`
	SelectedAmount    float64           `json:"selected_amount"`
	SelectedUnit      string            `json:"selected_unit"`
	TotalAvailable    float64           `json:"total_available"`
	CandidateLots     []CandidateLotDTO `json:"candidate_lots"`
	ExcludedLots      []ExcludedLotDTO  `json:"excluded_lots,omitempty"`
}

// UsageSelection is the user's final choice for one ingredient.
// An empty Unit falls back to the ingredient's requested unit.
type UsageSelection struct {
	Ingredient IngredientInput `json:"ingredient"`
	Amount     float64         `json:"amount" validate:"gt=0"`
	Unit       string          `json:"unit"`
}

// CommitUsageCommand commits a recipe completion against the pantry
type CommitUsageCommand struct {
	UserID     uuid.UUID
	RecipeID   string
	Selections []UsageSelection

	// AllowPartial permits committing when stock covers less than the
	// selected amounts; the unmet remainder is reported per ingredient.
	AllowPartial bool
}

// ExcludedLotDTO records a lot left out of an allocation
type ExcludedLotDTO struct {
	LotID  uuid.UUID `json:"lot_id"`
	Reason string    `json:"reason"`
}

// IngredientUsageResult reports the outcome for one ingredient
type IngredientUsageResult struct {
	IngredientID string           `json:"ingredient_id"`
	Used         float64          `json:"used"`
	Unmet        float64          `json:"unmet"`
	Unit         string           `json:"unit"`
	ExcludedLots []ExcludedLotDTO `json:"excluded_lots,omitempty"`
}

// CommitResultDTO reports a committed recipe completion
type CommitResultDTO struct {
	Committed bool                    `json:"committed"`
	Results   []IngredientUsageResult `json:"results"`
}

// SuggestMatchesCommand asks for similarity-ranked pantry lots for a name
type SuggestMatchesCommand struct {
	UserID uuid.UUID
	Name   string
	Limit  int
}

// SuggestionDTO is one ranked match suggestion
type SuggestionDTO struct {
	LotID uuid.UUID `json:"lot_id"`
	Name  string    `json:"name"`
	Score float64   `json:"score"`
}

// PantryService defines the pantry reconciliation use cases.
// Matching and classification are in-memory over already-fetched data;
// only repository-backed operations take a context.
type PantryService interface {
	EvaluateAvailability(ctx context.Context, cmd EvaluateAvailabilityCommand) (*AvailabilityDTO, error)

	ClassifyQuantity(cmd ClassifyQuantityCommand) measure.QuantityRule
	ValidateQuantity(cmd ValidateQuantityCommand) error
	FormatQuantityInput(cmd FormatInputCommand) string

	BuildUsagePlans(ctx context.Context, cmd BuildUsagePlansCommand) ([]UsagePlanDTO, error)
	CommitUsage(ctx context.Context, cmd CommitUsageCommand) (*CommitResultDTO, error)

	SuggestMatches(ctx context.Context, cmd SuggestMatchesCommand) ([]SuggestionDTO, error)
	ListExpiringLots(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]CandidateLotDTO, error)
}
