// Package pantry provides the application layer for pantry reconciliation
// This implements the use cases defined in the inbound ports
package pantry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alchemorsel/pantry/internal/domain/matching"
	"github.com/alchemorsel/pantry/internal/domain/measure"
	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/alchemorsel/pantry/internal/domain/recipe"
	"github.com/alchemorsel/pantry/internal/ports/inbound"
	"github.com/alchemorsel/pantry/internal/ports/outbound"
	"github.com/alchemorsel/pantry/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PantryService implements the pantry reconciliation use cases
type PantryService struct {
	lots      outbound.PantryRepository
	cache     outbound.CacheRepository
	matcher   *matching.Matcher
	units     *measure.Canonicalizer
	converter *measure.Converter
	allocator *pantry.Allocator
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewPantryService creates a new pantry service
func NewPantryService(
	lots outbound.PantryRepository,
	cache outbound.CacheRepository,
	matcher *matching.Matcher,
	units *measure.Canonicalizer,
	converter *measure.Converter,
	cacheTTL time.Duration,
	logger *zap.Logger,
) inbound.PantryService {
	return &PantryService{
		lots:      lots,
		cache:     cache,
		matcher:   matcher,
		units:     units,
		converter: converter,
		allocator: pantry.NewAllocator(converter),
		cacheTTL:  cacheTTL,
		logger:    logger.Named("pantry-service"),
	}
}

// EvaluateAvailability classifies every ingredient instance against the
// user's pantry. Results are cached per recipe and invalidated on commit.
func (s *PantryService) EvaluateAvailability(ctx context.Context, cmd inbound.EvaluateAvailabilityCommand) (*inbound.AvailabilityDTO, error) {
	cacheKey := availabilityCacheKey(cmd.UserID, cmd.RecipeID)
	if cacheKey != "" {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var cached inbound.AvailabilityDTO
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	lots, err := s.lots.FindStockedByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry lots", err)
	}

	availability := s.matcher.Calculate(toRequirements(cmd.Ingredients), lots)
	dto := &inbound.AvailabilityDTO{
		AvailableCount: availability.AvailableCount,
		MissingCount:   availability.MissingCount,
		TotalCount:     availability.TotalCount,
		AvailableIDs:   availability.AvailableIDs,
		MissingIDs:     availability.MissingIDs,
	}

	if cacheKey != "" {
		if data, err := json.Marshal(dto); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
				s.logger.Warn("Failed to cache availability result",
					zap.String("key", cacheKey),
					zap.Error(err),
				)
			}
		}
	}

	s.logger.Debug("Evaluated recipe availability",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("total", dto.TotalCount),
		zap.Int("available", dto.AvailableCount),
		zap.Int("missing", dto.MissingCount),
	)

	return dto, nil
}

// ClassifyQuantity returns the stepper rule for an item and unit
func (s *PantryService) ClassifyQuantity(cmd inbound.ClassifyQuantityCommand) measure.QuantityRule {
	return s.units.Classify(cmd.ItemName, cmd.Unit)
}

// ValidateQuantity checks a chosen amount against its quantity rule
func (s *PantryService) ValidateQuantity(cmd inbound.ValidateQuantityCommand) error {
	if err := s.units.ValidateQuantity(cmd.Quantity, cmd.ItemName, cmd.Unit); err != nil {
		return errors.New(errors.CodeInvalidQuantity, err.Error())
	}
	return nil
}

// FormatQuantityInput sanitizes free-text numeric entry
func (s *PantryService) FormatQuantityInput(cmd inbound.FormatInputCommand) string {
	return s.units.FormatInput(cmd.Raw, cmd.ItemName, cmd.Unit)
}

// BuildUsagePlans matches each ingredient to its candidate lots, sorted
// earliest-expiration-first, with a default selection capped by stock.
// Matched lots whose unit cannot convert to the requested unit are noted
// as excluded rather than offered as candidates.
func (s *PantryService) BuildUsagePlans(ctx context.Context, cmd inbound.BuildUsagePlansCommand) ([]inbound.UsagePlanDTO, error) {
	lots, err := s.lots.FindStockedByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry lots", err)
	}

	plans := make([]inbound.UsagePlanDTO, 0, len(cmd.Ingredients))
	for _, input := range cmd.Ingredients {
		req := toRequirement(input)
		matched := s.matcher.MatchingLots(req, lots)
		pantry.SortLotsByExpiry(matched)

		var total float64
		var excluded []inbound.ExcludedLotDTO
		candidates := make([]inbound.CandidateLotDTO, 0, len(matched))
		for _, lot := range matched {
			if req.Unit != "" {
				converted, err := s.converter.Convert(lot.Quantity(), lot.Unit(), req.Unit)
				if err != nil {
					excluded = append(excluded, inbound.ExcludedLotDTO{
						LotID:  lot.ID(),
						Reason: fmt.Sprintf("incompatible unit: cannot convert %s to %s", lot.Unit(), req.Unit),
					})
					continue
				}
				total += converted
			}
			candidates = append(candidates, inbound.CandidateLotDTO{
				LotID:     lot.ID(),
				Name:      lot.CanonicalName(),
				Quantity:  lot.Quantity(),
				Unit:      lot.Unit(),
				ExpiresAt: lot.ExpiresAt(),
			})
		}

		selected := req.Quantity
		if selected > total {
			selected = total
		}

		plans = append(plans, inbound.UsagePlanDTO{
			IngredientID:      req.IngredientID,
			DisplayName:       req.DisplayName,
			RequestedQuantity: req.Quantity,
			RequestedUnit:     req.Unit,
			SelectedAmount:    selected,
			SelectedUnit:      req.Unit,
			TotalAvailable:    total,
			CandidateLots:     candidates,
			ExcludedLots:      excluded,
		})
	}

	return plans, nil
}

// CommitUsage allocates every selection FIFO-by-expiry and applies the
// resulting draws as one all-or-nothing deduction batch.
func (s *PantryService) CommitUsage(ctx context.Context, cmd inbound.CommitUsageCommand) (*inbound.CommitResultDTO, error) {
	lots, err := s.lots.FindStockedByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry lots", err)
	}
	lotsByID := make(map[uuid.UUID]*pantry.Lot, len(lots))
	for _, lot := range lots {
		lotsByID[lot.ID()] = lot
	}

	var batch []pantry.Deduction
	results := make([]inbound.IngredientUsageResult, 0, len(cmd.Selections))

	for _, sel := range cmd.Selections {
		req := toRequirement(sel.Ingredient)

		unit := sel.Unit
		if unit == "" {
			unit = req.Unit
		}
		if err := s.units.ValidateQuantity(sel.Amount, sel.Ingredient.DisplayName, unit); err != nil {
			return nil, errors.New(errors.CodeInvalidQuantity, err.Error()).
				WithMetadata("ingredient_id", sel.Ingredient.IngredientID)
		}
		if req.Unit != "" && unit != req.Unit && !s.converter.Compatible(unit, req.Unit) {
			return nil, errors.New(errors.CodeIncompatibleUnit,
				fmt.Sprintf("selected unit %q is not convertible to requested unit %q", unit, req.Unit)).
				WithMetadata("ingredient_id", sel.Ingredient.IngredientID)
		}

		matched := s.matcher.MatchingLots(req, lots)
		pantry.SortLotsByExpiry(matched)

		allocation := s.allocator.Allocate(pantry.UsagePlan{
			Requirement:    req,
			CandidateLots:  matched,
			SelectedAmount: sel.Amount,
			SelectedUnit:   unit,
		})

		if allocation.Unmet > 0 && !cmd.AllowPartial {
			return nil, errors.New(errors.CodeInsufficientStock,
				fmt.Sprintf("can only use %g of %g %s", sel.Amount-allocation.Unmet, sel.Amount, unit)).
				WithMetadata("ingredient_id", sel.Ingredient.IngredientID).
				WithMetadata("unmet", allocation.Unmet)
		}

		// Apply draws to the in-memory snapshot so later selections see
		// reduced stock instead of double-drawing the same lot.
		for _, d := range allocation.Deductions {
			lot, ok := lotsByID[d.LotID]
			if !ok {
				return nil, errors.NewLotNotFoundError(d.LotID.String())
			}
			if err := lot.Deduct(d.Amount); err != nil {
				return nil, errors.NewInsufficientStockError(d.LotID.String()).WithMetadata("cause", err.Error())
			}
		}

		batch = append(batch, allocation.Deductions...)
		results = append(results, inbound.IngredientUsageResult{
			IngredientID: sel.Ingredient.IngredientID,
			Used:         sel.Amount - allocation.Unmet,
			Unmet:        allocation.Unmet,
			Unit:         unit,
			ExcludedLots: toExcludedDTOs(allocation.Excluded),
		})
	}

	if len(batch) > 0 {
		if err := s.lots.DeductLots(ctx, cmd.UserID, batch); err != nil {
			return nil, err
		}
	}

	if key := availabilityCacheKey(cmd.UserID, cmd.RecipeID); key != "" {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate availability cache",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Committed recipe usage",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("ingredients", len(cmd.Selections)),
		zap.Int("deductions", len(batch)),
	)

	return &inbound.CommitResultDTO{Committed: true, Results: results}, nil
}

// SuggestMatches ranks the user's lots by similarity to a free-text name
func (s *PantryService) SuggestMatches(ctx context.Context, cmd inbound.SuggestMatchesCommand) ([]inbound.SuggestionDTO, error) {
	lots, err := s.lots.FindStockedByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry lots", err)
	}

	suggestions := s.matcher.Suggest(cmd.Name, lots, cmd.Limit)
	dtos := make([]inbound.SuggestionDTO, len(suggestions))
	for i, sg := range suggestions {
		dtos[i] = inbound.SuggestionDTO{LotID: sg.LotID, Name: sg.Name, Score: sg.Score}
	}
	return dtos, nil
}

// ListExpiringLots returns the user's lots expiring before the cutoff
func (s *PantryService) ListExpiringLots(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]inbound.CandidateLotDTO, error) {
	lots, err := s.lots.FindExpiringBefore(ctx, userID, cutoff)
	if err != nil {
		return nil, errors.NewDatabaseError("find expiring lots", err)
	}

	dtos := make([]inbound.CandidateLotDTO, len(lots))
	for i, lot := range lots {
		dtos[i] = inbound.CandidateLotDTO{
			LotID:     lot.ID(),
			Name:      lot.CanonicalName(),
			Quantity:  lot.Quantity(),
			Unit:      lot.Unit(),
			ExpiresAt: lot.ExpiresAt(),
		}
	}
	return dtos, nil
}

func toRequirement(input inbound.IngredientInput) recipe.IngredientRequirement {
	return recipe.IngredientRequirement{
		IngredientID: input.IngredientID,
		DisplayName:  input.DisplayName,
		OriginalText: input.OriginalText,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
	}
}

func toRequirements(inputs []inbound.IngredientInput) []recipe.IngredientRequirement {
	reqs := make([]recipe.IngredientRequirement, len(inputs))
	for i, input := range inputs {
		reqs[i] = toRequirement(input)
	}
	return reqs
}

func toExcludedDTOs(excluded []pantry.ExcludedLot) []inbound.ExcludedLotDTO {
	if len(excluded) == 0 {
		return nil
	}
	dtos := make([]inbound.ExcludedLotDTO, len(excluded))
	for i, ex := range excluded {
		dtos[i] = inbound.ExcludedLotDTO{LotID: ex.LotID, Reason: ex.Reason}
	}
	return dtos
}

func availabilityCacheKey(userID uuid.UUID, recipeID string) string {
	if recipeID == "" {
		return ""
	}
	return fmt.Sprintf("availability:%s:%s", userID, recipeID)
}
