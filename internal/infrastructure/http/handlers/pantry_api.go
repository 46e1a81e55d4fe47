// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apperrors "github.com/alchemorsel/pantry/pkg/errors"

	"github.com/alchemorsel/pantry/internal/ports/inbound"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PantryHandlers handles pantry reconciliation API requests
type PantryHandlers struct {
	service  inbound.PantryService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewPantryHandlers creates a new pantry handlers instance
func NewPantryHandlers(service inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("pantry-api"),
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type availabilityRequest struct {
	UserID      string                    `json:"user_id" validate:"required,uuid4"`
	RecipeID    string                    `json:"recipe_id"`
	Ingredients []inbound.IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
}

// EvaluateAvailability handles POST /api/v1/availability
func (h *PantryHandlers) EvaluateAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.EvaluateAvailability(r.Context(), inbound.EvaluateAvailabilityCommand{
		UserID:      uuid.MustParse(req.UserID),
		RecipeID:    req.RecipeID,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

type classifyRequest struct {
	ItemName string `json:"item_name" validate:"required"`
	Unit     string `json:"unit"`
}

// ClassifyQuantity handles POST /api/v1/quantity/classify
func (h *PantryHandlers) ClassifyQuantity(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	rule := h.service.ClassifyQuantity(inbound.ClassifyQuantityCommand{
		ItemName: req.ItemName,
		Unit:     req.Unit,
	})
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: rule})
}

type validateQuantityRequest struct {
	ItemName string  `json:"item_name" validate:"required"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

// ValidateQuantity handles POST /api/v1/quantity/validate
func (h *PantryHandlers) ValidateQuantity(w http.ResponseWriter, r *http.Request) {
	var req validateQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.ValidateQuantity(inbound.ValidateQuantityCommand{
		Quantity: req.Quantity,
		ItemName: req.ItemName,
		Unit:     req.Unit,
	}); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

type formatInputRequest struct {
	Raw      string `json:"raw"`
	ItemName string `json:"item_name" validate:"required"`
	Unit     string `json:"unit"`
}

// FormatQuantityInput handles POST /api/v1/quantity/format
func (h *PantryHandlers) FormatQuantityInput(w http.ResponseWriter, r *http.Request) {
	var req formatInputRequest
	if !h.decode(w, r, &req) {
		return
	}

	formatted := h.service.FormatQuantityInput(inbound.FormatInputCommand{
		Raw:      req.Raw,
		ItemName: req.ItemName,
		Unit:     req.Unit,
	})
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]string{"formatted": formatted},
	})
}

type usagePlanRequest struct {
	UserID      string                    `json:"user_id" validate:"required,uuid4"`
	Ingredients []inbound.IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
}

// BuildUsagePlans handles POST /api/v1/usage/plan
func (h *PantryHandlers) BuildUsagePlans(w http.ResponseWriter, r *http.Request) {
	var req usagePlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	plans, err := h.service.BuildUsagePlans(r.Context(), inbound.BuildUsagePlansCommand{
		UserID:      uuid.MustParse(req.UserID),
		Ingredients: req.Ingredients,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: plans})
}

type commitUsageRequest struct {
	UserID       string                   `json:"user_id" validate:"required,uuid4"`
	RecipeID     string                   `json:"recipe_id"`
	AllowPartial bool                     `json:"allow_partial"`
	Selections   []inbound.UsageSelection `json:"selections" validate:"required,min=1,dive"`
}

// CommitUsage handles POST /api/v1/usage/commit
func (h *PantryHandlers) CommitUsage(w http.ResponseWriter, r *http.Request) {
	var req commitUsageRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.CommitUsage(r.Context(), inbound.CommitUsageCommand{
		UserID:       uuid.MustParse(req.UserID),
		RecipeID:     req.RecipeID,
		AllowPartial: req.AllowPartial,
		Selections:   req.Selections,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

type suggestRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Name   string `json:"name" validate:"required"`
	Limit  int    `json:"limit" validate:"gte=0"`
}

// SuggestMatches handles POST /api/v1/matches/suggest
func (h *PantryHandlers) SuggestMatches(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if !h.decode(w, r, &req) {
		return
	}

	suggestions, err := h.service.SuggestMatches(r.Context(), inbound.SuggestMatchesCommand{
		UserID: uuid.MustParse(req.UserID),
		Name:   req.Name,
		Limit:  req.Limit,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: suggestions})
}

// ListExpiringLots handles GET /api/v1/pantry/expiring
func (h *PantryHandlers) ListExpiringLots(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, apperrors.NewValidationError("user_id must be a valid UUID"))
		return
	}

	cutoff := time.Now().Add(72 * time.Hour)
	if raw := r.URL.Query().Get("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, apperrors.NewValidationError("before must be RFC3339"))
			return
		}
		cutoff = parsed
	}

	lots, err := h.service.ListExpiringLots(r.Context(), userID, cutoff)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: lots})
}

// decode parses and validates the request body; it writes the error
// response itself and reports whether the handler should continue.
func (h *PantryHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, apperrors.New(apperrors.CodeBadRequest, "invalid JSON body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, apperrors.NewValidationError(err.Error()))
		return false
	}
	return true
}

func (h *PantryHandlers) writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(err, "request failed")
	}

	h.writeJSON(w, appErr.StatusCode(), APIResponse{Success: false, Error: appErr.Error()})
}

func (h *PantryHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}
