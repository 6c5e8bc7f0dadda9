package handlers

import (
	"net/http"

	"github.com/forkful/v2/internal/infrastructure/http/middleware"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroceryAPIHandlers handles grocery list API requests
type GroceryAPIHandlers struct {
	groceryService inbound.GroceryService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewGroceryAPIHandlers creates a new grocery API handlers instance
func NewGroceryAPIHandlers(groceryService inbound.GroceryService, logger *zap.Logger) *GroceryAPIHandlers {
	return &GroceryAPIHandlers{
		groceryService: groceryService,
		validate:       validator.New(),
		logger:         logger,
	}
}

type generateGroceryListRequest struct {
	RecipeIDs          []string       `json:"recipe_ids" validate:"required,min=1,dive,uuid"`
	ServingAdjustments map[string]int `json:"serving_adjustments" validate:"omitempty,dive,gt=0"`
	Title              string         `json:"title" validate:"omitempty,max=200"`
}

// GenerateGroceryList handles POST /api/v1/grocery-lists/generate
func (h *GroceryAPIHandlers) GenerateGroceryList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	var req generateGroceryListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(h.logger, w, r, errors.NewValidationError(err.Error()))
		return
	}

	recipeIDs := make([]uuid.UUID, 0, len(req.RecipeIDs))
	for _, raw := range req.RecipeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(h.logger, w, r, errors.NewValidationError("recipe_ids must contain valid UUIDs"))
			return
		}
		recipeIDs = append(recipeIDs, id)
	}

	adjustments := make(map[uuid.UUID]int, len(req.ServingAdjustments))
	for raw, servings := range req.ServingAdjustments {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(h.logger, w, r, errors.NewValidationError("serving_adjustments keys must be valid UUIDs"))
			return
		}
		adjustments[id] = servings
	}

	list, err := h.groceryService.GenerateGroceryList(r.Context(), inbound.GenerateGroceryListCommand{
		UserID:             userID,
		RecipeIDs:          recipeIDs,
		ServingAdjustments: adjustments,
		Title:              req.Title,
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    list,
		Message: "Grocery list generated successfully",
	})
}

// GetGroceryList handles GET /api/v1/grocery-lists/{id}
func (h *GroceryAPIHandlers) GetGroceryList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	listID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	list, err := h.groceryService.GetGroceryList(r.Context(), listID, userID)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Data: list})
}

// ListGroceryLists handles GET /api/v1/grocery-lists
func (h *GroceryAPIHandlers) ListGroceryLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	lists, err := h.groceryService.ListGroceryLists(r.Context(), userID)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Data: lists})
}

// DeleteGroceryList handles DELETE /api/v1/grocery-lists/{id}
func (h *GroceryAPIHandlers) DeleteGroceryList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	listID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	if err := h.groceryService.DeleteGroceryList(r.Context(), listID, userID); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Grocery list deleted successfully",
	})
}
