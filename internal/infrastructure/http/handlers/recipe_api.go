package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/forkful/v2/internal/infrastructure/http/middleware"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeAPIHandlers handles recipe API requests
type RecipeAPIHandlers struct {
	recipeService inbound.RecipeService
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewRecipeAPIHandlers creates a new recipe API handlers instance
func NewRecipeAPIHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeAPIHandlers {
	return &RecipeAPIHandlers{
		recipeService: recipeService,
		validate:      validator.New(),
		logger:        logger,
	}
}

type ingredientRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"max=50"`
	Optional bool    `json:"optional"`
	Notes    string  `json:"notes" validate:"max=500"`
}

type createRecipeRequest struct {
	Title        string              `json:"title" validate:"required,max=255"`
	Description  string              `json:"description" validate:"max=2000"`
	Servings     int                 `json:"servings" validate:"omitempty,gt=0"`
	Ingredients  []ingredientRequest `json:"ingredients" validate:"omitempty,dive"`
	Instructions []string            `json:"instructions" validate:"omitempty,dive,required"`
}

type updateRecipeRequest struct {
	Title       *string              `json:"title" validate:"omitempty,max=255"`
	Servings    *int                 `json:"servings" validate:"omitempty,gt=0"`
	Ingredients *[]ingredientRequest `json:"ingredients" validate:"omitempty,dive"`
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeAPIHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	var req createRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(h.logger, w, r, errors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.recipeService.CreateRecipe(r.Context(), inbound.CreateRecipeCommand{
		Title:        req.Title,
		Description:  req.Description,
		AuthorID:     userID,
		Ingredients:  toIngredientCommands(req.Ingredients),
		Instructions: req.Instructions,
		Servings:     req.Servings,
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe created successfully",
	})
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	var req updateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(h.logger, w, r, errors.NewValidationError(err.Error()))
		return
	}

	cmd := inbound.UpdateRecipeCommand{
		RecipeID: recipeID,
		UserID:   userID,
		Title:    req.Title,
		Servings: req.Servings,
	}
	if req.Ingredients != nil {
		ingredients := toIngredientCommands(*req.Ingredients)
		cmd.Ingredients = &ingredients
	}

	dto, err := h.recipeService.UpdateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Recipe updated successfully",
	})
}

// PublishRecipe handles POST /api/v1/recipes/{id}/publish
func (h *RecipeAPIHandlers) PublishRecipe(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.recipeService.PublishRecipe, "Recipe published successfully")
}

// ArchiveRecipe handles POST /api/v1/recipes/{id}/archive
func (h *RecipeAPIHandlers) ArchiveRecipe(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.recipeService.ArchiveRecipe, "Recipe archived successfully")
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.recipeService.DeleteRecipe, "Recipe deleted successfully")
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.recipeService.GetRecipeByID(r.Context(), recipeID, userID)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeAPIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	params := inbound.PaginationParams{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 20),
	}

	list, err := h.recipeService.GetRecipesByUser(r.Context(), userID, params)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Data: list})
}

// transition runs a lifecycle operation keyed by recipe and acting user
func (h *RecipeAPIHandlers) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, recipeID, userID uuid.UUID) error,
	message string,
) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	if err := op(r.Context(), recipeID, userID); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Message: message})
}

func toIngredientCommands(reqs []ingredientRequest) []inbound.CreateIngredientCommand {
	cmds := make([]inbound.CreateIngredientCommand, 0, len(reqs))
	for _, req := range reqs {
		cmds = append(cmds, inbound.CreateIngredientCommand{
			Name:     req.Name,
			Amount:   req.Amount,
			Unit:     req.Unit,
			Optional: req.Optional,
			Notes:    req.Notes,
		})
	}
	return cmds
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
