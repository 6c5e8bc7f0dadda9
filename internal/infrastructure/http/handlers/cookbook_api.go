package handlers

import (
	"context"
	"net/http"

	"github.com/forkful/v2/internal/infrastructure/http/middleware"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CookbookAPIHandlers handles cookbook API requests
type CookbookAPIHandlers struct {
	cookbookService inbound.CookbookService
	validate        *validator.Validate
	logger          *zap.Logger
}

// NewCookbookAPIHandlers creates a new cookbook API handlers instance
func NewCookbookAPIHandlers(cookbookService inbound.CookbookService, logger *zap.Logger) *CookbookAPIHandlers {
	return &CookbookAPIHandlers{
		cookbookService: cookbookService,
		validate:        validator.New(),
		logger:          logger,
	}
}

type createCookbookRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Public      bool   `json:"public"`
}

type addMemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"required,oneof=viewer contributor editor"`
}

type setVisibilityRequest struct {
	Public bool `json:"public"`
}

// CreateCookbook handles POST /api/v1/cookbooks
func (h *CookbookAPIHandlers) CreateCookbook(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	var req createCookbookRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(h.logger, w, r, errors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.cookbookService.CreateCookbook(r.Context(), inbound.CreateCookbookCommand{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     userID,
		Public:      req.Public,
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Cookbook created successfully",
	})
}

// GetCookbook handles GET /api/v1/cookbooks/{id}
func (h *CookbookAPIHandlers) GetCookbook(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	cookbookID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.cookbookService.GetCookbook(r.Context(), cookbookID, userID)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Data: dto})
}

// ListCookbooks handles GET /api/v1/cookbooks
func (h *CookbookAPIHandlers) ListCookbooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	dtos, err := h.cookbookService.ListCookbooks(r.Context(), userID)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Data: dtos})
}

// AddRecipe handles POST /api/v1/cookbooks/{id}/recipes/{recipeID}
func (h *CookbookAPIHandlers) AddRecipe(w http.ResponseWriter, r *http.Request) {
	h.recipeMembership(w, r, h.cookbookService.AddRecipeToCookbook, "Recipe added to cookbook")
}

// RemoveRecipe handles DELETE /api/v1/cookbooks/{id}/recipes/{recipeID}
func (h *CookbookAPIHandlers) RemoveRecipe(w http.ResponseWriter, r *http.Request) {
	h.recipeMembership(w, r, h.cookbookService.RemoveRecipeFromCookbook, "Recipe removed from cookbook")
}

// AddMember handles POST /api/v1/cookbooks/{id}/members
func (h *CookbookAPIHandlers) AddMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	cookbookID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(h.logger, w, r, errors.NewValidationError(err.Error()))
		return
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(h.logger, w, r, errors.NewValidationError("user_id must be a valid UUID"))
		return
	}

	if err := h.cookbookService.AddMember(r.Context(), inbound.AddMemberCommand{
		CookbookID: cookbookID,
		MemberID:   memberID,
		Role:       req.Role,
		UserID:     userID,
	}); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Member added successfully",
	})
}

// RemoveMember handles DELETE /api/v1/cookbooks/{id}/members/{memberID}
func (h *CookbookAPIHandlers) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	cookbookID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}
	memberID, err := uuidParam(r, "memberID")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	if err := h.cookbookService.RemoveMember(r.Context(), cookbookID, memberID, userID); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Member removed successfully",
	})
}

// SetVisibility handles PUT /api/v1/cookbooks/{id}/visibility
func (h *CookbookAPIHandlers) SetVisibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	cookbookID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	var req setVisibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	if err := h.cookbookService.SetVisibility(r.Context(), cookbookID, userID, req.Public); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Cookbook visibility updated",
	})
}

// DeleteCookbook handles DELETE /api/v1/cookbooks/{id}
func (h *CookbookAPIHandlers) DeleteCookbook(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	cookbookID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	if err := h.cookbookService.DeleteCookbook(r.Context(), cookbookID, userID); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Cookbook deleted successfully",
	})
}

func (h *CookbookAPIHandlers) recipeMembership(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, cookbookID, recipeID, userID uuid.UUID) error,
	message string,
) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(h.logger, w, r, errors.NewUnauthorizedError(""))
		return
	}

	cookbookID, err := uuidParam(r, "id")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}
	recipeID, err := uuidParam(r, "recipeID")
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	if err := op(r.Context(), cookbookID, recipeID, userID); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, APIResponse{Success: true, Message: message})
}
