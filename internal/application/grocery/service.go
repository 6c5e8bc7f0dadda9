// Package grocery provides the application layer for grocery list generation
// This implements the use cases defined in the inbound ports
package grocery

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/forkful/v2/internal/domain/grocery"
	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroceryService implements the grocery list use cases
type GroceryService struct {
	recipeRepo outbound.RecipeRepository
	listRepo   outbound.GroceryListRepository
	cache      outbound.CacheRepository
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewGroceryService creates a new grocery service. The cache TTL is
// injected so deployments can tune how long generated lists stay warm.
func NewGroceryService(
	recipeRepo outbound.RecipeRepository,
	listRepo outbound.GroceryListRepository,
	cache outbound.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) inbound.GroceryService {
	return &GroceryService{
		recipeRepo: recipeRepo,
		listRepo:   listRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger.Named("grocery-service"),
	}
}

// GenerateGroceryList aggregates the ingredients of the requested recipes
// into a categorized, persisted grocery list
func (s *GroceryService) GenerateGroceryList(ctx context.Context, cmd inbound.GenerateGroceryListCommand) (*inbound.GroceryListDTO, error) {
	s.logger.Info("Generating grocery list",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("recipe_count", len(cmd.RecipeIDs)),
	)

	if len(cmd.RecipeIDs) == 0 {
		return nil, errors.NewValidationError("at least one recipe ID is required")
	}

	found, err := s.recipeRepo.FindByIDs(ctx, cmd.RecipeIDs)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipes", err)
	}

	byID := make(map[uuid.UUID]*recipe.Recipe, len(found))
	for _, r := range found {
		byID[r.ID()] = r
	}

	// Preserve the requested order; it drives both the synthesized title
	// and the first-seen merge order of the aggregation.
	recipes := make([]*recipe.Recipe, 0, len(cmd.RecipeIDs))
	for _, id := range cmd.RecipeIDs {
		r, ok := byID[id]
		if !ok {
			return nil, errors.NewRecipeNotFoundError(id.String())
		}
		recipes = append(recipes, r)
	}

	for _, r := range recipes {
		if !r.IsViewableBy(cmd.UserID) {
			return nil, errors.NewInsufficientPermissionsError("use this recipe")
		}
	}

	items := grocery.GenerateItems(recipes, grocery.ServingAdjustments(cmd.ServingAdjustments))

	title := cmd.Title
	if title == "" {
		title = grocery.ListTitle(recipes)
	}

	list := grocery.NewList(cmd.UserID, title, items, cmd.RecipeIDs)
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, errors.NewDatabaseError("create grocery list", err)
	}

	dto := s.listToDTO(list)
	s.cacheList(ctx, dto)

	s.logger.Info("Grocery list generated",
		zap.String("list_id", dto.ID.String()),
		zap.String("title", dto.Title),
		zap.Int("item_count", len(dto.Items)),
	)

	return dto, nil
}

// GetGroceryList returns a single grocery list owned by the user
func (s *GroceryService) GetGroceryList(ctx context.Context, listID, userID uuid.UUID) (*inbound.GroceryListDTO, error) {
	if cached := s.cachedList(ctx, listID); cached != nil {
		if cached.UserID != userID {
			return nil, errors.NewInsufficientPermissionsError("view this grocery list")
		}
		return cached, nil
	}

	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, errors.NewDatabaseError("find grocery list", err)
	}
	if list == nil {
		return nil, errors.NewGroceryListNotFoundError(listID.String())
	}
	if list.UserID() != userID {
		return nil, errors.NewInsufficientPermissionsError("view this grocery list")
	}

	dto := s.listToDTO(list)
	s.cacheList(ctx, dto)
	return dto, nil
}

// ListGroceryLists returns summaries of the user's grocery lists
func (s *GroceryService) ListGroceryLists(ctx context.Context, userID uuid.UUID) ([]inbound.GroceryListSummaryDTO, error) {
	lists, err := s.listRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list grocery lists", err)
	}

	summaries := make([]inbound.GroceryListSummaryDTO, 0, len(lists))
	for _, list := range lists {
		summaries = append(summaries, inbound.GroceryListSummaryDTO{
			ID:        list.ID(),
			Title:     list.Title(),
			ItemCount: len(list.Items()),
			CreatedAt: list.CreatedAt().Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// DeleteGroceryList removes a grocery list owned by the user
func (s *GroceryService) DeleteGroceryList(ctx context.Context, listID, userID uuid.UUID) error {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return errors.NewDatabaseError("find grocery list", err)
	}
	if list == nil {
		return errors.NewGroceryListNotFoundError(listID.String())
	}
	if list.UserID() != userID {
		return errors.NewInsufficientPermissionsError("delete this grocery list")
	}

	if err := s.listRepo.Delete(ctx, listID); err != nil {
		return errors.NewDatabaseError("delete grocery list", err)
	}

	if err := s.cache.Delete(ctx, listCacheKey(listID)); err != nil {
		s.logger.Warn("Failed to evict grocery list from cache",
			zap.String("list_id", listID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Grocery list deleted", zap.String("list_id", listID.String()))
	return nil
}

func listCacheKey(listID uuid.UUID) string {
	return fmt.Sprintf("grocery:list:%s", listID)
}

func (s *GroceryService) cacheList(ctx context.Context, dto *inbound.GroceryListDTO) {
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, listCacheKey(dto.ID), data, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache grocery list",
			zap.String("list_id", dto.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *GroceryService) cachedList(ctx context.Context, listID uuid.UUID) *inbound.GroceryListDTO {
	data, err := s.cache.Get(ctx, listCacheKey(listID))
	if err != nil || data == nil {
		return nil
	}
	var dto inbound.GroceryListDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil
	}
	return &dto
}

func (s *GroceryService) listToDTO(list *grocery.List) *inbound.GroceryListDTO {
	items := make([]inbound.GroceryItemDTO, 0, len(list.Items()))
	for _, item := range list.Items() {
		items = append(items, inbound.GroceryItemDTO{
			ID:        item.ID,
			Name:      item.Name,
			Amount:    item.Amount,
			Unit:      item.Unit,
			Category:  item.Category,
			Notes:     item.Notes,
			RecipeIDs: item.RecipeIDs,
		})
	}

	return &inbound.GroceryListDTO{
		ID:            list.ID(),
		UserID:        list.UserID(),
		Title:         list.Title(),
		Items:         items,
		GeneratedFrom: list.GeneratedFrom(),
		CreatedAt:     list.CreatedAt().Format(time.RFC3339),
		UpdatedAt:     list.UpdatedAt().Format(time.RFC3339),
	}
}
