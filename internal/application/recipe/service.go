// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"time"

	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/forkful/v2/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating new recipe",
		zap.String("title", cmd.Title),
		zap.String("author_id", cmd.AuthorID.String()),
	)

	entity, err := recipe.NewRecipe(cmd.Title, cmd.Description, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Servings > 0 {
		if err := entity.UpdateServings(cmd.Servings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	for _, ingredientCmd := range cmd.Ingredients {
		ingredient := recipe.Ingredient{
			ID:       uuid.New(),
			Name:     ingredientCmd.Name,
			Amount:   ingredientCmd.Amount,
			Unit:     ingredientCmd.Unit,
			Optional: ingredientCmd.Optional,
			Notes:    ingredientCmd.Notes,
		}
		if err := entity.AddIngredient(ingredient); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	for _, description := range cmd.Instructions {
		if err := entity.AddInstruction(recipe.Instruction{Description: description}); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	dto := s.entityToDTO(entity)
	s.logger.Info("Recipe created",
		zap.String("recipe_id", dto.ID.String()),
		zap.String("title", dto.Title),
	)
	return dto, nil
}

// UpdateRecipe updates an existing recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := s.loadOwnedRecipe(ctx, cmd.RecipeID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := entity.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Servings != nil {
		if err := entity.UpdateServings(*cmd.Servings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Ingredients != nil {
		fresh := recipe.Rehydrate(
			entity.ID(), entity.Version(),
			entity.Title(), entity.Description(), entity.AuthorID(),
			nil, entity.Instructions(), entity.Servings(),
			entity.Status(), entity.PublishedAt(),
			entity.CreatedAt(), entity.UpdatedAt(),
		)
		for _, ingredientCmd := range *cmd.Ingredients {
			ingredient := recipe.Ingredient{
				ID:       uuid.New(),
				Name:     ingredientCmd.Name,
				Amount:   ingredientCmd.Amount,
				Unit:     ingredientCmd.Unit,
				Optional: ingredientCmd.Optional,
				Notes:    ingredientCmd.Notes,
			}
			if err := fresh.AddIngredient(ingredient); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
		entity = fresh
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	return s.entityToDTO(entity), nil
}

// PublishRecipe publishes a recipe making it publicly visible
func (s *RecipeService) PublishRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.loadOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := entity.Publish(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("publish recipe", err)
	}

	s.logger.Info("Recipe published", zap.String("recipe_id", recipeID.String()))
	return nil
}

// ArchiveRecipe archives a published recipe
func (s *RecipeService) ArchiveRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.loadOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := entity.Archive(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("archive recipe", err)
	}

	s.logger.Info("Recipe archived", zap.String("recipe_id", recipeID.String()))
	return nil
}

// DeleteRecipe removes a recipe owned by the user
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	if _, err := s.loadOwnedRecipe(ctx, recipeID, userID); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.logger.Info("Recipe deleted", zap.String("recipe_id", recipeID.String()))
	return nil
}

// GetRecipeByID returns a recipe if the user may view it
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID, userID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	if !entity.IsViewableBy(userID) {
		return nil, errors.NewInsufficientPermissionsError("view this recipe")
	}

	return s.entityToDTO(entity), nil
}

// GetRecipesByUser returns the user's own recipes, paginated
func (s *RecipeService) GetRecipesByUser(ctx context.Context, userID uuid.UUID, params inbound.PaginationParams) (*inbound.RecipeList, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	recipes, total, err := s.recipeRepo.FindByAuthorID(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, entity := range recipes {
		dtos = append(dtos, *s.entityToDTO(entity))
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &inbound.RecipeList{
		Recipes:    dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *RecipeService) loadOwnedRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	if entity.AuthorID() != userID {
		return nil, errors.NewInsufficientPermissionsError("modify this recipe")
	}
	return entity, nil
}

func (s *RecipeService) entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	ingredients := make([]inbound.IngredientDTO, 0, len(entity.Ingredients()))
	for _, ingredient := range entity.Ingredients() {
		ingredients = append(ingredients, inbound.IngredientDTO{
			ID:       ingredient.ID,
			Name:     ingredient.Name,
			Amount:   ingredient.Amount,
			Unit:     ingredient.Unit,
			Optional: ingredient.Optional,
			Notes:    ingredient.Notes,
		})
	}

	instructions := make([]inbound.InstructionDTO, 0, len(entity.Instructions()))
	for _, instruction := range entity.Instructions() {
		instructions = append(instructions, inbound.InstructionDTO{
			StepNumber:  instruction.StepNumber,
			Description: instruction.Description,
		})
	}

	dto := &inbound.RecipeDTO{
		ID:           entity.ID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		AuthorID:     entity.AuthorID(),
		Ingredients:  ingredients,
		Instructions: instructions,
		Servings:     entity.Servings(),
		Status:       entity.Status(),
		CreatedAt:    entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    entity.UpdatedAt().Format(time.RFC3339),
	}
	if publishedAt := entity.PublishedAt(); publishedAt != nil {
		formatted := publishedAt.Format(time.RFC3339)
		dto.PublishedAt = &formatted
	}
	return dto
}
