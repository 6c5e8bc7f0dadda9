package gorm

import (
	"context"
	"errors"

	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM.
// Lookups that find nothing return (nil, nil); callers decide whether a
// miss is an error.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(ctx context.Context, entity *recipe.Recipe) error {
	model := RecipeToModel(entity)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	model := RecipeToModel(entity)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("recipe not found")
	}
	return nil
}

// Delete deletes a recipe by ID
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("recipe not found")
	}
	return nil
}

// FindByID finds a recipe by ID
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindByIDs finds recipes by a set of IDs, returning only those that exist
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}

// FindByAuthorID finds recipes by author with pagination
func (r *RecipeRepository) FindByAuthorID(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error) {
	var total int64
	countResult := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("author_id = ?", authorID).
		Count(&total)
	if countResult.Error != nil {
		return nil, 0, countResult.Error
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, int(total), nil
}
