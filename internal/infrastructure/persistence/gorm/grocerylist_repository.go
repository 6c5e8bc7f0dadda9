package gorm

import (
	"context"
	"errors"

	"github.com/forkful/v2/internal/domain/grocery"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroceryListRepository implements the grocery list repository interface using GORM
type GroceryListRepository struct {
	db *gorm.DB
}

// NewGroceryListRepository creates a new grocery list repository
func NewGroceryListRepository(db *gorm.DB) outbound.GroceryListRepository {
	return &GroceryListRepository{db: db}
}

// Create persists a new grocery list
func (r *GroceryListRepository) Create(ctx context.Context, list *grocery.List) error {
	model := GroceryListToModel(list)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes a grocery list by ID
func (r *GroceryListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&GroceryListModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("grocery list not found")
	}
	return nil
}

// FindByID finds a grocery list by ID
func (r *GroceryListRepository) FindByID(ctx context.Context, id uuid.UUID) (*grocery.List, error) {
	var model GroceryListModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToGroceryList(&model), nil
}

// FindByUserID finds all grocery lists owned by a user, newest first
func (r *GroceryListRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*grocery.List, error) {
	var models []GroceryListModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	lists := make([]*grocery.List, len(models))
	for i := range models {
		lists[i] = ModelToGroceryList(&models[i])
	}
	return lists, nil
}
