package gorm

import (
	"context"
	"errors"

	"github.com/forkful/v2/internal/domain/cookbook"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CookbookRepository implements the cookbook repository interface using GORM
type CookbookRepository struct {
	db *gorm.DB
}

// NewCookbookRepository creates a new cookbook repository
func NewCookbookRepository(db *gorm.DB) outbound.CookbookRepository {
	return &CookbookRepository{db: db}
}

// Create persists a new cookbook
func (r *CookbookRepository) Create(ctx context.Context, entity *cookbook.Cookbook) error {
	model := CookbookToModel(entity)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing cookbook
func (r *CookbookRepository) Update(ctx context.Context, entity *cookbook.Cookbook) error {
	model := CookbookToModel(entity)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("cookbook not found")
	}
	return nil
}

// Delete deletes a cookbook by ID
func (r *CookbookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&CookbookModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("cookbook not found")
	}
	return nil
}

// FindByID finds a cookbook by ID
func (r *CookbookRepository) FindByID(ctx context.Context, id uuid.UUID) (*cookbook.Cookbook, error) {
	var model CookbookModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToCookbook(&model), nil
}

// FindVisibleToUser finds cookbooks the user owns or is a member of.
// Membership is stored as a JSON document, so the member filter happens
// in memory after narrowing to owned plus candidate rows.
func (r *CookbookRepository) FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*cookbook.Cookbook, error) {
	var models []CookbookModel

	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	cookbooks := make([]*cookbook.Cookbook, 0, len(models))
	for i := range models {
		entity := ModelToCookbook(&models[i])
		if entity.OwnerID() == userID {
			cookbooks = append(cookbooks, entity)
			continue
		}
		if _, ok := entity.Members()[userID]; ok {
			cookbooks = append(cookbooks, entity)
		}
	}
	return cookbooks, nil
}
