// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/forkful/v2/internal/domain/cookbook"
	"github.com/forkful/v2/internal/domain/grocery"
	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/google/uuid"
)

// RecipeRepository defines the interface for recipe persistence
// This follows the Repository pattern for data access abstraction
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	Update(ctx context.Context, recipe *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)

	// FindByIDs returns the recipes it found; callers compare lengths to
	// detect missing IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error)

	FindByAuthorID(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*recipe.Recipe, int, error)
}

// GroceryListRepository defines the interface for grocery list persistence
type GroceryListRepository interface {
	Create(ctx context.Context, list *grocery.List) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*grocery.List, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*grocery.List, error)
}

// CookbookRepository defines the interface for cookbook persistence
type CookbookRepository interface {
	Create(ctx context.Context, cookbook *cookbook.Cookbook) error
	Update(ctx context.Context, cookbook *cookbook.Cookbook) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*cookbook.Cookbook, error)
	FindVisibleToUser(ctx context.Context, userID uuid.UUID) ([]*cookbook.Cookbook, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
