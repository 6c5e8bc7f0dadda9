package inbound

import (
	"context"

	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/google/uuid"
)

// RecipeService defines the use cases for recipe management
type RecipeService interface {
	// Commands - operations that modify state
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	PublishRecipe(ctx context.Context, recipeID, userID uuid.UUID) error
	ArchiveRecipe(ctx context.Context, recipeID, userID uuid.UUID) error
	DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error

	// Queries - operations that read state
	GetRecipeByID(ctx context.Context, recipeID, userID uuid.UUID) (*RecipeDTO, error)
	GetRecipesByUser(ctx context.Context, userID uuid.UUID, params PaginationParams) (*RecipeList, error)
}

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	Title        string
	Description  string
	AuthorID     uuid.UUID
	Ingredients  []CreateIngredientCommand
	Instructions []string
	Servings     int
}

// UpdateRecipeCommand contains data for updating a recipe
type UpdateRecipeCommand struct {
	RecipeID    uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Servings    *int
	Ingredients *[]CreateIngredientCommand
}

// CreateIngredientCommand for adding ingredients
type CreateIngredientCommand struct {
	Name     string
	Amount   float64
	Unit     string
	Optional bool
	Notes    string
}

// PaginationParams for paginated queries
type PaginationParams struct {
	Page     int
	PageSize int
}

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	AuthorID     uuid.UUID        `json:"author_id"`
	Ingredients  []IngredientDTO  `json:"ingredients"`
	Instructions []InstructionDTO `json:"instructions"`
	Servings     int              `json:"servings"`
	Status       recipe.Status    `json:"status"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
	PublishedAt  *string          `json:"published_at,omitempty"`
}

// IngredientDTO for ingredient data
type IngredientDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Unit     string    `json:"unit"`
	Optional bool      `json:"optional"`
	Notes    string    `json:"notes,omitempty"`
}

// InstructionDTO for instruction data
type InstructionDTO struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

// RecipeList for paginated results
type RecipeList struct {
	Recipes    []RecipeDTO `json:"recipes"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
