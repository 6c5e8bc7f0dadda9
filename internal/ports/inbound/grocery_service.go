// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/forkful/v2/internal/domain/grocery"
	"github.com/google/uuid"
)

// GroceryService defines the use cases for grocery list generation and management
// This is the primary port that HTTP handlers and other driving adapters will use
type GroceryService interface {
	// Commands - operations that modify state
	GenerateGroceryList(ctx context.Context, cmd GenerateGroceryListCommand) (*GroceryListDTO, error)
	DeleteGroceryList(ctx context.Context, listID, userID uuid.UUID) error

	// Queries - operations that read state
	GetGroceryList(ctx context.Context, listID, userID uuid.UUID) (*GroceryListDTO, error)
	ListGroceryLists(ctx context.Context, userID uuid.UUID) ([]GroceryListSummaryDTO, error)
}

// GenerateGroceryListCommand contains data for generating a grocery list
type GenerateGroceryListCommand struct {
	UserID             uuid.UUID
	RecipeIDs          []uuid.UUID
	ServingAdjustments map[uuid.UUID]int
	Title              string // optional; synthesized from recipe titles when empty
}

// GroceryListDTO is the data transfer object for grocery lists
type GroceryListDTO struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"user_id"`
	Title         string           `json:"title"`
	Items         []GroceryItemDTO `json:"items"`
	GeneratedFrom []uuid.UUID      `json:"generated_from"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

// GroceryItemDTO is a single aggregated grocery line
type GroceryItemDTO struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Amount    float64          `json:"amount"`
	Unit      string           `json:"unit"`
	Category  grocery.Category `json:"category"`
	Notes     string           `json:"notes,omitempty"`
	RecipeIDs []uuid.UUID      `json:"recipe_ids"`
}

// GroceryListSummaryDTO is a lightweight listing entry
type GroceryListSummaryDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ItemCount int       `json:"item_count"`
	CreatedAt string    `json:"created_at"`
}
