package inbound

import (
	"context"

	"github.com/google/uuid"
)

// CookbookService defines the use cases for cookbook management
type CookbookService interface {
	// Commands - operations that modify state
	CreateCookbook(ctx context.Context, cmd CreateCookbookCommand) (*CookbookDTO, error)
	AddRecipeToCookbook(ctx context.Context, cookbookID, recipeID, userID uuid.UUID) error
	RemoveRecipeFromCookbook(ctx context.Context, cookbookID, recipeID, userID uuid.UUID) error
	AddMember(ctx context.Context, cmd AddMemberCommand) error
	RemoveMember(ctx context.Context, cookbookID, memberID, userID uuid.UUID) error
	SetVisibility(ctx context.Context, cookbookID, userID uuid.UUID, public bool) error
	DeleteCookbook(ctx context.Context, cookbookID, userID uuid.UUID) error

	// Queries - operations that read state
	GetCookbook(ctx context.Context, cookbookID, userID uuid.UUID) (*CookbookDTO, error)
	ListCookbooks(ctx context.Context, userID uuid.UUID) ([]CookbookDTO, error)
}

// CreateCookbookCommand contains data for creating a cookbook
type CreateCookbookCommand struct {
	Title       string
	Description string
	OwnerID     uuid.UUID
	Public      bool
}

// AddMemberCommand grants a role on a cookbook
type AddMemberCommand struct {
	CookbookID uuid.UUID
	MemberID   uuid.UUID
	Role       string
	UserID     uuid.UUID // acting user
}

// CookbookDTO is the data transfer object for cookbooks
type CookbookDTO struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	Public      bool        `json:"public"`
	RecipeIDs   []uuid.UUID `json:"recipe_ids"`
	Members     []MemberDTO `json:"members"`
	Role        string      `json:"role"` // requesting user's resolved role
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// MemberDTO is a cookbook membership entry
type MemberDTO struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}
