package cookbook

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the cookbook domain

// CreatedEvent is raised when a new cookbook is created
type CreatedEvent struct {
	CookbookID uuid.UUID
	OwnerID    uuid.UUID
	Title      string
	CreatedAt  time.Time
}

func (e CreatedEvent) EventName() string {
	return "cookbook.created"
}

func (e CreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// MemberAddedEvent is raised when a user is granted a role
type MemberAddedEvent struct {
	CookbookID uuid.UUID
	UserID     uuid.UUID
	Role       Role
	AddedAt    time.Time
}

func (e MemberAddedEvent) EventName() string {
	return "cookbook.member.added"
}

func (e MemberAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// RecipeAddedEvent is raised when a recipe is collected into a cookbook
type RecipeAddedEvent struct {
	CookbookID uuid.UUID
	RecipeID   uuid.UUID
	UserID     uuid.UUID
	AddedAt    time.Time
}

func (e RecipeAddedEvent) EventName() string {
	return "cookbook.recipe.added"
}

func (e RecipeAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}
