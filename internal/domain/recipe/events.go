package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the recipe domain

// CreatedEvent is raised when a new recipe is created
type CreatedEvent struct {
	RecipeID  uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	CreatedAt time.Time
}

func (e CreatedEvent) EventName() string {
	return "recipe.created"
}

func (e CreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// TitleUpdatedEvent is raised when a recipe title is updated
type TitleUpdatedEvent struct {
	RecipeID  uuid.UUID
	OldTitle  string
	NewTitle  string
	UpdatedAt time.Time
}

func (e TitleUpdatedEvent) EventName() string {
	return "recipe.title.updated"
}

func (e TitleUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// PublishedEvent is raised when a recipe is published
type PublishedEvent struct {
	RecipeID    uuid.UUID
	PublishedAt time.Time
}

func (e PublishedEvent) EventName() string {
	return "recipe.published"
}

func (e PublishedEvent) OccurredAt() time.Time {
	return e.PublishedAt
}

// ArchivedEvent is raised when a recipe is archived
type ArchivedEvent struct {
	RecipeID   uuid.UUID
	ArchivedAt time.Time
}

func (e ArchivedEvent) EventName() string {
	return "recipe.archived"
}

func (e ArchivedEvent) OccurredAt() time.Time {
	return e.ArchivedAt
}

// IngredientAddedEvent is raised when an ingredient is added
type IngredientAddedEvent struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	AddedAt      time.Time
}

func (e IngredientAddedEvent) EventName() string {
	return "recipe.ingredient.added"
}

func (e IngredientAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}
