// Package recipe contains the core domain logic for recipe management.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"time"

	"github.com/forkful/v2/internal/domain/shared"
	"github.com/google/uuid"
)

// Recipe represents the core recipe entity in our domain.
// It encapsulates all business logic related to recipes.
type Recipe struct {
	// Aggregate root identifier
	id      uuid.UUID
	version int64 // Optimistic locking

	// Basic attributes
	title       string
	description string
	authorID    uuid.UUID

	// Recipe details
	ingredients  []Ingredient
	instructions []Instruction
	servings     int

	// Metadata
	status      Status
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	// Domain events to be dispatched
	events []shared.DomainEvent
}

// NewRecipe creates a new Recipe with validation
func NewRecipe(title, description string, authorID uuid.UUID) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if len(description) > maxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	now := time.Now()
	r := &Recipe{
		id:          uuid.New(),
		version:     1,
		title:       title,
		description: description,
		authorID:    authorID,
		status:      StatusDraft,
		createdAt:   now,
		updatedAt:   now,
	}

	r.addEvent(CreatedEvent{
		RecipeID:  r.id,
		AuthorID:  authorID,
		Title:     title,
		CreatedAt: now,
	})

	return r, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Version returns the recipe's version
func (r *Recipe) Version() int64 {
	return r.version
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// AuthorID returns the recipe's author ID
func (r *Recipe) AuthorID() uuid.UUID {
	return r.authorID
}

// Ingredients returns the recipe's ingredients
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// Instructions returns the recipe's instructions
func (r *Recipe) Instructions() []Instruction {
	return r.instructions
}

// Servings returns the number of servings the recipe yields
func (r *Recipe) Servings() int {
	return r.servings
}

// Status returns the recipe status
func (r *Recipe) Status() Status {
	return r.status
}

// PublishedAt returns when the recipe was published
func (r *Recipe) PublishedAt() *time.Time {
	return r.publishedAt
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsViewableBy reports whether the given user may read this recipe.
// Published recipes are public; drafts and archived recipes are
// visible to their author only.
func (r *Recipe) IsViewableBy(userID uuid.UUID) bool {
	if r.authorID == userID {
		return true
	}
	return r.status == StatusPublished
}

// UpdateTitle updates the recipe title with validation
func (r *Recipe) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	oldTitle := r.title
	r.title = title
	r.touch()

	r.addEvent(TitleUpdatedEvent{
		RecipeID:  r.id,
		OldTitle:  oldTitle,
		NewTitle:  title,
		UpdatedAt: r.updatedAt,
	})

	return nil
}

// UpdateServings sets the serving count the recipe yields
func (r *Recipe) UpdateServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}

	r.servings = servings
	r.touch()
	return nil
}

// AddIngredient adds a new ingredient to the recipe
func (r *Recipe) AddIngredient(ingredient Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	r.ingredients = append(r.ingredients, ingredient)
	r.touch()

	r.addEvent(IngredientAddedEvent{
		RecipeID:     r.id,
		IngredientID: ingredient.ID,
		AddedAt:      r.updatedAt,
	})

	return nil
}

// AddInstruction adds a new instruction step
func (r *Recipe) AddInstruction(instruction Instruction) error {
	if err := instruction.Validate(); err != nil {
		return err
	}

	instruction.StepNumber = len(r.instructions) + 1
	r.instructions = append(r.instructions, instruction)
	r.touch()

	return nil
}

// Publish publishes the recipe making it publicly visible
func (r *Recipe) Publish() error {
	if r.status != StatusDraft {
		return ErrInvalidStatusTransition
	}

	if len(r.ingredients) == 0 {
		return ErrNoIngredients
	}
	if r.servings <= 0 {
		return ErrInvalidServings
	}

	now := time.Now()
	r.status = StatusPublished
	r.publishedAt = &now
	r.updatedAt = now

	r.addEvent(PublishedEvent{
		RecipeID:    r.id,
		PublishedAt: now,
	})

	return nil
}

// Archive archives the recipe
func (r *Recipe) Archive() error {
	if r.status != StatusPublished {
		return ErrInvalidStatusTransition
	}

	r.status = StatusArchived
	r.touch()

	r.addEvent(ArchivedEvent{
		RecipeID:   r.id,
		ArchivedAt: r.updatedAt,
	})

	return nil
}

// Events returns and clears pending domain events
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = nil
	return events
}

func (r *Recipe) touch() {
	r.updatedAt = time.Now()
}

func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// Rehydrate reconstructs a recipe from persisted state. It bypasses
// creation-time validation and raises no domain events; repositories
// are the only intended callers.
func Rehydrate(
	id uuid.UUID,
	version int64,
	title, description string,
	authorID uuid.UUID,
	ingredients []Ingredient,
	instructions []Instruction,
	servings int,
	status Status,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:           id,
		version:      version,
		title:        title,
		description:  description,
		authorID:     authorID,
		ingredients:  ingredients,
		instructions: instructions,
		servings:     servings,
		status:       status,
		publishedAt:  publishedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
