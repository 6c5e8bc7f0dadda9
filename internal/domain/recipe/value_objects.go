package recipe

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Ingredient represents an ingredient line within a recipe
type Ingredient struct {
	ID       uuid.UUID
	Name     string
	Amount   float64
	Unit     string
	Optional bool
	Notes    string
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name is required")
	}
	if i.Amount < 0 {
		return errors.New("ingredient amount cannot be negative")
	}
	return nil
}

// Instruction represents a cooking instruction step
type Instruction struct {
	StepNumber  int
	Description string
	Duration    time.Duration
}

// Validate validates the instruction
func (i Instruction) Validate() error {
	if i.Description == "" {
		return errors.New("instruction description is required")
	}
	if len(i.Description) > 1000 {
		return errors.New("instruction description too long")
	}
	return nil
}

// Status represents the lifecycle state of a recipe
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

const (
	minTitleLength       = 3
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

func validateTitle(title string) error {
	if len(title) < minTitleLength {
		return ErrTitleTooShort
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
