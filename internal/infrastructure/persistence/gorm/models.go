// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Version     int64     `gorm:"default:1"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	AuthorID    uuid.UUID `gorm:"type:char(36);not null;index"`

	Ingredients  IngredientRecords  `gorm:"type:json"`
	Instructions InstructionRecords `gorm:"type:json"`
	Servings     int                `gorm:"default:0"`

	Status      string     `gorm:"type:varchar(20);default:'draft';index"`
	PublishedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// GroceryListModel represents the GORM model for grocery lists
type GroceryListModel struct {
	ID            uuid.UUID          `gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID          `gorm:"type:char(36);not null;index"`
	Title         string             `gorm:"type:varchar(255);not null"`
	Items         GroceryItemRecords `gorm:"type:json"`
	GeneratedFrom UUIDSlice          `gorm:"type:json"`
	CreatedAt     time.Time          `gorm:"index"`
	UpdatedAt     time.Time
}

func (GroceryListModel) TableName() string {
	return "grocery_lists"
}

// CookbookModel represents the GORM model for cookbooks
type CookbookModel struct {
	ID          uuid.UUID     `gorm:"type:char(36);primaryKey"`
	Title       string        `gorm:"type:varchar(255);not null"`
	Description string        `gorm:"type:text"`
	OwnerID     uuid.UUID     `gorm:"type:char(36);not null;index"`
	Public      bool          `gorm:"default:false;index"`
	Members     MemberRecords `gorm:"type:json"`
	RecipeIDs   UUIDSlice     `gorm:"type:json"`
	CreatedAt   time.Time     `gorm:"index"`
	UpdatedAt   time.Time
}

func (CookbookModel) TableName() string {
	return "cookbooks"
}

// IngredientRecord is the persisted shape of a recipe ingredient line
type IngredientRecord struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Unit     string    `json:"unit"`
	Optional bool      `json:"optional"`
	Notes    string    `json:"notes,omitempty"`
}

// InstructionRecord is the persisted shape of a recipe instruction step
type InstructionRecord struct {
	StepNumber  int           `json:"step_number"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration,omitempty"`
}

// GroceryItemRecord is the persisted shape of an aggregated grocery item
type GroceryItemRecord struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Amount    float64     `json:"amount"`
	Unit      string      `json:"unit"`
	Category  string      `json:"category"`
	Notes     string      `json:"notes,omitempty"`
	RecipeIDs []uuid.UUID `json:"recipe_ids"`
}

// MemberRecord is the persisted shape of a cookbook membership entry
type MemberRecord struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

func scanJSON(value interface{}, target interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, target)
	case string:
		return json.Unmarshal([]byte(v), target)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, target)
	}
}

// IngredientRecords custom type for handling ingredient slices in JSON
type IngredientRecords []IngredientRecord

// Scan implements the sql.Scanner interface
func (r *IngredientRecords) Scan(value interface{}) error {
	*r = IngredientRecords{}
	return scanJSON(value, r)
}

// Value implements the driver.Valuer interface
func (r IngredientRecords) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// InstructionRecords custom type for handling instruction slices in JSON
type InstructionRecords []InstructionRecord

// Scan implements the sql.Scanner interface
func (r *InstructionRecords) Scan(value interface{}) error {
	*r = InstructionRecords{}
	return scanJSON(value, r)
}

// Value implements the driver.Valuer interface
func (r InstructionRecords) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// GroceryItemRecords custom type for handling grocery item slices in JSON
type GroceryItemRecords []GroceryItemRecord

// Scan implements the sql.Scanner interface
func (r *GroceryItemRecords) Scan(value interface{}) error {
	*r = GroceryItemRecords{}
	return scanJSON(value, r)
}

// Value implements the driver.Valuer interface
func (r GroceryItemRecords) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// MemberRecords custom type for handling membership slices in JSON
type MemberRecords []MemberRecord

// Scan implements the sql.Scanner interface
func (r *MemberRecords) Scan(value interface{}) error {
	*r = MemberRecords{}
	return scanJSON(value, r)
}

// Value implements the driver.Valuer interface
func (r MemberRecords) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	return json.Marshal(r)
}

// UUIDSlice custom type for handling UUID slices in JSON
type UUIDSlice []uuid.UUID

// Scan implements the sql.Scanner interface
func (s *UUIDSlice) Scan(value interface{}) error {
	*s = UUIDSlice{}
	return scanJSON(value, s)
}

// Value implements the driver.Valuer interface
func (s UUIDSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}
