// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/forkful/v2/internal/domain/cookbook"
	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/google/uuid"
)

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient generates a random valid ingredient
func (f *RecipeFactory) Ingredient() recipe.Ingredient {
	units := []string{"cup", "tbsp", "tsp", "g", "lbs", "pieces", "cloves"}
	return recipe.Ingredient{
		ID:     uuid.New(),
		Name:   f.faker.Vegetable(),
		Amount: float64(f.faker.Number(1, 8)),
		Unit:   units[f.faker.Number(0, len(units)-1)],
	}
}

// Draft generates a random draft recipe with ingredients and servings
func (f *RecipeFactory) Draft() *recipe.Recipe {
	r, err := recipe.NewRecipe(
		fmt.Sprintf("%s %s", f.faker.Adjective(), f.faker.Dinner()),
		f.faker.Sentence(8),
		uuid.New(),
	)
	if err != nil {
		panic(err)
	}

	if err := r.UpdateServings(f.faker.Number(1, 8)); err != nil {
		panic(err)
	}
	for i := 0; i < f.faker.Number(2, 5); i++ {
		if err := r.AddIngredient(f.Ingredient()); err != nil {
			panic(err)
		}
	}
	if err := r.AddInstruction(recipe.Instruction{Description: f.faker.Sentence(10)}); err != nil {
		panic(err)
	}

	r.Events()
	return r
}

// Published generates a random published recipe
func (f *RecipeFactory) Published() *recipe.Recipe {
	r := f.Draft()
	if err := r.Publish(); err != nil {
		panic(err)
	}
	r.Events()
	return r
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	title       string
	description string
	authorID    uuid.UUID
	ingredients []recipe.Ingredient
	servings    int
	published   bool
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		title:       fmt.Sprintf("%s %s", faker.Adjective(), faker.Dinner()),
		description: faker.Sentence(8),
		authorID:    uuid.New(),
		servings:    4,
	}
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.title = title
	return rb
}

// WithAuthor sets the recipe author
func (rb *RecipeBuilder) WithAuthor(authorID uuid.UUID) *RecipeBuilder {
	rb.authorID = authorID
	return rb
}

// WithServings sets the number of servings
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.servings = servings
	return rb
}

// WithIngredient appends an ingredient line
func (rb *RecipeBuilder) WithIngredient(name string, amount float64, unit string) *RecipeBuilder {
	rb.ingredients = append(rb.ingredients, recipe.Ingredient{
		ID:     uuid.New(),
		Name:   name,
		Amount: amount,
		Unit:   unit,
	})
	return rb
}

// WithIngredientNotes appends an ingredient line carrying notes
func (rb *RecipeBuilder) WithIngredientNotes(name string, amount float64, unit, notes string) *RecipeBuilder {
	rb.ingredients = append(rb.ingredients, recipe.Ingredient{
		ID:     uuid.New(),
		Name:   name,
		Amount: amount,
		Unit:   unit,
		Notes:  notes,
	})
	return rb
}

// Published marks the recipe for publication on Build
func (rb *RecipeBuilder) Published() *RecipeBuilder {
	rb.published = true
	return rb
}

// Build constructs the recipe with validation
func (rb *RecipeBuilder) Build() (*recipe.Recipe, error) {
	r, err := recipe.NewRecipe(rb.title, rb.description, rb.authorID)
	if err != nil {
		return nil, err
	}

	if rb.servings > 0 {
		if err := r.UpdateServings(rb.servings); err != nil {
			return nil, err
		}
	}
	for _, ingredient := range rb.ingredients {
		if err := r.AddIngredient(ingredient); err != nil {
			return nil, err
		}
	}
	if rb.published {
		if err := r.AddInstruction(recipe.Instruction{Description: "Combine everything and cook."}); err != nil {
			return nil, err
		}
		if err := r.Publish(); err != nil {
			return nil, err
		}
	}

	r.Events()
	return r, nil
}

// MustBuild constructs the recipe and panics on validation failure
func (rb *RecipeBuilder) MustBuild() *recipe.Recipe {
	r, err := rb.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// CookbookFactory provides methods to create test cookbooks
type CookbookFactory struct {
	faker *gofakeit.Faker
}

// NewCookbookFactory creates a new cookbook factory with seeded faker
func NewCookbookFactory(seed int64) *CookbookFactory {
	return &CookbookFactory{
		faker: gofakeit.New(seed),
	}
}

// Cookbook generates a random private cookbook for the given owner
func (f *CookbookFactory) Cookbook(ownerID uuid.UUID) *cookbook.Cookbook {
	c, err := cookbook.NewCookbook(
		fmt.Sprintf("%s Favorites", f.faker.Adjective()),
		f.faker.Sentence(6),
		ownerID,
	)
	if err != nil {
		panic(err)
	}
	c.Events()
	return c
}
