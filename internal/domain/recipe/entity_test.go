package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) validRecipe() *Recipe {
	r, err := NewRecipe("Spaghetti Carbonara", "A classic Italian pasta dish", uuid.New())
	require.NoError(suite.T(), err)
	r.Events()
	return r
}

// TestRecipeCreation tests recipe creation scenarios
func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Arrange
		title := "Spaghetti Carbonara"
		description := "A classic Italian pasta dish"
		authorID := uuid.New()

		// Act
		r, err := NewRecipe(title, description, authorID)

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r)

		assert.Equal(suite.T(), title, r.Title())
		assert.Equal(suite.T(), description, r.Description())
		assert.Equal(suite.T(), authorID, r.AuthorID())
		assert.NotEqual(suite.T(), uuid.Nil, r.ID())
		assert.Equal(suite.T(), StatusDraft, r.Status())
		assert.NotZero(suite.T(), r.CreatedAt())
		assert.NotZero(suite.T(), r.UpdatedAt())
		assert.Equal(suite.T(), int64(1), r.Version())

		// Check domain events
		events := r.Events()
		require.Len(suite.T(), events, 1)

		createdEvent, ok := events[0].(CreatedEvent)
		assert.True(suite.T(), ok, "Should emit CreatedEvent")
		assert.Equal(suite.T(), r.ID(), createdEvent.RecipeID)
		assert.Equal(suite.T(), authorID, createdEvent.AuthorID)
	})

	suite.Run("EmptyTitle_ShouldReturnError", func() {
		// Act
		r, err := NewRecipe("", "Valid description", uuid.New())

		// Assert
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrTitleTooShort, err)
	})

	suite.Run("TitleTooLong_ShouldReturnError", func() {
		// Arrange
		title := string(make([]byte, 201))

		// Act
		r, err := NewRecipe(title, "Valid description", uuid.New())

		// Assert
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrTitleTooLong, err)
	})

	suite.Run("DescriptionTooLong_ShouldReturnError", func() {
		// Arrange
		description := string(make([]byte, 2001))

		// Act
		r, err := NewRecipe("Valid Title", description, uuid.New())

		// Assert
		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrDescriptionTooLong, err)
	})
}

// TestRecipeModification tests recipe modification scenarios
func (suite *RecipeTestSuite) TestRecipeModification() {
	suite.Run("UpdateTitle_ShouldSucceedAndEmitEvent", func() {
		// Arrange
		r := suite.validRecipe()

		// Act
		err := r.UpdateTitle("Spaghetti alla Gricia")

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Spaghetti alla Gricia", r.Title())

		events := r.Events()
		require.Len(suite.T(), events, 1)
		updated, ok := events[0].(TitleUpdatedEvent)
		assert.True(suite.T(), ok)
		assert.Equal(suite.T(), "Spaghetti Carbonara", updated.OldTitle)
		assert.Equal(suite.T(), "Spaghetti alla Gricia", updated.NewTitle)
	})

	suite.Run("UpdateTitle_Invalid_ShouldKeepOldTitle", func() {
		// Arrange
		r := suite.validRecipe()

		// Act
		err := r.UpdateTitle("AB")

		// Assert
		assert.Equal(suite.T(), ErrTitleTooShort, err)
		assert.Equal(suite.T(), "Spaghetti Carbonara", r.Title())
	})

	suite.Run("UpdateServings_ShouldSucceed", func() {
		// Arrange
		r := suite.validRecipe()

		// Act
		err := r.UpdateServings(6)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 6, r.Servings())
	})

	suite.Run("UpdateServings_NonPositive_ShouldReturnError", func() {
		// Arrange
		r := suite.validRecipe()

		// Act & Assert
		assert.Equal(suite.T(), ErrInvalidServings, r.UpdateServings(0))
		assert.Equal(suite.T(), ErrInvalidServings, r.UpdateServings(-2))
	})

	suite.Run("AddIngredient_ShouldAppendAndEmitEvent", func() {
		// Arrange
		r := suite.validRecipe()
		ingredient := Ingredient{
			ID:     uuid.New(),
			Name:   "guanciale",
			Amount: 150,
			Unit:   "g",
		}

		// Act
		err := r.AddIngredient(ingredient)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), r.Ingredients(), 1)
		assert.Equal(suite.T(), "guanciale", r.Ingredients()[0].Name)

		events := r.Events()
		require.Len(suite.T(), events, 1)
		added, ok := events[0].(IngredientAddedEvent)
		assert.True(suite.T(), ok)
		assert.Equal(suite.T(), ingredient.ID, added.IngredientID)
	})

	suite.Run("AddIngredient_Invalid_ShouldReturnError", func() {
		// Arrange
		r := suite.validRecipe()

		// Act
		err := r.AddIngredient(Ingredient{ID: uuid.New(), Name: "", Amount: 1})

		// Assert
		assert.Error(suite.T(), err)
		assert.Empty(suite.T(), r.Ingredients())
	})

	suite.Run("AddInstruction_ShouldNumberStepsSequentially", func() {
		// Arrange
		r := suite.validRecipe()

		// Act
		require.NoError(suite.T(), r.AddInstruction(Instruction{Description: "Boil the pasta"}))
		require.NoError(suite.T(), r.AddInstruction(Instruction{Description: "Fry the guanciale"}))

		// Assert
		require.Len(suite.T(), r.Instructions(), 2)
		assert.Equal(suite.T(), 1, r.Instructions()[0].StepNumber)
		assert.Equal(suite.T(), 2, r.Instructions()[1].StepNumber)
	})
}

// TestRecipeLifecycle tests publish and archive transitions
func (suite *RecipeTestSuite) TestRecipeLifecycle() {
	suite.Run("Publish_CompleteDraft_ShouldSucceed", func() {
		// Arrange
		r := suite.validRecipe()
		require.NoError(suite.T(), r.UpdateServings(4))
		require.NoError(suite.T(), r.AddIngredient(Ingredient{ID: uuid.New(), Name: "eggs", Amount: 4}))
		r.Events()

		// Act
		err := r.Publish()

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), StatusPublished, r.Status())
		require.NotNil(suite.T(), r.PublishedAt())

		events := r.Events()
		require.Len(suite.T(), events, 1)
		_, ok := events[0].(PublishedEvent)
		assert.True(suite.T(), ok)
	})

	suite.Run("Publish_WithoutIngredients_ShouldReturnError", func() {
		// Arrange
		r := suite.validRecipe()
		require.NoError(suite.T(), r.UpdateServings(4))

		// Act & Assert
		assert.Equal(suite.T(), ErrNoIngredients, r.Publish())
		assert.Equal(suite.T(), StatusDraft, r.Status())
	})

	suite.Run("Publish_WithoutServings_ShouldReturnError", func() {
		// Arrange
		r := suite.validRecipe()
		require.NoError(suite.T(), r.AddIngredient(Ingredient{ID: uuid.New(), Name: "eggs", Amount: 4}))

		// Act & Assert
		assert.Equal(suite.T(), ErrInvalidServings, r.Publish())
	})

	suite.Run("Publish_Twice_ShouldReturnError", func() {
		// Arrange
		r := suite.validRecipe()
		require.NoError(suite.T(), r.UpdateServings(4))
		require.NoError(suite.T(), r.AddIngredient(Ingredient{ID: uuid.New(), Name: "eggs", Amount: 4}))
		require.NoError(suite.T(), r.Publish())

		// Act & Assert
		assert.Equal(suite.T(), ErrInvalidStatusTransition, r.Publish())
	})

	suite.Run("Archive_Published_ShouldSucceed", func() {
		// Arrange
		r := suite.validRecipe()
		require.NoError(suite.T(), r.UpdateServings(4))
		require.NoError(suite.T(), r.AddIngredient(Ingredient{ID: uuid.New(), Name: "eggs", Amount: 4}))
		require.NoError(suite.T(), r.Publish())

		// Act
		err := r.Archive()

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), StatusArchived, r.Status())
	})

	suite.Run("Archive_Draft_ShouldReturnError", func() {
		// Arrange
		r := suite.validRecipe()

		// Act & Assert
		assert.Equal(suite.T(), ErrInvalidStatusTransition, r.Archive())
	})
}

// TestRecipeVisibility tests read access rules
func (suite *RecipeTestSuite) TestRecipeVisibility() {
	suite.Run("Draft_ShouldBeVisibleToAuthorOnly", func() {
		// Arrange
		authorID := uuid.New()
		r, err := NewRecipe("Secret Sauce", "", authorID)
		require.NoError(suite.T(), err)

		// Act & Assert
		assert.True(suite.T(), r.IsViewableBy(authorID))
		assert.False(suite.T(), r.IsViewableBy(uuid.New()))
	})

	suite.Run("Published_ShouldBeVisibleToEveryone", func() {
		// Arrange
		r := suite.validRecipe()
		require.NoError(suite.T(), r.UpdateServings(4))
		require.NoError(suite.T(), r.AddIngredient(Ingredient{ID: uuid.New(), Name: "eggs", Amount: 4}))
		require.NoError(suite.T(), r.Publish())

		// Act & Assert
		assert.True(suite.T(), r.IsViewableBy(uuid.New()))
	})

	suite.Run("Archived_ShouldBeVisibleToAuthorOnly", func() {
		// Arrange
		authorID := uuid.New()
		r, err := NewRecipe("Retired Classic", "", authorID)
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), r.UpdateServings(4))
		require.NoError(suite.T(), r.AddIngredient(Ingredient{ID: uuid.New(), Name: "eggs", Amount: 4}))
		require.NoError(suite.T(), r.Publish())
		require.NoError(suite.T(), r.Archive())

		// Act & Assert
		assert.True(suite.T(), r.IsViewableBy(authorID))
		assert.False(suite.T(), r.IsViewableBy(uuid.New()))
	})
}

// TestRecipeTestSuite runs the test suite
func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
