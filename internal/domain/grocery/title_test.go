package grocery

import (
	"testing"

	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titledRecipe(t *testing.T, title string) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(title, "", uuid.New())
	require.NoError(t, err)
	return r
}

func TestListTitle(t *testing.T) {
	t.Run("NoRecipes_ShouldUseBaseTitle", func(t *testing.T) {
		assert.Equal(t, "Grocery List", ListTitle(nil))
		assert.Equal(t, "Grocery List", ListTitle([]*recipe.Recipe{}))
	})

	t.Run("SingleRecipe_ShouldNameIt", func(t *testing.T) {
		recipes := []*recipe.Recipe{titledRecipe(t, "Pasta Primavera")}

		assert.Equal(t, "Grocery List for Pasta Primavera", ListTitle(recipes))
	})

	t.Run("ThreeRecipes_ShouldJoinTitlesWithCommas", func(t *testing.T) {
		recipes := []*recipe.Recipe{
			titledRecipe(t, "Pasta"),
			titledRecipe(t, "Salad"),
			titledRecipe(t, "Soup"),
		}

		assert.Equal(t, "Grocery List for Pasta, Salad, Soup", ListTitle(recipes))
	})

	t.Run("FourRecipes_ShouldFallBackToCount", func(t *testing.T) {
		recipes := []*recipe.Recipe{
			titledRecipe(t, "Pasta"),
			titledRecipe(t, "Salad"),
			titledRecipe(t, "Soup"),
			titledRecipe(t, "Stew"),
		}

		assert.Equal(t, "Grocery List for 4 Recipes", ListTitle(recipes))
	})
}
