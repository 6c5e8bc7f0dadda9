package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	t.Run("KnownNames_ShouldMapToExpectedCategories", func(t *testing.T) {
		cases := map[string]Category{
			"tomatoes":          CategoryProduce,
			"yellow onion":      CategoryProduce,
			"whole milk":        CategoryDairy,
			"cheddar cheese":    CategoryDairy,
			"chicken breast":    CategoryMeat,
			"ground beef":       CategoryMeat,
			"salmon fillet":     CategorySeafood,
			"all-purpose flour": CategoryPantry,
			"sea salt":          CategorySpices,
			"olive oil":         CategoryCondiments,
			"frozen peas":       CategoryFrozen,
			"sourdough bread":   CategoryBakery,
			"coffee":            CategoryBeverages,
		}

		for name, expected := range cases {
			assert.Equal(t, expected, Categorize(name), "name: %s", name)
		}
	})

	t.Run("Casing_ShouldNotAffectResult", func(t *testing.T) {
		assert.Equal(t, CategoryProduce, Categorize("Tomatoes"))
		assert.Equal(t, CategoryProduce, Categorize("tomatoes"))
		assert.Equal(t, CategoryProduce, Categorize("TOMATOES"))
		assert.Equal(t, CategoryProduce, Categorize("  ToMaToEs  "))
	})

	t.Run("UnknownName_ShouldFallBackToOther", func(t *testing.T) {
		assert.Equal(t, CategoryOther, Categorize("unobtainium"))
		assert.Equal(t, CategoryOther, Categorize("xyzzy"))
	})

	t.Run("EmptyOrBlankName_ShouldFallBackToOther", func(t *testing.T) {
		assert.Equal(t, CategoryOther, Categorize(""))
		assert.Equal(t, CategoryOther, Categorize("   "))
	})

	t.Run("CompoundNames_ShouldNotBeMisfiledByTheirParts", func(t *testing.T) {
		// Entries earlier in the table win, so compound pantry names beat
		// the meat and dairy keywords embedded in them.
		assert.Equal(t, CategoryPantry, Categorize("chicken broth"))
		assert.Equal(t, CategoryPantry, Categorize("beef stock"))
		assert.Equal(t, CategoryPantry, Categorize("coconut milk"))
		assert.Equal(t, CategoryPantry, Categorize("peanut butter"))
		assert.Equal(t, CategorySpices, Categorize("black pepper"))
		assert.Equal(t, CategoryFrozen, Categorize("ice cream"))
		assert.Equal(t, CategoryProduce, Categorize("eggplant"))
		assert.Equal(t, CategoryProduce, Categorize("butternut squash"))
	})

	t.Run("ShortNames_ShouldMatchLongerTableKeys", func(t *testing.T) {
		// Containment runs in both directions, so a name shorter than a
		// table key still matches it.
		assert.Equal(t, CategoryBeverages, Categorize("tea"))
	})

	t.Run("Categorize_ShouldBeIdempotent", func(t *testing.T) {
		names := []string{"Tomatoes", "chicken broth", "unobtainium", "Olive Oil"}
		for _, name := range names {
			first := Categorize(name)
			assert.Equal(t, first, Categorize(name))
			assert.Equal(t, first, Categorize(name))
		}
	})
}

func TestDisplayRank(t *testing.T) {
	t.Run("Categories_ShouldSortInAisleOrder", func(t *testing.T) {
		assert.Less(t, CategoryProduce.DisplayRank(), CategoryDairy.DisplayRank())
		assert.Less(t, CategoryDairy.DisplayRank(), CategoryMeat.DisplayRank())
		assert.Less(t, CategoryMeat.DisplayRank(), CategorySeafood.DisplayRank())
		assert.Less(t, CategoryPantry.DisplayRank(), CategorySpices.DisplayRank())
		assert.Less(t, CategoryBeverages.DisplayRank(), CategoryOther.DisplayRank())
	})

	t.Run("UnknownCategory_ShouldSortLast", func(t *testing.T) {
		assert.Greater(t, Category("mystery").DisplayRank(), CategoryOther.DisplayRank())
	})
}
