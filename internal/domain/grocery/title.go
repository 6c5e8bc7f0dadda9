package grocery

import (
	"fmt"
	"strings"

	"github.com/forkful/v2/internal/domain/recipe"
)

const baseTitle = "Grocery List"

// maxTitledRecipes is the largest recipe count whose titles are spelled
// out; beyond it the title falls back to a count.
const maxTitledRecipes = 3

// ListTitle derives a human-readable grocery list title from the recipes
// it was generated from: no recipes yields the bare title, up to three
// recipes spell out their titles in input order, and more than three
// collapse to a count.
func ListTitle(recipes []*recipe.Recipe) string {
	switch {
	case len(recipes) == 0:
		return baseTitle
	case len(recipes) <= maxTitledRecipes:
		titles := make([]string, len(recipes))
		for i, r := range recipes {
			titles[i] = r.Title()
		}
		return fmt.Sprintf("%s for %s", baseTitle, strings.Join(titles, ", "))
	default:
		return fmt.Sprintf("%s for %d Recipes", baseTitle, len(recipes))
	}
}
