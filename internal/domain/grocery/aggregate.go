package grocery

import (
	"sort"
	"strings"

	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/google/uuid"
)

// ServingAdjustments maps a recipe ID to a desired serving count. A missing
// entry means the recipe is used at its stored serving size (scale factor 1).
type ServingAdjustments map[uuid.UUID]int

// Item is an aggregated, categorized, cross-recipe ingredient entry ready
// for shopping. Items are created fresh on every aggregation; their IDs are
// never reused from source ingredients.
type Item struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Amount    float64     `json:"amount"`
	Unit      string      `json:"unit"`
	Category  Category    `json:"category"`
	Notes     string      `json:"notes"`
	RecipeIDs []uuid.UUID `json:"recipe_ids"`
}

// GenerateItems aggregates the ingredients of the given recipes into a
// sorted, deduplicated grocery item list.
//
// Ingredient lines merge when they share a (name, unit) key, compared
// case-insensitively after trimming. Within a merged item amounts sum,
// the name and unit keep the casing of the first-seen line, notes are
// joined with "; " skipping empties, and RecipeIDs records every recipe
// that contributed at least once, in first-seen order.
//
// When a serving adjustment exists for a recipe, every ingredient amount
// from that recipe scales linearly by target/stored servings; a recipe
// without a stored serving count scales as if it served one.
//
// The result is sorted by the fixed category display order, then by item
// name ascending (case-insensitive). The function never mutates its inputs.
func GenerateItems(recipes []*recipe.Recipe, adjustments ServingAdjustments) []Item {
	groups := make(map[string]*Item)
	keyOrder := make([]string, 0)

	for _, r := range recipes {
		scale := 1.0
		if target, ok := adjustments[r.ID()]; ok {
			base := r.Servings()
			if base <= 0 {
				base = 1
			}
			scale = float64(target) / float64(base)
		}

		for _, ing := range r.Ingredients() {
			name := strings.TrimSpace(ing.Name)
			unit := strings.TrimSpace(ing.Unit)
			key := strings.ToLower(name) + "\x00" + strings.ToLower(unit)

			item, ok := groups[key]
			if !ok {
				item = &Item{
					ID:       uuid.New(),
					Name:     name,
					Unit:     unit,
					Category: Categorize(name),
				}
				groups[key] = item
				keyOrder = append(keyOrder, key)
			}

			item.Amount += ing.Amount * scale

			if notes := strings.TrimSpace(ing.Notes); notes != "" {
				if item.Notes != "" {
					item.Notes += "; "
				}
				item.Notes += notes
			}

			if !containsRecipeID(item.RecipeIDs, r.ID()) {
				item.RecipeIDs = append(item.RecipeIDs, r.ID())
			}
		}
	}

	items := make([]Item, 0, len(keyOrder))
	for _, key := range keyOrder {
		items = append(items, *groups[key])
	}

	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Category.DisplayRank(), items[j].Category.DisplayRank()
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	return items
}

func containsRecipeID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
