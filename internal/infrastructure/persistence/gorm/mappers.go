// Mapping between domain entities and GORM models. Rehydration goes
// through the domain Rehydrate constructors so no validation or events
// fire on load.
package gorm

import (
	"github.com/forkful/v2/internal/domain/cookbook"
	"github.com/forkful/v2/internal/domain/grocery"
	"github.com/forkful/v2/internal/domain/recipe"
	"github.com/google/uuid"
)

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make(IngredientRecords, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		ingredients = append(ingredients, IngredientRecord{
			ID:       ing.ID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		})
	}

	instructions := make(InstructionRecords, 0, len(r.Instructions()))
	for _, ins := range r.Instructions() {
		instructions = append(instructions, InstructionRecord{
			StepNumber:  ins.StepNumber,
			Description: ins.Description,
			Duration:    ins.Duration,
		})
	}

	return &RecipeModel{
		ID:           r.ID(),
		Version:      r.Version(),
		Title:        r.Title(),
		Description:  r.Description(),
		AuthorID:     r.AuthorID(),
		Ingredients:  ingredients,
		Instructions: instructions,
		Servings:     r.Servings(),
		Status:       string(r.Status()),
		PublishedAt:  r.PublishedAt(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, 0, len(model.Ingredients))
	for _, rec := range model.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			ID:       rec.ID,
			Name:     rec.Name,
			Amount:   rec.Amount,
			Unit:     rec.Unit,
			Optional: rec.Optional,
			Notes:    rec.Notes,
		})
	}

	instructions := make([]recipe.Instruction, 0, len(model.Instructions))
	for _, rec := range model.Instructions {
		instructions = append(instructions, recipe.Instruction{
			StepNumber:  rec.StepNumber,
			Description: rec.Description,
			Duration:    rec.Duration,
		})
	}

	return recipe.Rehydrate(
		model.ID,
		model.Version,
		model.Title,
		model.Description,
		model.AuthorID,
		ingredients,
		instructions,
		model.Servings,
		recipe.Status(model.Status),
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// GroceryListToModel converts a domain grocery list to a GORM model
func GroceryListToModel(list *grocery.List) *GroceryListModel {
	items := make(GroceryItemRecords, 0, len(list.Items()))
	for _, item := range list.Items() {
		items = append(items, GroceryItemRecord{
			ID:        item.ID,
			Name:      item.Name,
			Amount:    item.Amount,
			Unit:      item.Unit,
			Category:  string(item.Category),
			Notes:     item.Notes,
			RecipeIDs: item.RecipeIDs,
		})
	}

	return &GroceryListModel{
		ID:            list.ID(),
		UserID:        list.UserID(),
		Title:         list.Title(),
		Items:         items,
		GeneratedFrom: UUIDSlice(list.GeneratedFrom()),
		CreatedAt:     list.CreatedAt(),
		UpdatedAt:     list.UpdatedAt(),
	}
}

// ModelToGroceryList converts a GORM model to a domain grocery list
func ModelToGroceryList(model *GroceryListModel) *grocery.List {
	items := make([]grocery.Item, 0, len(model.Items))
	for _, rec := range model.Items {
		items = append(items, grocery.Item{
			ID:        rec.ID,
			Name:      rec.Name,
			Amount:    rec.Amount,
			Unit:      rec.Unit,
			Category:  grocery.Category(rec.Category),
			Notes:     rec.Notes,
			RecipeIDs: rec.RecipeIDs,
		})
	}

	return grocery.RehydrateList(
		model.ID,
		model.UserID,
		model.Title,
		items,
		model.GeneratedFrom,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// CookbookToModel converts a domain cookbook to a GORM model
func CookbookToModel(c *cookbook.Cookbook) *CookbookModel {
	memberMap := c.Members()
	members := make(MemberRecords, 0, len(memberMap))
	for userID, role := range memberMap {
		members = append(members, MemberRecord{
			UserID: userID,
			Role:   role.String(),
		})
	}

	return &CookbookModel{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description(),
		OwnerID:     c.OwnerID(),
		Public:      c.IsPublic(),
		Members:     members,
		RecipeIDs:   UUIDSlice(c.RecipeIDs()),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// ModelToCookbook converts a GORM model to a domain cookbook
func ModelToCookbook(model *CookbookModel) *cookbook.Cookbook {
	members := make(map[uuid.UUID]cookbook.Role, len(model.Members))
	for _, rec := range model.Members {
		members[rec.UserID] = cookbook.ParseRole(rec.Role)
	}

	return cookbook.Rehydrate(
		model.ID,
		model.Title,
		model.Description,
		model.OwnerID,
		model.Public,
		members,
		model.RecipeIDs,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
