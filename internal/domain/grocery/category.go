// Package grocery contains the grocery list generation engine: ingredient
// categorization, cross-recipe aggregation with serving scaling, and list
// title synthesis. Everything here is pure computation over in-memory data;
// persistence and authorization live in the application layer.
package grocery

import "strings"

// Category is a grocery-store aisle grouping used to sort generated lists
type Category string

const (
	CategoryProduce    Category = "produce"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategorySeafood    Category = "seafood"
	CategoryPantry     Category = "pantry"
	CategorySpices     Category = "spices"
	CategoryCondiments Category = "condiments"
	CategoryFrozen     Category = "frozen"
	CategoryBakery     Category = "bakery"
	CategoryBeverages  Category = "beverages"
	CategoryOther      Category = "other"
)

// categoryDisplayOrder is the fixed aisle order for sorting generated
// lists. It is intentionally not alphabetical.
var categoryDisplayOrder = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategorySeafood,
	CategoryPantry,
	CategorySpices,
	CategoryCondiments,
	CategoryFrozen,
	CategoryBakery,
	CategoryBeverages,
	CategoryOther,
}

var categoryRank = func() map[Category]int {
	ranks := make(map[Category]int, len(categoryDisplayOrder))
	for i, c := range categoryDisplayOrder {
		ranks[c] = i
	}
	return ranks
}()

// DisplayRank returns the category's position in the aisle display order.
// Unknown categories sort last, after CategoryOther.
func (c Category) DisplayRank() int {
	if rank, ok := categoryRank[c]; ok {
		return rank
	}
	return len(categoryDisplayOrder)
}

type categoryEntry struct {
	key      string
	category Category
}

// categoryTable maps known ingredient names to categories. Matching is a
// linear scan with first-match-wins, so order is significant: compound
// names ("chicken broth", "coconut milk") must precede the bare staples
// they contain, or they would be misfiled into meat and dairy.
var categoryTable = []categoryEntry{
	// Compound pantry items that embed another category's keyword
	{"chicken broth", CategoryPantry},
	{"chicken stock", CategoryPantry},
	{"beef broth", CategoryPantry},
	{"beef stock", CategoryPantry},
	{"vegetable broth", CategoryPantry},
	{"vegetable stock", CategoryPantry},
	{"coconut milk", CategoryPantry},
	{"coconut cream", CategoryPantry},
	{"peanut butter", CategoryPantry},
	{"almond butter", CategoryPantry},
	{"cream of tartar", CategorySpices},
	{"cornstarch", CategoryPantry},
	{"black pepper", CategorySpices},
	{"nutmeg", CategorySpices},
	{"ice cream", CategoryFrozen},
	{"eggplant", CategoryProduce},
	{"butternut", CategoryProduce},
	{"corn syrup", CategoryPantry},
	{"fish sauce", CategoryCondiments},
	{"oyster sauce", CategoryCondiments},
	{"green tea", CategoryBeverages}, // bare "tea" would otherwise match "steak"
	{"black tea", CategoryBeverages},

	// Produce
	{"tomato", CategoryProduce},
	{"onion", CategoryProduce},
	{"garlic", CategoryProduce},
	{"potato", CategoryProduce},
	{"carrot", CategoryProduce},
	{"celery", CategoryProduce},
	{"pepper", CategoryProduce},
	{"lettuce", CategoryProduce},
	{"spinach", CategoryProduce},
	{"kale", CategoryProduce},
	{"cucumber", CategoryProduce},
	{"zucchini", CategoryProduce},
	{"broccoli", CategoryProduce},
	{"cauliflower", CategoryProduce},
	{"mushroom", CategoryProduce},
	{"avocado", CategoryProduce},
	{"lemon", CategoryProduce},
	{"lime", CategoryProduce},
	{"orange", CategoryProduce},
	{"apple", CategoryProduce},
	{"banana", CategoryProduce},
	{"berr", CategoryProduce}, // berries, strawberries, blueberries
	{"grape", CategoryProduce},
	{"cilantro", CategoryProduce},
	{"parsley", CategoryProduce},
	{"basil", CategoryProduce},
	{"ginger", CategoryProduce},
	{"scallion", CategoryProduce},
	{"green bean", CategoryProduce},
	{"corn", CategoryProduce},
	{"cabbage", CategoryProduce},
	{"squash", CategoryProduce},

	// Dairy
	{"milk", CategoryDairy},
	{"butter", CategoryDairy},
	{"cheese", CategoryDairy},
	{"cheddar", CategoryDairy},
	{"mozzarella", CategoryDairy},
	{"parmesan", CategoryDairy},
	{"yogurt", CategoryDairy},
	{"cream", CategoryDairy},
	{"egg", CategoryDairy},
	{"sour cream", CategoryDairy},

	// Meat
	{"chicken", CategoryMeat},
	{"beef", CategoryMeat},
	{"pork", CategoryMeat},
	{"bacon", CategoryMeat},
	{"sausage", CategoryMeat},
	{"turkey", CategoryMeat},
	{"lamb", CategoryMeat},
	{"ham", CategoryMeat},
	{"ground meat", CategoryMeat},
	{"steak", CategoryMeat},

	// Seafood
	{"salmon", CategorySeafood},
	{"tuna", CategorySeafood},
	{"shrimp", CategorySeafood},
	{"fish", CategorySeafood},
	{"cod", CategorySeafood},
	{"crab", CategorySeafood},
	{"lobster", CategorySeafood},
	{"scallop", CategorySeafood},
	{"mussel", CategorySeafood},
	{"anchov", CategorySeafood}, // anchovy, anchovies

	// Pantry
	{"flour", CategoryPantry},
	{"sugar", CategoryPantry},
	{"rice", CategoryPantry},
	{"pasta", CategoryPantry},
	{"spaghetti", CategoryPantry},
	{"noodle", CategoryPantry},
	{"oat", CategoryPantry},
	{"bean", CategoryPantry},
	{"lentil", CategoryPantry},
	{"chickpea", CategoryPantry},
	{"quinoa", CategoryPantry},
	{"crumb", CategoryPantry}, // breadcrumbs, without capturing bare "bread"
	{"baking powder", CategoryPantry},
	{"baking soda", CategoryPantry},
	{"yeast", CategoryPantry},
	{"honey", CategoryPantry},
	{"maple syrup", CategoryPantry},
	{"chocolate", CategoryPantry},
	{"cocoa", CategoryPantry},
	{"vanilla", CategoryPantry},
	{"nut", CategoryPantry},
	{"almond", CategoryPantry},
	{"walnut", CategoryPantry},
	{"stock", CategoryPantry},
	{"broth", CategoryPantry},
	{"canned", CategoryPantry},

	// Spices
	{"salt", CategorySpices},
	{"paprika", CategorySpices},
	{"cumin", CategorySpices},
	{"oregano", CategorySpices},
	{"thyme", CategorySpices},
	{"rosemary", CategorySpices},
	{"cinnamon", CategorySpices},
	{"chili powder", CategorySpices},
	{"curry", CategorySpices},
	{"turmeric", CategorySpices},
	{"bay lea", CategorySpices}, // bay leaf, bay leaves
	{"spice", CategorySpices},

	// Condiments
	{"olive oil", CategoryCondiments},
	{"vegetable oil", CategoryCondiments},
	{"sesame oil", CategoryCondiments},
	{"vinegar", CategoryCondiments},
	{"soy sauce", CategoryCondiments},
	{"ketchup", CategoryCondiments},
	{"mustard", CategoryCondiments},
	{"mayonnaise", CategoryCondiments},
	{"hot sauce", CategoryCondiments},
	{"salsa", CategoryCondiments},
	{"worcestershire", CategoryCondiments},
	{"dressing", CategoryCondiments},
	{"sauce", CategoryCondiments},
	{"oil", CategoryCondiments},

	// Frozen
	{"frozen", CategoryFrozen},

	// Bakery
	{"bread", CategoryBakery},
	{"baguette", CategoryBakery},
	{"tortilla", CategoryBakery},
	{"bun", CategoryBakery},
	{"roll", CategoryBakery},
	{"bagel", CategoryBakery},
	{"croissant", CategoryBakery},
	{"pita", CategoryBakery},

	// Beverages
	{"wine", CategoryBeverages},
	{"beer", CategoryBeverages},
	{"juice", CategoryBeverages},
	{"coffee", CategoryBeverages},
	{"soda", CategoryBeverages},
	{"sparkling water", CategoryBeverages},
}

// Categorize maps a free-text ingredient name to a grocery category.
// The match is case-insensitive substring containment in either direction,
// so "cherry tomatoes" matches the "tomato" entry and a terse "oj" style
// entry would match a longer input. The first matching table entry wins;
// unmatched names fall back to CategoryOther.
func Categorize(ingredientName string) Category {
	name := strings.ToLower(strings.TrimSpace(ingredientName))
	if name == "" {
		return CategoryOther
	}

	for _, entry := range categoryTable {
		if strings.Contains(name, entry.key) || strings.Contains(entry.key, name) {
			return entry.category
		}
	}
	return CategoryOther
}
