package models

// DefaultCuisine is applied when a recipe is seeded without a cuisine label.
const DefaultCuisine = "Indian"

// IngredientDetail describes one ingredient line of a recipe.
// IsCustomizable marks ingredients the buyer may deselect at order time.
type IngredientDetail struct {
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	IsCustomizable bool    `json:"isCustomizable"`
}

// Recipe represents a catalog item. Price is the full price for the base
// serving count, in paisa (1 INR = 100 paisa).
type Recipe struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"imageUrl"`
	PrepTime     int                `json:"prepTime"`
	CookTime     int                `json:"cookTime"`
	Servings     int                `json:"servings"`
	Ingredients  []IngredientDetail `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Price        int                `json:"price"`
	Cuisine      string             `json:"cuisine"`
}
