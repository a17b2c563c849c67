package store

import "recipe-kit/internal/models"

// sampleRecipes returns the fixed catalog every store starts with. Prices
// are in paisa for the recipe's base serving count.
func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Name:        "Butter Chicken",
			Description: "Rich and creamy curry made with tender chicken in a mildly spiced tomato sauce",
			ImageURL:    "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398",
			PrepTime:    25,
			CookTime:    30,
			Servings:    2,
			Ingredients: []models.IngredientDetail{
				{Name: "Chicken breast", Quantity: 500, Unit: "g", IsCustomizable: true},
				{Name: "Tomato puree", Quantity: 200, Unit: "ml", IsCustomizable: false},
				{Name: "Heavy cream", Quantity: 100, Unit: "ml", IsCustomizable: true},
				{Name: "Butter", Quantity: 50, Unit: "g", IsCustomizable: false},
				{Name: "Garam masala", Quantity: 2, Unit: "tsp", IsCustomizable: false},
				{Name: "Kasuri methi", Quantity: 1, Unit: "tsp", IsCustomizable: true},
				{Name: "Garlic paste", Quantity: 1, Unit: "tbsp", IsCustomizable: false},
				{Name: "Ginger paste", Quantity: 1, Unit: "tbsp", IsCustomizable: false},
			},
			Instructions: []string{
				"Marinate chicken with yogurt, ginger-garlic paste, and spices for 2 hours",
				"Cook marinated chicken in tandoor or oven until 80% done",
				"Prepare sauce by sautéing onions, adding tomato puree and spices",
				"Add cream and butter to the sauce",
				"Add chicken pieces to the sauce and simmer for 10 minutes",
				"Garnish with kasuri methi and serve hot with naan",
			},
			Price:   39900, // ₹399.00
			Cuisine: "North Indian",
		},
		{
			Name:        "Masala Dosa",
			Description: "Crisp fermented rice pancake stuffed with spiced potato filling",
			ImageURL:    "https://images.unsplash.com/photo-1589301760014-d929f3979dbc",
			PrepTime:    30,
			CookTime:    15,
			Servings:    2,
			Ingredients: []models.IngredientDetail{
				{Name: "Rice batter", Quantity: 300, Unit: "ml", IsCustomizable: false},
				{Name: "Potatoes", Quantity: 200, Unit: "g", IsCustomizable: true},
				{Name: "Onions", Quantity: 100, Unit: "g", IsCustomizable: true},
				{Name: "Mustard seeds", Quantity: 1, Unit: "tsp", IsCustomizable: false},
				{Name: "Curry leaves", Quantity: 5, Unit: "pcs", IsCustomizable: false},
				{Name: "Green chilies", Quantity: 2, Unit: "pcs", IsCustomizable: true},
				{Name: "Turmeric powder", Quantity: 0.5, Unit: "tsp", IsCustomizable: false},
				{Name: "Coconut chutney", Quantity: 50, Unit: "g", IsCustomizable: true},
				{Name: "Sambar", Quantity: 100, Unit: "ml", IsCustomizable: true},
			},
			Instructions: []string{
				"Boil potatoes until soft, then peel and mash them",
				"In a pan, add oil, mustard seeds, curry leaves, and let them splutter",
				"Add chopped onions, green chilies and sauté until translucent",
				"Add turmeric powder and mashed potatoes, mix well",
				"Heat dosa tawa, pour a ladle of batter and spread in circular motion",
				"Add oil around the edges and cook until crisp",
				"Place potato filling in the center and fold the dosa",
				"Serve hot with coconut chutney and sambar",
			},
			Price:   14900, // ₹149.00
			Cuisine: "South Indian",
		},
		{
			Name:        "Paneer Tikka",
			Description: "Chunks of cottage cheese marinated with spices and grilled to perfection",
			ImageURL:    "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d6",
			PrepTime:    30,
			CookTime:    15,
			Servings:    2,
			Ingredients: []models.IngredientDetail{
				{Name: "Paneer", Quantity: 250, Unit: "g", IsCustomizable: true},
				{Name: "Bell peppers", Quantity: 100, Unit: "g", IsCustomizable: true},
				{Name: "Onions", Quantity: 100, Unit: "g", IsCustomizable: true},
				{Name: "Yogurt", Quantity: 100, Unit: "ml", IsCustomizable: false},
				{Name: "Ginger paste", Quantity: 1, Unit: "tsp", IsCustomizable: false},
				{Name: "Garlic paste", Quantity: 1, Unit: "tsp", IsCustomizable: false},
				{Name: "Tikka masala", Quantity: 2, Unit: "tbsp", IsCustomizable: false},
				{Name: "Chaat masala", Quantity: 1, Unit: "tsp", IsCustomizable: false},
				{Name: "Lemon juice", Quantity: 2, Unit: "tsp", IsCustomizable: false},
			},
			Instructions: []string{
				"Cut paneer, bell peppers, and onions into 1-inch cubes",
				"Mix yogurt with all the spices, ginger-garlic paste, and lemon juice",
				"Add the cubed paneer and vegetables to the marinade and mix well",
				"Let it marinate for at least 30 minutes",
				"Thread the marinated paneer and vegetables onto skewers",
				"Grill in a preheated oven at 200°C for 10-15 minutes",
				"Brush with butter and grill for another 5 minutes",
				"Sprinkle chaat masala and serve hot with mint chutney",
			},
			Price:   24900, // ₹249.00
			Cuisine: "North Indian",
		},
	}
}
