// Package pricing computes order totals in minor currency units (paisa).
//
// The stored recipe price is the full price for the recipe's base serving
// count. Deselecting ingredients removes an equal share of the base price per
// ingredient, then the adjusted price scales by the ratio of requested to
// base servings. Rounding happens exactly once, at the end, half away from
// zero.
package pricing

import "math"

// OrderTotal returns the charge for an order in paisa.
//
// basePrice is the recipe price for baseServings servings. ingredientCount is
// the recipe's total number of ingredients and deselected the number the
// buyer unchecked. Out-of-range inputs are clamped rather than rejected: the
// boundary validates requests before pricing runs, so clamping only guards
// against internal misuse.
func OrderTotal(basePrice, baseServings, servings, ingredientCount, deselected int) int {
	if baseServings < 1 {
		baseServings = 1
	}
	if servings < 1 {
		servings = baseServings
	}
	if deselected < 0 {
		deselected = 0
	}
	if deselected > ingredientCount {
		deselected = ingredientCount
	}

	adjusted := float64(basePrice)
	if ingredientCount > 0 && deselected > 0 {
		perIngredient := float64(basePrice) / float64(ingredientCount)
		adjusted -= float64(deselected) * perIngredient
	}

	total := int(math.Round(adjusted * float64(servings) / float64(baseServings)))
	if total < 0 {
		return 0
	}
	return total
}
