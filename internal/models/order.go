package models

// Order represents a customer's purchase of one recipe. Total is computed
// server-side from the recipe's price and is never taken from the request.
type Order struct {
	ID                    int                `json:"id"`
	RecipeID              int                `json:"recipeId"`
	CustomerName          string             `json:"customerName"`
	Email                 string             `json:"email"`
	Address               string             `json:"address"`
	Phone                 string             `json:"phone"`
	Status                string             `json:"status"`
	Total                 int                `json:"total"`
	ServingCount          int                `json:"servingCount"`
	CustomizedIngredients []IngredientDetail `json:"customizedIngredients"`
}

// OrderStatus constants. Orders are always created as pending; no endpoint
// advances the status.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
)

// CreateOrderRequest is the client-supplied portion of an order.
// ServingCount of zero means "use the recipe's base serving count".
// A nil CustomizedIngredients means the buyer kept every ingredient.
type CreateOrderRequest struct {
	RecipeID              int                `json:"recipeId"`
	CustomerName          string             `json:"customerName"`
	Email                 string             `json:"email"`
	Address               string             `json:"address"`
	Phone                 string             `json:"phone"`
	ServingCount          int                `json:"servingCount,omitempty"`
	CustomizedIngredients []IngredientDetail `json:"customizedIngredients,omitempty"`
}
