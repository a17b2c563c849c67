package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-kit/internal/models"
	"recipe-kit/internal/store"
)

// TestStorefrontFlow drives the whole contract over the wire the way the
// storefront does: browse the catalog, open a recipe, place a customized
// order, fetch it back, then sign up for the waitlist.
func TestStorefrontFlow(t *testing.T) {
	srv := New(store.New())
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	client := resty.New().SetBaseURL(ts.URL)

	var recipes []models.Recipe
	resp, err := client.R().SetResult(&recipes).Get("/api/recipes")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, recipes, 3)

	var recipe models.Recipe
	resp, err = client.R().SetResult(&recipe).Get("/api/recipes/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, recipe.Ingredients, 8)

	// Deselect two ingredients and order for four servings:
	// (39900 - 2*4987.5) * 4/2 = 59850.
	var order models.Order
	resp, err = client.R().
		SetBody(models.CreateOrderRequest{
			RecipeID:              recipe.ID,
			CustomerName:          "Asha Rao",
			Email:                 "asha@example.com",
			Address:               "12 MG Road, Bengaluru",
			Phone:                 "+91 98765 43210",
			ServingCount:          4,
			CustomizedIngredients: recipe.Ingredients[:6],
		}).
		SetResult(&order).
		Post("/api/orders")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 59850, order.Total)

	var fetched models.Order
	resp, err = client.R().SetResult(&fetched).Get("/api/orders/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, order, fetched)

	var signup models.WaitlistResponse
	resp, err = client.R().
		SetBody(models.JoinWaitlistRequest{Name: "Asha", Email: "asha@example.com"}).
		SetResult(&signup).
		Post("/api/waitlist")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.True(t, signup.Success)
	require.NotNil(t, signup.Data)
	assert.Equal(t, 1, signup.Data.ID)

	resp, err = client.R().Get("/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "orders_total")
}
