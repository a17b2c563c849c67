// Package store owns all entity collections and their identifier counters.
// Every mutation goes through a MemoryStore; nothing is durable and nothing
// is ever deleted within the process lifetime.
package store

import (
	"errors"
	"sync"
	"time"

	"recipe-kit/internal/models"
	"recipe-kit/internal/pricing"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrOrderNotFound  = errors.New("order not found")
)

// MemoryStore holds recipes, orders and waitlist entries in process memory.
// Each collection has its own id counter starting at 1; ids are never
// reused. Construct with New so tests get isolated instances.
type MemoryStore struct {
	mutex           sync.RWMutex
	recipes         map[int]models.Recipe
	orders          map[int]models.Order
	waitlistEntries map[int]models.WaitlistEntry
	recipeID        int
	orderID         int
	waitlistID      int
}

// New creates a store seeded with the sample recipe catalog.
func New() *MemoryStore {
	s := &MemoryStore{
		recipes:         make(map[int]models.Recipe),
		orders:          make(map[int]models.Order),
		waitlistEntries: make(map[int]models.WaitlistEntry),
		recipeID:        1,
		orderID:         1,
		waitlistID:      1,
	}
	s.seedRecipes()
	return s
}

func (s *MemoryStore) seedRecipes() {
	for _, r := range sampleRecipes() {
		if r.Cuisine == "" {
			r.Cuisine = models.DefaultCuisine
		}
		r.ID = s.recipeID
		s.recipes[r.ID] = r
		s.recipeID++
	}
}

// ListRecipes returns every recipe in seed order.
func (s *MemoryStore) ListRecipes() []models.Recipe {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	recipes := make([]models.Recipe, 0, len(s.recipes))
	for id := 1; id < s.recipeID; id++ {
		recipes = append(recipes, s.recipes[id])
	}
	return recipes
}

// GetRecipe returns the recipe with the given id, or ErrRecipeNotFound.
func (s *MemoryStore) GetRecipe(id int) (models.Recipe, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	recipe, ok := s.recipes[id]
	if !ok {
		return models.Recipe{}, ErrRecipeNotFound
	}
	return recipe, nil
}

// CreateOrder prices and stores a new order against a validated request.
// It fails with ErrRecipeNotFound if the referenced recipe does not exist;
// on failure nothing is stored and no id is consumed.
func (s *MemoryStore) CreateOrder(req models.CreateOrderRequest) (models.Order, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	recipe, ok := s.recipes[req.RecipeID]
	if !ok {
		return models.Order{}, ErrRecipeNotFound
	}

	servingCount := req.ServingCount
	if servingCount == 0 {
		servingCount = recipe.Servings
	}

	// A customization list enumerates the ingredients the buyer kept; its
	// absence means nothing was deselected. The total is always recomputed
	// here, whatever the client displayed.
	customized := make([]models.IngredientDetail, 0)
	deselected := 0
	if req.CustomizedIngredients != nil {
		customized = append(customized, req.CustomizedIngredients...)
		deselected = len(recipe.Ingredients) - len(customized)
	}

	total := pricing.OrderTotal(recipe.Price, recipe.Servings, servingCount, len(recipe.Ingredients), deselected)

	order := models.Order{
		ID:                    s.orderID,
		RecipeID:              req.RecipeID,
		CustomerName:          req.CustomerName,
		Email:                 req.Email,
		Address:               req.Address,
		Phone:                 req.Phone,
		Status:                models.OrderStatusPending,
		Total:                 total,
		ServingCount:          servingCount,
		CustomizedIngredients: customized,
	}

	s.orders[order.ID] = order
	s.orderID++
	return order, nil
}

// GetOrder returns the order with the given id, or ErrOrderNotFound.
func (s *MemoryStore) GetOrder(id int) (models.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// OrderCount reports how many orders have been stored.
func (s *MemoryStore) OrderCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.orders)
}

// AddWaitlistEntry stores a validated signup, stamping the current time.
func (s *MemoryStore) AddWaitlistEntry(req models.JoinWaitlistRequest) models.WaitlistEntry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := models.WaitlistEntry{
		ID:        s.waitlistID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	s.waitlistEntries[entry.ID] = entry
	s.waitlistID++
	return entry
}

// ListWaitlistEntries returns every entry in insertion order.
func (s *MemoryStore) ListWaitlistEntries() []models.WaitlistEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := make([]models.WaitlistEntry, 0, len(s.waitlistEntries))
	for id := 1; id < s.waitlistID; id++ {
		entries = append(entries, s.waitlistEntries[id])
	}
	return entries
}
