package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"recipe-kit/internal/metrics"
	"recipe-kit/internal/models"
	"recipe-kit/internal/store"
	"recipe-kit/internal/validation"
)

// listRecipes returns the full catalog in seed order.
func (s *Server) listRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListRecipes())
}

// getRecipe returns one recipe by id.
func (s *Server) getRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := s.store.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// createOrder validates the request, prices and stores the order. A missing
// recipe is a client error: the request referenced something that does not
// exist, so it maps to 400, not 404.
func (s *Server) createOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.OrdersTotal.WithLabelValues(metrics.OrderOutcomeValidationFailed).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data: " + err.Error()})
		return
	}

	if err := validation.ValidateCreateOrder(&req); err != nil {
		metrics.OrdersTotal.WithLabelValues(metrics.OrderOutcomeValidationFailed).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data: " + err.Error()})
		return
	}

	order, err := s.store.CreateOrder(req)
	if err != nil {
		if errors.Is(err, store.ErrRecipeNotFound) {
			metrics.OrdersTotal.WithLabelValues(metrics.OrderOutcomeRecipeNotFound).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data: recipe not found"})
			return
		}

		log.WithField("request_id", requestID(c)).Error("Order creation failed: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating order"})
		return
	}

	metrics.OrdersTotal.WithLabelValues(metrics.OrderOutcomeCreated).Inc()
	metrics.OrderTotalPaisa.Observe(float64(order.Total))

	log.WithFields(log.Fields{
		"request_id": requestID(c),
		"order_id":   order.ID,
		"recipe_id":  order.RecipeID,
		"servings":   order.ServingCount,
		"total":      order.Total,
	}).Info("Order created")

	c.JSON(http.StatusCreated, order)
}

// getOrder returns one order by id.
func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := s.store.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// joinWaitlist adds a signup and returns the success envelope.
func (s *Server) joinWaitlist(c *gin.Context) {
	var req models.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.WaitlistResponse{
			Success: false,
			Message: "Invalid waitlist data: " + err.Error(),
		})
		return
	}

	if err := validation.ValidateJoinWaitlist(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.WaitlistResponse{
			Success: false,
			Message: "Invalid waitlist data: " + err.Error(),
		})
		return
	}

	entry := s.store.AddWaitlistEntry(req)
	metrics.WaitlistSignupsTotal.Inc()

	log.WithFields(log.Fields{
		"request_id": requestID(c),
		"entry_id":   entry.ID,
	}).Info("Waitlist signup")

	c.JSON(http.StatusCreated, models.WaitlistResponse{
		Success: true,
		Message: "Successfully added to waitlist",
		Data:    &entry,
	})
}

// listWaitlist returns all signups in insertion order.
func (s *Server) listWaitlist(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListWaitlistEntries())
}

// pathID parses the :id parameter; on failure it writes the 400 response
// and reports false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id: must be a positive integer"})
		return 0, false
	}
	return id, true
}
