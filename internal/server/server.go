// Package server is the HTTP boundary: it maps requests to store operations
// and store results to JSON responses. All business rules live in the store
// and pricing packages.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recipe-kit/internal/metrics"
	"recipe-kit/internal/store"
)

const serviceName = "recipe-kit"

// Server holds the injected store and the configured router.
type Server struct {
	store  *store.MemoryStore
	router *gin.Engine
}

// New builds a server around the given store and registers all routes.
func New(st *store.MemoryStore) *Server {
	s := &Server{store: st}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(metrics.PrometheusMiddleware(serviceName))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	api.GET("/recipes", s.listRecipes)
	api.GET("/recipes/:id", s.getRecipe)
	api.POST("/orders", s.createOrder)
	api.GET("/orders/:id", s.getOrder)
	api.POST("/waitlist", s.joinWaitlist)
	api.GET("/waitlist", s.listWaitlist)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metrics.CatalogRecipes.Set(float64(len(st.ListRecipes())))

	s.router = router
	return s
}

// Router exposes the underlying gin engine for running and for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
