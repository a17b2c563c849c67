package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"recipe-kit/internal/config"
	"recipe-kit/internal/server"
	"recipe-kit/internal/store"
)

func main() {
	cfg := config.Load()

	log.SetFormatter(&log.JSONFormatter{})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Invalid LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	gin.SetMode(cfg.GinMode)

	st := store.New()
	srv := server.New(st)

	log.WithFields(log.Fields{
		"port":    cfg.Port,
		"recipes": len(st.ListRecipes()),
	}).Info("Recipe kit server starting")

	if err := srv.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
