package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbeariajosimar/booking-api/internal/config"
	"github.com/barbeariajosimar/booking-api/internal/routes"
	"github.com/barbeariajosimar/booking-api/internal/store"
	"github.com/barbeariajosimar/booking-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.SetDefault(cfg.ShopTimezone)

	kv, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open storage (%s): %v", cfg.StorageDriver, err)
	}
	defer kv.Close()

	st := store.New(kv)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s (storage: %s)", cfg.Addr(), cfg.StorageDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
