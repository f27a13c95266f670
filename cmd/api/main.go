package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendly-app/booking-api/internal/cache"
	"github.com/agendly-app/booking-api/internal/config"
	dbpkg "github.com/agendly-app/booking-api/internal/db"
	"github.com/agendly-app/booking-api/internal/jobs"
	"github.com/agendly-app/booking-api/internal/middleware"
	"github.com/agendly-app/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)

	completer := jobs.NewCompleter(db)
	completer.Start()
	defer completer.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
