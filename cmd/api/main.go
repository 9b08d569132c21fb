package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/NomadRelief/stall-scheduler/internal/cache"
	"github.com/NomadRelief/stall-scheduler/internal/config"
	dbpkg "github.com/NomadRelief/stall-scheduler/internal/db"
	"github.com/NomadRelief/stall-scheduler/internal/jobs"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	redis := cache.New(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sweep := routes.RegisterRoutes(r, routes.Dependencies{
		DB:    db,
		Cache: redis,
		Cfg:   cfg,
	})

	if _, err := jobs.Start(cfg, sweep); err != nil {
		log.Fatalf("failed to schedule history sweep: %v", err)
	}

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
