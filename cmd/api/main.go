package main

import (
	"log"
	"net/http"

	"github.com/TerraRicaResort/resort-booking/internal/config"
	dbpkg "github.com/TerraRicaResort/resort-booking/internal/db"
	"github.com/TerraRicaResort/resort-booking/internal/middleware"
	"github.com/TerraRicaResort/resort-booking/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

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
