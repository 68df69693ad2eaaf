package main

import (
	"log"
	"net/http"

	"github.com/stockwise/inventory-api/internal/config"
	"github.com/stockwise/inventory-api/internal/db"
	api "github.com/stockwise/inventory-api/internal/http"
	"github.com/stockwise/inventory-api/internal/http/handlers"
	rl "github.com/stockwise/inventory-api/internal/http/rate_limiter"
	"github.com/stockwise/inventory-api/internal/models"
	"github.com/stockwise/inventory-api/internal/repo"
	"github.com/stockwise/inventory-api/internal/storage"

	_ "github.com/stockwise/inventory-api/docs"
)

// @title Stockwise Inventory API
// @version 1.0
// @description REST API for managing product stock, categories and product images.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}

	if err := database.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatal("❌ Could not migrate schema:", err)
	}

	handlers.SetCategoryRepo(repo.NewGormCategoryRepository(database))
	handlers.SetProductRepo(repo.NewGormProductRepository(database))
	handlers.SetImageStore(storage.NewImageStore(cfg.UploadDir))

	if cfg.RateLimitEnabled {
		go rl.StartVisitorCleanupLoop()
	}

	r := api.NewRouter(api.Config{
		Auth: api.AuthConfig{
			Secret: []byte(cfg.JWTSecret),
			Roles:  cfg.AllowedRoles,
		},
		AllowedOrigins:   cfg.AllowedOrigins,
		RateLimitEnabled: cfg.RateLimitEnabled,
		UploadDir:        cfg.UploadDir,
	})

	log.Println("✅ Server running on", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatal(err)
	}
}
