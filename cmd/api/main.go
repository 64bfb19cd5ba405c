package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"soletrack/internal/catalog"
	"soletrack/internal/handler"
	"soletrack/internal/middleware"
	"soletrack/internal/model"
	"soletrack/internal/pricing"
	"soletrack/internal/repository"
	"soletrack/internal/service"
	"soletrack/pkg/config"
	"soletrack/pkg/database"
	"soletrack/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg)
	// Auto Migrate (prefer a dedicated migration tool in production)
	db.AutoMigrate(&model.Sneaker{}, &model.Sale{}, &model.Listing{}, &model.User{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Outbound API clients
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.SneakerDBAPIKey)
	pricingClient := pricing.NewClient(cfg.PricingBaseURL, cfg.PricingAPIKey)
	tokens := jwt.NewManager(cfg.JWTSecret)

	// 5. Dependency Injection (Wiring Layers)
	sneakerRepo := repository.NewSneakerRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	listingRepo := repository.NewListingRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(sneakerRepo, db)
	salesService := service.NewSalesService(saleRepo, sneakerRepo, db)
	listingService := service.NewListingService(listingRepo, sneakerRepo)
	analyticsService := service.NewAnalyticsService(sneakerRepo, saleRepo)
	authService := service.NewAuthService(userRepo, tokens)

	sneakerHandler := handler.NewSneakerHandler(invService)
	saleHandler := handler.NewSaleHandler(salesService)
	listingHandler := handler.NewListingHandler(listingService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	catalogHandler := handler.NewCatalogHandler(catalogClient)
	pricingHandler := handler.NewPricingHandler(pricingClient)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "SoleTrack v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	// Auth Routes (No authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo, tokens))

	// Sneaker Routes
	protected.Get("/sneakers", sneakerHandler.GetSneakers)
	protected.Get("/sneakers/brands", sneakerHandler.GetBrands)
	protected.Get("/sneakers/:id", sneakerHandler.GetSneaker)
	protected.Post("/sneakers", sneakerHandler.CreateSneaker)
	protected.Put("/sneakers/:id", sneakerHandler.UpdateSneaker)
	protected.Post("/sneakers/:id/duplicate", sneakerHandler.DuplicateSneaker)
	protected.Delete("/sneakers/:id", sneakerHandler.DeleteSneaker)

	// Sale Routes
	protected.Get("/sales", saleHandler.GetSales)
	protected.Get("/sales/platforms", saleHandler.GetPlatforms)
	protected.Get("/sales/:id", saleHandler.GetSale)
	protected.Post("/sales", saleHandler.RecordSale)
	protected.Put("/sales/:id", saleHandler.UpdateSale)
	protected.Delete("/sales/:id", saleHandler.DeleteSale)

	// Listing Routes
	protected.Get("/listings", listingHandler.GetListings)
	protected.Get("/sneakers/:id/listings", listingHandler.GetSneakerListings)
	protected.Post("/sneakers/:id/listings", listingHandler.CreateListing)
	protected.Put("/listings/:id", listingHandler.UpdateListing)
	protected.Delete("/listings/:id", listingHandler.DeleteListing)

	// Analytics Route
	protected.Get("/analytics/summary", analyticsHandler.GetSummary)

	// Catalog and Pricing Routes
	protected.Post("/catalog/lookup", catalogHandler.Lookup)
	protected.Get("/pricing/lookup", pricingHandler.LookupBySKU)
	protected.Get("/pricing/search", pricingHandler.Search)

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	_, err := userRepo.FindByEmail("admin@example.com")
	if err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("✅ Admin user created: admin@example.com / admin123")
	}
}
