package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/nbbaier/smartrecipe/internal/config"
	"github.com/nbbaier/smartrecipe/internal/database"
	"github.com/nbbaier/smartrecipe/internal/handlers"
	"github.com/nbbaier/smartrecipe/internal/middleware"
	"github.com/nbbaier/smartrecipe/internal/services"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.EnsureAdminUser(db, cfg); err != nil {
		log.Printf("Warning: Could not ensure admin user: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Receipt scanning is optional: without S3 credentials the scan
	// endpoint reports 503 and everything else works
	var storageService *services.StorageService
	var ocrService *services.OCRService
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		storageService, err = services.NewStorageService(
			cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Region, cfg.S3UseSSL,
		)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage service: %v", err)
			storageService = nil
		} else if err := storageService.EnsureBucket(context.Background()); err != nil {
			log.Printf("Warning: Failed to ensure S3 bucket exists: %v", err)
		}

		if storageService != nil {
			ocrService, err = services.NewOCRService()
			if err != nil {
				log.Printf("Warning: Failed to initialize OCR service: %v", err)
				ocrService = nil
			} else {
				defer ocrService.Close()
				log.Println("Receipt scanning service initialized")
			}
		}
	} else {
		log.Println("S3 credentials not configured, receipt scanning disabled")
	}

	h := handlers.New(db, cfg, storageService, ocrService)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", middleware.AuthRequired(cfg), h.GetCurrentUser)
	auth.Put("/me", middleware.AuthRequired(cfg), h.UpdateProfile)
	auth.Post("/change-password", middleware.AuthRequired(cfg), h.ChangePassword)
	auth.Post("/refresh", middleware.AuthRequired(cfg), h.RefreshToken)

	// Pantry routes (authenticated)
	pantry := api.Group("/pantry", middleware.AuthRequired(cfg))
	pantry.Get("/", h.ListPantryItems)
	pantry.Get("/summary", h.GetPantrySummary)
	pantry.Post("/", h.CreatePantryItem)
	pantry.Post("/bulk", h.BulkCreatePantryItems)
	pantry.Get("/:id", h.GetPantryItem)
	pantry.Put("/:id", h.UpdatePantryItem)
	pantry.Post("/:id/adjust", h.AdjustPantryQuantity)
	pantry.Delete("/:id", h.DeletePantryItem)

	// Leftover routes (authenticated)
	leftovers := api.Group("/leftovers", middleware.AuthRequired(cfg))
	leftovers.Get("/", h.ListLeftovers)
	leftovers.Post("/", h.CreateLeftover)
	leftovers.Get("/:id", h.GetLeftover)
	leftovers.Put("/:id", h.UpdateLeftover)
	leftovers.Delete("/:id", h.DeleteLeftover)

	// Recipe routes (authenticated)
	recipes := api.Group("/recipes", middleware.AuthRequired(cfg))
	recipes.Get("/", h.ListRecipes)
	recipes.Post("/", h.CreateRecipe)
	recipes.Get("/:id", h.GetRecipe)
	recipes.Get("/:id/match", h.MatchRecipe)
	recipes.Put("/:id", h.UpdateRecipe)
	recipes.Delete("/:id", h.DeleteRecipe)
	recipes.Post("/:id/bookmark", h.BookmarkRecipe)
	recipes.Delete("/:id/bookmark", h.UnbookmarkRecipe)

	// Shopping list routes (authenticated)
	lists := api.Group("/lists", middleware.AuthRequired(cfg))
	lists.Get("/", h.ListShoppingLists)
	lists.Post("/", h.CreateShoppingList)
	lists.Get("/:id", h.GetShoppingList)
	lists.Put("/:id", h.UpdateShoppingList)
	lists.Delete("/:id", h.DeleteShoppingList)
	lists.Post("/:id/items", h.AddListItem)
	lists.Post("/:id/missing-ingredients", h.AddMissingIngredients)
	lists.Put("/:id/items/:itemId", h.UpdateListItem)
	lists.Delete("/:id/items/:itemId", h.DeleteListItem)

	// Preference routes (authenticated)
	prefs := api.Group("/preferences", middleware.AuthRequired(cfg))
	prefs.Get("/", h.GetPreferences)
	prefs.Put("/", h.UpsertPreferences)
	prefs.Delete("/", h.DeletePreferences)

	// Suggestion routes (authenticated)
	suggestions := api.Group("/suggestions", middleware.AuthRequired(cfg))
	suggestions.Get("/", h.GetSuggestions)
	suggestions.Post("/:id/dismiss", h.DismissSuggestion)
	suggestions.Delete("/dismissed", h.ClearDismissedSuggestions)

	// Notification routes (authenticated)
	api.Get("/notifications", middleware.AuthRequired(cfg), h.GetNotifications)

	// Receipt routes (authenticated)
	receipts := api.Group("/receipts", middleware.AuthRequired(cfg))
	receipts.Post("/scan", h.ScanReceipt)
	receipts.Delete("/image", h.DeleteReceiptImage)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
