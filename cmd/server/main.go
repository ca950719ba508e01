package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/journali/journal-api/internal/auth"
	"github.com/journali/journal-api/internal/config"
	"github.com/journali/journal-api/internal/constants"
	"github.com/journali/journal-api/internal/database"
	"github.com/journali/journal-api/internal/handlers"
	"github.com/journali/journal-api/internal/middleware"
	"github.com/journali/journal-api/internal/repository"
	"github.com/journali/journal-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Token service for bearer auth
	tokens := auth.NewTokenService(cfg.JWTSecret, constants.TokenIssuer, constants.TokenTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	itemService := services.NewItemService(itemRepo)
	tagService := services.NewTagService(tagRepo, itemRepo)

	// One generic dispatcher per kind, all registered with the item
	// service so child listings can resolve every kind
	pageService := services.NewCrudService(itemRepo, repository.NewPageStore(db))
	todoService := services.NewCrudService(itemRepo, repository.NewTodoStore(db))
	todoItemService := services.NewCrudService(itemRepo, repository.NewTodoItemStore(db))
	textFieldService := services.NewCrudService(itemRepo, repository.NewTextFieldStore(db))
	services.RegisterKind(itemService, pageService)
	services.RegisterKind(itemService, todoService)
	services.RegisterKind(itemService, todoItemService)
	services.RegisterKind(itemService, textFieldService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	itemHandler := handlers.NewItemHandler(itemService)
	tagHandler := handlers.NewTagHandler(tagService)
	pageHandler := handlers.NewItemCrudHandler(pageService)
	todoHandler := handlers.NewItemCrudHandler(todoService)
	todoItemHandler := handlers.NewItemCrudHandler(todoItemService)
	textFieldHandler := handlers.NewItemCrudHandler(textFieldService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Journal API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens))
		{
			protected.GET("/user/me", authHandler.GetCurrentUser)
			protected.PATCH("/users/:id", authHandler.UpdateUser)

			handlers.RegisterItemCrudRoutes(protected, "/pages", pageHandler)
			handlers.RegisterItemCrudRoutes(protected, "/todos", todoHandler)
			handlers.RegisterItemCrudRoutes(protected, "/todo_items", todoItemHandler)
			handlers.RegisterItemCrudRoutes(protected, "/text_fields", textFieldHandler)

			protected.GET("/items", itemHandler.ListByParent)
			protected.PATCH("/items/:id", itemHandler.UpdateParent)

			protected.GET("/tags", tagHandler.List)
			protected.POST("/tags", tagHandler.Create)
			protected.PATCH("/tags/:id", tagHandler.Update)
			protected.DELETE("/tags/:id", tagHandler.Delete)
			protected.PATCH("/tags/:id/items", tagHandler.AddItems)
			protected.DELETE("/tags/:id/items", tagHandler.RemoveItems)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
