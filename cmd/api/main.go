package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"ai-portfolio-generator/internal/config"
	"ai-portfolio-generator/internal/handlers"
	"ai-portfolio-generator/internal/repositories"
	"ai-portfolio-generator/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	userRepo := repositories.NewUserRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	themeService := services.NewThemeService()
	packagerService := services.NewPackagerService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize generator
	generatorService := services.NewGeneratorService(
		geminiService,
		themeService,
		cfg.Worker.RetryMaxAttempts,
	)

	portfolioService := services.NewPortfolioService(
		portfolioRepo,
		resumeRepo,
		generatorService,
	)
	log.Println("✅ Generator service initialized")

	// Initialize worker
	worker := services.NewWorker(
		portfolioRepo,
		portfolioService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	extractHandler := handlers.NewExtractHandler(
		resumeRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	generateHandler := handlers.NewGenerateHandler(
		portfolioRepo,
		resumeRepo,
		userRepo,
		themeService,
		worker,
	)
	portfolioHandler := handlers.NewPortfolioHandler(
		portfolioRepo,
		userRepo,
		packagerService,
	)
	themeHandler := handlers.NewThemeHandler(themeService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Portfolio Generator API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/extract-resume", extractHandler.HandleExtract)
	api.Post("/generate", generateHandler.HandleGenerate)
	api.Get("/themes", themeHandler.HandleGetThemes)
	api.Get("/portfolio/:id", portfolioHandler.HandleGetPortfolio)
	api.Get("/portfolio/:id/download", portfolioHandler.HandleDownload)
	api.Post("/portfolio/:id/favorite", portfolioHandler.HandleSetFavorite)
	api.Get("/portfolios", portfolioHandler.HandleListPortfolios)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Portfolio Generator API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/extract-resume",
				"POST /api/v1/generate",
				"GET /api/v1/themes",
				"GET /api/v1/portfolio/:id",
				"GET /api/v1/portfolio/:id/download",
				"POST /api/v1/portfolio/:id/favorite",
				"GET /api/v1/portfolios",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
