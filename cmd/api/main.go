package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Nehalakshmi23/carrer-campus/internal/config"
	"github.com/Nehalakshmi23/carrer-campus/internal/handlers"
	"github.com/Nehalakshmi23/carrer-campus/internal/middleware"
	"github.com/Nehalakshmi23/carrer-campus/internal/models"
	"github.com/Nehalakshmi23/carrer-campus/internal/repositories"
	"github.com/Nehalakshmi23/carrer-campus/internal/services"
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
	userRepo := repositories.NewUserRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractorService()

	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err := authService.EnsureDefaultUser(); err != nil {
		log.Fatalf("❌ Failed to seed default user: %v", err)
	}
	log.Println("✅ Auth service initialized")

	// Load the trained match model; scoring degrades gracefully without it
	model, err := services.LoadMatchModel(cfg.Model.ArtifactPath)
	if err != nil {
		log.Printf("⚠️  Match model not loaded (%v); semantic scores will be 0.0\n", err)
		model = services.NewNopMatchModel()
	} else {
		log.Println("✅ Match model loaded successfully")
	}

	// Load the skill vocabulary
	vocabulary, err := services.LoadSkillVocabulary(cfg.Analyzer.VocabularyPath)
	if err != nil {
		log.Fatalf("❌ Failed to load skill vocabulary: %v", err)
	}
	log.Printf("✅ Skill vocabulary loaded (%d skills)\n", len(vocabulary))

	// Initialize analyzer
	analyzer := services.NewAnalyzerService(vocabulary, models.DefaultScoreWeights(), model)
	chatService := services.NewChatService()
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer,
		storageService,
		extractor,
		cfg.Storage.MaxFileSize,
	)
	chatHandler := handlers.NewChatHandler(chatService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Compass API",
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

	// Brute-force protection on the auth routes
	authLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth routes
	app.Post("/signup", authLimiter, authHandler.HandleSignup)
	app.Post("/login", authLimiter, authHandler.HandleLogin)

	// Protected routes
	requireAuth := middleware.RequireAuth(authService, userRepo)
	app.Post("/analyze", requireAuth, analyzeHandler.HandleAnalyze)
	app.Post("/chat", requireAuth, chatHandler.HandleChat)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Compass API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /signup",
				"POST /login",
				"POST /analyze",
				"POST /chat",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

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
