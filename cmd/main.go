package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"mood-movie-discovery/internal/config"
	"mood-movie-discovery/internal/database"
	"mood-movie-discovery/internal/handler"
	"mood-movie-discovery/internal/middleware"
	"mood-movie-discovery/internal/repository"
	"mood-movie-discovery/internal/service"
	"mood-movie-discovery/internal/session"
	"mood-movie-discovery/internal/store"
	"mood-movie-discovery/internal/taxonomy"
	"mood-movie-discovery/internal/tmdb"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.TMDB.APIKey == "" {
		slog.Warn("TMDB_API_KEY not set, discovery endpoints will return 503")
	}

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Redis is optional: nil disables the result cache and collection mirrors.
	rdb := database.NewRedis(cfg.Redis)

	// Initialize TMDB client and static taxonomy
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL)
	catalog := taxonomy.NewCatalog()

	// Initialize layers
	watchlistRepo := repository.NewWatchlistRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	userStore := store.New(watchlistRepo, journalRepo, rdb)
	sessions := session.NewManager()

	discoverySvc := service.NewDiscoveryService(catalog, tmdbClient, rdb, sessions)
	librarySvc := service.NewLibraryService(userStore)

	discoveryH := handler.NewDiscoveryHandler(discoverySvc)
	libraryH := handler.NewLibraryHandler(librarySvc)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mood Movie Discovery",
		ServerHeader: "Mood-Movie-Discovery",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.NewRateLimiter(rdb, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSec).Handler())
	app.Use(middleware.Auth())

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", discoveryH.Health)
	api.Post("/discover", discoveryH.Discover)
	api.Get("/lists", discoveryH.Lists)
	api.Get("/paths/:id", discoveryH.CuratedPath)
	api.Get("/watchlist", libraryH.Watchlist)
	api.Post("/watchlist", libraryH.AddToWatchlist)
	api.Delete("/watchlist/:movieID", libraryH.RemoveFromWatchlist)
	api.Get("/journal", libraryH.JournalEntries)
	api.Post("/journal", libraryH.AddJournalEntry)
	api.Delete("/journal/:id", libraryH.DeleteJournalEntry)
	api.Get("/user-data", libraryH.UserData)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down mood movie discovery...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting mood movie discovery", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
