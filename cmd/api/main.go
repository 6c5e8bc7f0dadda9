// Package main provides the Forkful JSON API server
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cookbookapp "github.com/forkful/v2/internal/application/cookbook"
	groceryapp "github.com/forkful/v2/internal/application/grocery"
	recipeapp "github.com/forkful/v2/internal/application/recipe"
	"github.com/forkful/v2/internal/infrastructure/config"
	"github.com/forkful/v2/internal/infrastructure/http/server"
	gormrepo "github.com/forkful/v2/internal/infrastructure/persistence/gorm"
	"github.com/forkful/v2/internal/infrastructure/persistence/memory"
	"github.com/forkful/v2/internal/infrastructure/persistence/postgres"
	redisrepo "github.com/forkful/v2/internal/infrastructure/persistence/redis"
	"github.com/forkful/v2/internal/infrastructure/persistence/sqlite"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/forkful/v2/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := setupDatabase(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}

	cache, err := setupCache(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize cache", zap.Error(err))
	}

	recipeRepo := gormrepo.NewRecipeRepository(db)
	listRepo := gormrepo.NewGroceryListRepository(db)
	cookbookRepo := gormrepo.NewCookbookRepository(db)

	recipeService := recipeapp.NewRecipeService(recipeRepo, appLogger)
	groceryService := groceryapp.NewGroceryService(recipeRepo, listRepo, cache, cfg.Cache.GroceryListTTL, appLogger)
	cookbookService := cookbookapp.NewCookbookService(cookbookRepo, recipeRepo, appLogger)

	httpServer := server.NewServer(cfg, appLogger, recipeService, groceryService, cookbookService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.App.Debug {
		logLevel = gormlogger.Info
	}

	if cfg.Database.Driver == "postgres" {
		return postgres.SetupDatabase(cfg, logLevel)
	}
	return sqlite.SetupDatabase(cfg.GetDSN(), logLevel)
}

func setupCache(cfg *config.Config, appLogger *zap.Logger) (outbound.CacheRepository, error) {
	if !cfg.Redis.Enabled {
		appLogger.Info("Using in-memory cache")
		return memory.NewCacheRepository(cfg.Cache.CleanupInterval), nil
	}

	client, err := redisrepo.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	appLogger.Info("Using Redis cache", zap.String("addr", cfg.RedisAddr()))
	return redisrepo.NewCacheRepository(client), nil
}
