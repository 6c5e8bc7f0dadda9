// Package server provides the JSON API HTTP server implementation
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/forkful/v2/internal/infrastructure/config"
	"github.com/forkful/v2/internal/infrastructure/http/handlers"
	"github.com/forkful/v2/internal/infrastructure/http/middleware"
	"github.com/forkful/v2/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	config          *config.Config
	logger          *zap.Logger
	router          *chi.Mux
	server          *http.Server
	recipeService   inbound.RecipeService
	groceryService  inbound.GroceryService
	cookbookService inbound.CookbookService
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	recipeService inbound.RecipeService,
	groceryService inbound.GroceryService,
	cookbookService inbound.CookbookService,
) *Server {
	s := &Server{
		config:          cfg,
		logger:          logger,
		recipeService:   recipeService,
		groceryService:  groceryService,
		cookbookService: cookbookService,
	}

	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS(s.config))
	r.Use(middleware.RateLimit(s.config))

	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	// Health check endpoint
	r.Get("/health", handlers.HealthCheck(s.config.App.Version))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Identity())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *Server) setupAPIV1Routes(r chi.Router) {
	recipeH := handlers.NewRecipeAPIHandlers(s.recipeService, s.logger)
	groceryH := handlers.NewGroceryAPIHandlers(s.groceryService, s.logger)
	cookbookH := handlers.NewCookbookAPIHandlers(s.cookbookService, s.logger)

	// Recipe routes
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeH.ListRecipes)
		r.Post("/", recipeH.CreateRecipe)
		r.Get("/{id}", recipeH.GetRecipe)
		r.Put("/{id}", recipeH.UpdateRecipe)
		r.Delete("/{id}", recipeH.DeleteRecipe)
		r.Post("/{id}/publish", recipeH.PublishRecipe)
		r.Post("/{id}/archive", recipeH.ArchiveRecipe)
	})

	// Grocery list routes
	r.Route("/grocery-lists", func(r chi.Router) {
		r.Get("/", groceryH.ListGroceryLists)
		r.Post("/generate", groceryH.GenerateGroceryList)
		r.Get("/{id}", groceryH.GetGroceryList)
		r.Delete("/{id}", groceryH.DeleteGroceryList)
	})

	// Cookbook routes
	r.Route("/cookbooks", func(r chi.Router) {
		r.Get("/", cookbookH.ListCookbooks)
		r.Post("/", cookbookH.CreateCookbook)
		r.Get("/{id}", cookbookH.GetCookbook)
		r.Delete("/{id}", cookbookH.DeleteCookbook)
		r.Put("/{id}/visibility", cookbookH.SetVisibility)
		r.Post("/{id}/recipes/{recipeID}", cookbookH.AddRecipe)
		r.Delete("/{id}/recipes/{recipeID}", cookbookH.RemoveRecipe)
		r.Post("/{id}/members", cookbookH.AddMember)
		r.Delete("/{id}/members/{memberID}", cookbookH.RemoveMember)
	})
}

// Router returns the configured router, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
