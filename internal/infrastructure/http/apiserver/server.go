// Package apiserver provides a pure JSON API HTTP server implementation
package apiserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alchemorsel/pantry/internal/infrastructure/config"
	"github.com/alchemorsel/pantry/internal/infrastructure/http/handlers"
	"github.com/alchemorsel/pantry/internal/infrastructure/http/middleware"
	"github.com/alchemorsel/pantry/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server represents the pure JSON API HTTP server
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
	router  *chi.Mux
	pantry  *handlers.PantryHandlers
	db      *gorm.DB
	metrics *middleware.Metrics
}

// NewServer creates a new API server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	pantryService inbound.PantryService,
	db *gorm.DB,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		pantry:  handlers.NewPantryHandlers(pantryService, logger),
		db:      db,
		metrics: middleware.NewMetrics(),
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(s.config.Server.RequestsPerMin, s.config.Server.BurstSize))
	r.Use(s.metrics.Collect())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	r.Get("/health", s.handleHealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/availability", s.pantry.EvaluateAvailability)

		r.Route("/quantity", func(r chi.Router) {
			r.Post("/classify", s.pantry.ClassifyQuantity)
			r.Post("/validate", s.pantry.ValidateQuantity)
			r.Post("/format", s.pantry.FormatQuantityInput)
		})

		r.Route("/usage", func(r chi.Router) {
			r.Post("/plan", s.pantry.BuildUsagePlans)
			r.Post("/commit", s.pantry.CommitUsage)
		})

		r.Post("/matches/suggest", s.pantry.SuggestMatches)
		r.Get("/pantry/expiring", s.pantry.ListExpiringLots)
	})

	return r
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK

	if sqlDB, err := s.db.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    status,
		"version":   s.config.App.Version,
		"timestamp": time.Now().Unix(),
	})
}

// Start begins listening for requests
func (s *Server) Start() error {
	s.logger.Info("Starting API server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}
