package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/pageza/platepal/backend/config"
	"github.com/pageza/platepal/backend/internal/api"
	"github.com/pageza/platepal/backend/internal/metrics"
	"github.com/pageza/platepal/backend/internal/router"
	"github.com/pageza/platepal/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the services and routes on top of db and sessions
func New(cfg *config.Config, db *gorm.DB, sessions service.SessionStore) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	providerClient := &http.Client{Timeout: cfg.ProviderTimeout}

	auth := service.NewAuthService(db, sessions, service.AuthOptions{
		Secret:     cfg.SessionSecret,
		SessionTTL: cfg.SessionTTL,
		BcryptCost: cfg.BcryptCost,
	})

	engine, err := router.SetupRouter(router.Options{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Metrics:          collector,
		Gatherer:         registry,
	}, api.Dependencies{
		Auth:      auth,
		Bookmarks: service.NewBookmarkService(db, collector),
		Restaurants: service.NewRestaurantSearchService(providerClient, service.ProviderConfig{
			APIKey:  cfg.YelpAPIKey,
			BaseURL: cfg.YelpBaseURL,
		}, collector),
		Recipes: service.NewRecipeSearchService(providerClient, service.ProviderConfig{
			APIKey:  cfg.SpoonacularAPIKey,
			BaseURL: cfg.SpoonacularBaseURL,
		}, collector),
		Cookies: api.CookieOptions{
			Secure: cfg.CookieSecure,
			MaxAge: cfg.SessionTTL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
