package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/platepal/backend/config"
	"github.com/pageza/platepal/backend/internal/database"
	"github.com/pageza/platepal/backend/internal/server"
	"github.com/pageza/platepal/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var sessions service.SessionStore
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, keeping sessions in the database: %v", err)
		} else {
			defer client.Close()
			sessions = service.NewRedisSessionStore(client)
		}
	}
	if sessions == nil {
		store := service.NewGormSessionStore(db)
		if purged, err := store.PurgeExpired(context.Background()); err != nil {
			log.Printf("Warning: failed to purge expired sessions: %v", err)
		} else if purged > 0 {
			log.Printf("Purged %d expired sessions", purged)
		}
		sessions = store
	}

	// Create and start server
	srv, err := server.New(cfg, db, sessions)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
