package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pageza/platepal/backend/config"
	"github.com/pageza/platepal/backend/internal/database"
	"github.com/pageza/platepal/backend/internal/service"
)

func main() {
	// Parse command line flags
	purge := flag.Bool("purge-sessions", false, "Delete expired sessions after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	fmt.Println("Schema is up to date.")

	if *purge {
		purged, err := service.NewGormSessionStore(db).PurgeExpired(context.Background())
		if err != nil {
			log.Fatalf("failed to purge sessions: %v", err)
		}
		fmt.Printf("Purged %d expired sessions.\n", purged)
	}
}
