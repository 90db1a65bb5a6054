package main

import (
	"context"
	"errors"
	"log"

	"github.com/pageza/platepal/backend/config"
	"github.com/pageza/platepal/backend/internal/database"
	"github.com/pageza/platepal/backend/internal/models"
	"github.com/pageza/platepal/backend/internal/service"
	"github.com/pageza/platepal/backend/internal/types"
)

const testPassword = "testpassword123"

func strPtr(s string) *string { return &s }

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	authSvc := service.NewAuthService(db, service.NewGormSessionStore(db), service.AuthOptions{
		Secret:     cfg.SessionSecret,
		SessionTTL: cfg.SessionTTL,
		BcryptCost: cfg.BcryptCost,
	})
	bookmarks := service.NewBookmarkService(db, nil)

	testUsers := []struct {
		name       string
		email      string
		recipes    []types.BookmarkRecipeRequest
		restaurant []types.BookmarkRestaurantRequest
	}{
		{
			name:  "John Doe",
			email: "john.doe@example.com",
			recipes: []types.BookmarkRecipeRequest{
				{Title: "Classic Margherita Pizza", Description: "Tomato, mozzarella and basil", URL: strPtr("https://example.com/pizza")},
				{Title: "Lemon Garlic Pasta", Description: "Ready in twenty minutes"},
			},
			restaurant: []types.BookmarkRestaurantRequest{
				{Name: "Golden Gate Diner", Description: "Diners", Price: strPtr("$$"), Address: strPtr("1 Market St San Francisco, CA 94105")},
			},
		},
		{
			name:  "Jane Smith",
			email: "jane.smith@example.com",
			recipes: []types.BookmarkRecipeRequest{
				{Title: "Chicken Tikka Masala", Description: "Creamy, mildly spiced curry"},
			},
		},
		{
			name:  "Bob Wilson",
			email: "bob.wilson@example.com",
		},
	}

	log.Println("Creating test users...")

	for _, userData := range testUsers {
		user, err := authSvc.Register(ctx, userData.name, userData.email, testPassword)
		if errors.Is(err, service.ErrRegistrationFailed) {
			log.Printf("User %s already exists, skipping...", userData.email)
			continue
		}
		if err != nil {
			log.Printf("Failed to create user %s: %v", userData.email, err)
			continue
		}

		for i := range userData.recipes {
			if _, err := bookmarks.ToggleRecipe(ctx, user.ID, &userData.recipes[i]); err != nil {
				log.Printf("Failed to bookmark recipe for %s: %v", userData.email, err)
			}
		}
		for i := range userData.restaurant {
			if _, err := bookmarks.ToggleRestaurant(ctx, user.ID, &userData.restaurant[i]); err != nil {
				log.Printf("Failed to bookmark restaurant for %s: %v", userData.email, err)
			}
		}

		log.Printf("Created user: %s (%s) with %d recipe and %d restaurant bookmarks",
			userData.name, userData.email, len(userData.recipes), len(userData.restaurant))
	}

	var userCount, recipeCount, restaurantCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.BookmarkedRecipe{}).Count(&recipeCount)
	db.Model(&models.BookmarkedRestaurant{}).Count(&restaurantCount)

	log.Println("Test Users Summary:")
	log.Printf("Total users: %d", userCount)
	log.Printf("Recipe bookmarks: %d", recipeCount)
	log.Printf("Restaurant bookmarks: %d", restaurantCount)
	log.Printf("Password for every test user: %s", testPassword)
}
