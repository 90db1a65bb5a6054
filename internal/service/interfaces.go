package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/platepal/backend/internal/models"
	"github.com/pageza/platepal/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(ctx context.Context, token string) (*types.SessionClaims, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IBookmarkService defines the interface for per-user bookmark operations
type IBookmarkService interface {
	ToggleRecipe(ctx context.Context, userID uuid.UUID, req *types.BookmarkRecipeRequest) (types.BookmarkAction, error)
	ToggleRestaurant(ctx context.Context, userID uuid.UUID, req *types.BookmarkRestaurantRequest) (types.BookmarkAction, error)
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]types.Recipe, error)
	ListRestaurants(ctx context.Context, userID uuid.UUID) ([]types.Restaurant, error)
}

// IRestaurantSearchService looks up restaurants by location
type IRestaurantSearchService interface {
	Search(ctx context.Context, location string) ([]types.Restaurant, error)
}

// IRecipeSearchService looks up recipes by free-text query. It never fails;
// upstream problems yield an empty list.
type IRecipeSearchService interface {
	Search(ctx context.Context, query string) []types.Recipe
}
