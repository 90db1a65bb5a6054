package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/platepal/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecipeSearchService is a mock implementation of the RecipeSearchService interface
type MockRecipeSearchService struct {
	mock.Mock
}

func (m *MockRecipeSearchService) Search(ctx context.Context, query string) []types.Recipe {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]types.Recipe)
}

// MockRestaurantSearchService is a mock implementation of the RestaurantSearchService interface
type MockRestaurantSearchService struct {
	mock.Mock
}

func (m *MockRestaurantSearchService) Search(ctx context.Context, location string) ([]types.Restaurant, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Restaurant), args.Error(1)
}

// MockBookmarkService is a mock implementation of the BookmarkService interface
type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) ToggleRecipe(ctx context.Context, userID uuid.UUID, req *types.BookmarkRecipeRequest) (types.BookmarkAction, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(types.BookmarkAction), args.Error(1)
}

func (m *MockBookmarkService) ToggleRestaurant(ctx context.Context, userID uuid.UUID, req *types.BookmarkRestaurantRequest) (types.BookmarkAction, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(types.BookmarkAction), args.Error(1)
}

func (m *MockBookmarkService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]types.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

func (m *MockBookmarkService) ListRestaurants(ctx context.Context, userID uuid.UUID) ([]types.Restaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Restaurant), args.Error(1)
}
