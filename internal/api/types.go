package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/platepal/backend/internal/middleware"
	"github.com/pageza/platepal/backend/internal/models"
	"github.com/pageza/platepal/backend/internal/types"
)

// PageData is the data every HTML page template is rendered with
type PageData struct {
	Title         string
	Authenticated bool
	Error         string
	Info          string

	// Form values echoed back into auth forms
	Name  string
	Email string

	User              *models.User
	Query             string
	Recipes           []types.Recipe
	BookmarkedRecipes []types.Recipe
}

func newPage(c *gin.Context, title string) PageData {
	_, authenticated := middleware.UserIDFromContext(c)
	return PageData{Title: title, Authenticated: authenticated}
}

// ErrorResponse is the body of every JSON error
type ErrorResponse struct {
	Error string `json:"error"`
}

// RestaurantsResponse is the body of a successful restaurant search
type RestaurantsResponse struct {
	Restaurants []types.Restaurant `json:"restaurants"`
}

// RecipeBookmarksResponse lists a user's recipe bookmarks
type RecipeBookmarksResponse struct {
	Bookmarks []types.Recipe `json:"bookmarks"`
}

// RestaurantBookmarksResponse lists a user's restaurant bookmarks
type RestaurantBookmarksResponse struct {
	Bookmarks []types.Restaurant `json:"bookmarks"`
}
