package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/platepal/backend/internal/middleware"
	"github.com/pageza/platepal/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// CookieOptions controls the session cookie
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// Dependencies are the services the handlers are built from
type Dependencies struct {
	Auth        service.IAuthService
	Bookmarks   service.IBookmarkService
	Restaurants service.IRestaurantSearchService
	Recipes     service.IRecipeSearchService
	Cookies     CookieOptions
}

// RegisterRoutes registers all page and API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)

	authHandler := NewAuthHandler(deps.Auth, deps.Cookies)
	pageHandler := NewPageHandler(deps.Auth)
	restaurantHandler := NewRestaurantHandler(deps.Restaurants, deps.Bookmarks)
	recipeHandler := NewRecipeHandler(deps.Recipes, deps.Bookmarks)

	// Public routes. A valid session only changes what the navigation shows.
	public := router.Group("")
	public.Use(middleware.OptionalAuth(deps.Auth))
	public.GET("/", pageHandler.Home)
	public.GET("/api/restaurants", restaurantHandler.Search)
	authHandler.RegisterRoutes(public)

	// Pages for logged in users
	pages := router.Group("")
	pages.Use(middleware.RequireLogin(deps.Auth))
	pages.GET("/dashboard", pageHandler.Dashboard)
	pages.GET("/eat_out", restaurantHandler.EatOut)
	pages.GET("/eat_at_home", recipeHandler.EatAtHome)
	pages.POST("/eat_at_home", recipeHandler.EatAtHome)
	pages.POST("/logout", authHandler.Logout)

	// JSON bookmark endpoints
	bookmarks := router.Group("")
	bookmarks.Use(middleware.AuthMiddleware(deps.Auth))
	bookmarks.POST("/bookmark_recipe", recipeHandler.ToggleBookmark)
	bookmarks.GET("/get_bookmarked_recipes", recipeHandler.ListBookmarks)
	bookmarks.POST("/bookmark_restaurant", restaurantHandler.ToggleBookmark)
	bookmarks.GET("/get_bookmarked_restaurants", restaurantHandler.ListBookmarks)
}
