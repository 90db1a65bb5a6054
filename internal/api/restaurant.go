package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/platepal/backend/internal/middleware"
	"github.com/pageza/platepal/backend/internal/service"
	"github.com/pageza/platepal/backend/internal/types"
)

// RestaurantHandler serves restaurant search and restaurant bookmarks
type RestaurantHandler struct {
	searchService   service.IRestaurantSearchService
	bookmarkService service.IBookmarkService
}

func NewRestaurantHandler(searchService service.IRestaurantSearchService, bookmarkService service.IBookmarkService) *RestaurantHandler {
	return &RestaurantHandler{
		searchService:   searchService,
		bookmarkService: bookmarkService,
	}
}

// Search returns the most reviewed restaurants in the requested city
func (h *RestaurantHandler) Search(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "City parameter is required"})
		return
	}

	restaurants, err := h.searchService.Search(c.Request.Context(), city)
	if err != nil {
		log.Printf("Error searching restaurants in %s: %v", city, err)
		if errors.Is(err, service.ErrProviderResponse) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not fetch restaurants"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, RestaurantsResponse{Restaurants: restaurants})
}

func (h *RestaurantHandler) EatOut(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newPage(c, "Eat Out"))
}

func (h *RestaurantHandler) ToggleBookmark(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req types.BookmarkRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	action, err := h.bookmarkService.ToggleRestaurant(c.Request.Context(), userID, &req)
	if errors.Is(err, service.ErrMissingBookmarkKey) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Restaurant name is required"})
		return
	}
	if errors.Is(err, service.ErrInvalidBookmarkURL) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Bookmark link must be an http or https URL"})
		return
	}
	if err != nil {
		log.Printf("Error bookmarking restaurant: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to bookmark restaurant"})
		return
	}

	message := "Restaurant bookmarked successfully"
	if action == types.BookmarkRemoved {
		message = "Bookmark removed"
	}
	c.JSON(http.StatusOK, types.BookmarkResponse{Message: message, Action: action})
}

func (h *RestaurantHandler) ListBookmarks(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	bookmarks, err := h.bookmarkService.ListRestaurants(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching restaurant bookmarks: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch bookmarks"})
		return
	}

	c.JSON(http.StatusOK, RestaurantBookmarksResponse{Bookmarks: bookmarks})
}
