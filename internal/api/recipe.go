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

// RecipeHandler serves the recipe search page and recipe bookmarks
type RecipeHandler struct {
	searchService   service.IRecipeSearchService
	bookmarkService service.IBookmarkService
}

func NewRecipeHandler(searchService service.IRecipeSearchService, bookmarkService service.IBookmarkService) *RecipeHandler {
	return &RecipeHandler{
		searchService:   searchService,
		bookmarkService: bookmarkService,
	}
}

// EatAtHome renders the recipe page with the user's bookmarks and, on POST,
// the results for the submitted query
func (h *RecipeHandler) EatAtHome(c *gin.Context) {
	page := newPage(c, "Eat at Home")
	page.Recipes = []types.Recipe{}
	page.BookmarkedRecipes = []types.Recipe{}

	userID, _ := middleware.UserIDFromContext(c)
	bookmarks, err := h.bookmarkService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching bookmarks: %v", err)
	} else {
		page.BookmarkedRecipes = bookmarks
	}

	if c.Request.Method == http.MethodPost {
		page.Query = strings.TrimSpace(c.PostForm("query"))
		if page.Query != "" {
			page.Recipes = h.searchService.Search(c.Request.Context(), page.Query)
		}
	}

	c.HTML(http.StatusOK, "recipes.html", page)
}

func (h *RecipeHandler) ToggleBookmark(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req types.BookmarkRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	action, err := h.bookmarkService.ToggleRecipe(c.Request.Context(), userID, &req)
	if errors.Is(err, service.ErrMissingBookmarkKey) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Recipe title is required"})
		return
	}
	if errors.Is(err, service.ErrInvalidBookmarkURL) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Bookmark link must be an http or https URL"})
		return
	}
	if err != nil {
		log.Printf("Error bookmarking recipe: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to bookmark recipe"})
		return
	}

	message := "Recipe bookmarked successfully"
	if action == types.BookmarkRemoved {
		message = "Bookmark removed"
	}
	c.JSON(http.StatusOK, types.BookmarkResponse{Message: message, Action: action})
}

func (h *RecipeHandler) ListBookmarks(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	bookmarks, err := h.bookmarkService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching bookmarks: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch bookmarks"})
		return
	}

	c.JSON(http.StatusOK, RecipeBookmarksResponse{Bookmarks: bookmarks})
}
