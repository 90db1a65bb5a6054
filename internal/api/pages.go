package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/platepal/backend/internal/middleware"
	"github.com/pageza/platepal/backend/internal/service"
)

// PageHandler renders the landing page and dashboard
type PageHandler struct {
	authService service.IAuthService
}

func NewPageHandler(authService service.IAuthService) *PageHandler {
	return &PageHandler{authService: authService}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newPage(c, "Eat Out"))
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	page := newPage(c, "Dashboard")

	userID, _ := middleware.UserIDFromContext(c)
	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error loading user %s: %v", userID, err)
	} else {
		page.User = user
	}

	c.HTML(http.StatusOK, "dashboard.html", page)
}
