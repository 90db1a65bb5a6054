package api

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/platepal/backend/internal/middleware"
	"github.com/pageza/platepal/backend/internal/service"
	"github.com/pageza/platepal/backend/internal/types"
)

const (
	msgInvalidRegistration = "Please enter your name, a valid email and a password of 6 to 72 characters."
	msgRegistrationFailed  = "Registration failed. Please try a different email."
	msgInvalidCredentials  = "Invalid email or password."
	msgServerError         = "Something went wrong. Please try again."
	msgWelcomeBack         = "Welcome back! Please login to continue."
)

// AuthHandler serves the email check, registration, login and logout flows
type AuthHandler struct {
	authService service.IAuthService
	cookies     CookieOptions
}

func NewAuthHandler(authService service.IAuthService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/verify_email", h.ShowVerifyEmail)
	router.POST("/verify_email", h.VerifyEmail)
	router.GET("/register", h.ShowRegister)
	router.POST("/register", h.Register)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
}

func (h *AuthHandler) ShowVerifyEmail(c *gin.Context) {
	c.HTML(http.StatusOK, "verify_email.html", newPage(c, "Welcome"))
}

// VerifyEmail sends known emails to the login page and new ones to registration
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		page := newPage(c, "Welcome")
		page.Error = "Please enter your email."
		c.HTML(http.StatusBadRequest, "verify_email.html", page)
		return
	}

	query := url.Values{"email": {email}}
	_, err := h.authService.GetUserByEmail(c.Request.Context(), email)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/login?"+query.Encode())
	case errors.Is(err, service.ErrUserNotFound):
		c.Redirect(http.StatusSeeOther, "/register?"+query.Encode())
	default:
		log.Printf("Error looking up email: %v", err)
		page := newPage(c, "Welcome")
		page.Email = email
		page.Error = msgServerError
		c.HTML(http.StatusInternalServerError, "verify_email.html", page)
	}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	page := newPage(c, "Register")
	page.Email = c.Query("email")
	c.HTML(http.StatusOK, "register.html", page)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form types.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Validation error: %v", err)
	}

	_, err := h.authService.Register(c.Request.Context(), form.Name, form.Email, form.Password)
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	page := newPage(c, "Register")
	page.Name = form.Name
	page.Email = form.Email

	switch {
	case errors.Is(err, service.ErrInvalidRegistration):
		page.Error = msgInvalidRegistration
		c.HTML(http.StatusBadRequest, "register.html", page)
	case errors.Is(err, service.ErrRegistrationFailed):
		page.Error = msgRegistrationFailed
		c.HTML(http.StatusConflict, "register.html", page)
	default:
		log.Printf("Error registering user: %v", err)
		page.Error = msgServerError
		c.HTML(http.StatusInternalServerError, "register.html", page)
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	page := newPage(c, "Log in")
	if email := c.Query("email"); email != "" {
		page.Email = email
		page.Info = msgWelcomeBack
	}
	c.HTML(http.StatusOK, "login.html", page)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form types.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Validation error: %v", err)
	}

	token, _, err := h.authService.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		page := newPage(c, "Log in")
		page.Email = form.Email
		if errors.Is(err, service.ErrInvalidCredentials) {
			page.Error = msgInvalidCredentials
			c.HTML(http.StatusUnauthorized, "login.html", page)
			return
		}
		log.Printf("Error logging in: %v", err)
		page.Error = msgServerError
		c.HTML(http.StatusInternalServerError, "login.html", page)
		return
	}

	h.setSessionCookie(c, token, int(h.cookies.MaxAge.Seconds()))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout ends the current session and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, ok := middleware.SessionIDFromContext(c); ok {
		if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
			log.Printf("Error ending session: %v", err)
		}
	}

	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", h.cookies.Secure, true)
}
