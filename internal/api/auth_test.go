package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/platepal/backend/internal/models"
	"github.com/pageza/platepal/backend/internal/testhelpers"
)

func TestRegisterFlow(t *testing.T) {
	env := setupTestRouter(t, nil)

	w := PerformRequest(env.router, http.MethodGet, "/register?email=jane%40example.com", nil, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="jane@example.com"`)

	w = PerformForm(env.router, http.MethodPost, "/register", url.Values{
		"name":     {"Jane Doe"},
		"email":    {"jane@example.com"},
		"password": {"secret123"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var user models.User
	require.NoError(t, env.db.First(&user, "email = ?", "jane@example.com").Error)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTestRouter(t, nil)
	testhelpers.CreateTestUser(t, env.db, "Jane", "jane@example.com")

	w := PerformForm(env.router, http.MethodPost, "/register", url.Values{
		"name":     {"Other Jane"},
		"email":    {"jane@example.com"},
		"password": {"secret123"},
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Registration failed")

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterInvalidInput(t *testing.T) {
	env := setupTestRouter(t, nil)

	w := PerformForm(env.router, http.MethodPost, "/register", url.Values{
		"name":     {"Jane"},
		"email":    {"not-an-email"},
		"password": {"123"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter your name")

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestLoginWrongPasswordCreatesNoSession(t *testing.T) {
	env := setupTestRouter(t, nil)
	testhelpers.CreateTestUser(t, env.db, "Jane", "jane@example.com")

	w := PerformForm(env.router, http.MethodPost, "/login", url.Values{
		"email":    {"jane@example.com"},
		"password": {"wrong-password"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password.")
	assert.Nil(t, sessionCookie(w))

	var sessions int64
	env.db.Model(&models.Session{}).Count(&sessions)
	assert.Zero(t, sessions)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := setupTestRouter(t, nil)
	testhelpers.CreateTestUser(t, env.db, "Jane Doe", "jane@example.com")

	w := PerformForm(env.router, http.MethodPost, "/login", url.Values{
		"email":    {"jane@example.com"},
		"password": {testhelpers.TestPassword},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)

	w = PerformRequest(env.router, http.MethodGet, "/dashboard", nil, "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
}

func TestBearerTokenAccepted(t *testing.T) {
	env := setupTestRouter(t, nil)
	_, cookie := env.createUserAndLogin(t, "Jane", "jane@example.com")

	req := PerformRequestWithToken(env.router, http.MethodGet, "/get_bookmarked_recipes", cookie.Value)
	assert.Equal(t, http.StatusOK, req.Code)
	assert.JSONEq(t, `{"bookmarks":[]}`, req.Body.String())
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := setupTestRouter(t, nil)
	_, cookie := env.createUserAndLogin(t, "Jane", "jane@example.com")

	w := PerformRequest(env.router, http.MethodPost, "/logout", nil, "", cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cleared := sessionCookie(w)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0)

	// The old token no longer works
	w = PerformRequest(env.router, http.MethodGet, "/get_bookmarked_recipes", nil, "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = PerformRequest(env.router, http.MethodGet, "/dashboard", nil, "", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPagesRequireLogin(t *testing.T) {
	env := setupTestRouter(t, nil)

	for _, path := range []string{"/dashboard", "/eat_out", "/eat_at_home"} {
		w := PerformRequest(env.router, http.MethodGet, path, nil, "", nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := PerformRequest(env.router, http.MethodPost, "/logout", nil, "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestVerifyEmail(t *testing.T) {
	env := setupTestRouter(t, nil)
	testhelpers.CreateTestUser(t, env.db, "Jane", "jane@example.com")

	w := PerformRequest(env.router, http.MethodGet, "/verify_email", nil, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformForm(env.router, http.MethodPost, "/verify_email", url.Values{"email": {"jane@example.com"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?email=jane%40example.com", w.Header().Get("Location"))

	w = PerformRequest(env.router, http.MethodGet, "/login?email=jane%40example.com", nil, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome back!")

	w = PerformForm(env.router, http.MethodPost, "/verify_email", url.Values{"email": {"new@example.com"}}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register?email=new%40example.com", w.Header().Get("Location"))

	w = PerformForm(env.router, http.MethodPost, "/verify_email", url.Values{"email": {" "}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHomePageIsPublic(t *testing.T) {
	env := setupTestRouter(t, nil)

	w := PerformRequest(env.router, http.MethodGet, "/", nil, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-authenticated="false"`)

	_, cookie := env.createUserAndLogin(t, "Jane", "jane@example.com")
	w = PerformRequest(env.router, http.MethodGet, "/", nil, "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-authenticated="true"`)
}
