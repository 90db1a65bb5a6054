package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/platepal/backend/internal/mocks"
	"github.com/pageza/platepal/backend/internal/service"
	"github.com/pageza/platepal/backend/internal/testhelpers"
	"github.com/pageza/platepal/backend/internal/types"
)

func TestRestaurantSearchRequiresCity(t *testing.T) {
	env := setupTestRouter(t, nil)

	for _, path := range []string{"/api/restaurants", "/api/restaurants?city=", "/api/restaurants?city=%20%20"} {
		w := PerformRequest(env.router, http.MethodGet, path, nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"City parameter is required"}`, w.Body.String(), path)
	}

	env.restaurants.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestRestaurantSearch(t *testing.T) {
	env := setupTestRouter(t, nil)
	env.restaurants.On("Search", mock.Anything, "Springfield").Return([]types.Restaurant{{
		Name:        "Cafe X",
		ReviewCount: testhelpers.IntPtr(120),
		Rating:      testhelpers.Float64Ptr(4.5),
		Price:       testhelpers.StringPtr("N/A"),
		Address:     testhelpers.StringPtr("1 Main St"),
		Coordinates: types.Coordinates{Lat: testhelpers.Float64Ptr(1), Lng: testhelpers.Float64Ptr(2)},
		Description: "Restaurant",
		ImageURL:    testhelpers.StringPtr(""),
		URL:         testhelpers.StringPtr(""),
	}}, nil)

	w := PerformRequest(env.router, http.MethodGet, "/api/restaurants?city=Springfield", nil, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"restaurants":[{
		"name":"Cafe X","review_count":120,"rating":4.5,"price":"N/A","address":"1 Main St",
		"coordinates":{"lat":1,"lng":2},"description":"Restaurant","image_url":"","url":""
	}]}`, w.Body.String())
	env.restaurants.AssertExpectations(t)
}

func TestRestaurantSearchProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
	}{
		{name: "bad response", err: fmt.Errorf("%w: status 401", service.ErrProviderResponse), body: `{"error":"Could not fetch restaurants"}`},
		{name: "transport", err: fmt.Errorf("%w: connection refused", service.ErrProviderUnavailable), body: `{"error":"Server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestRouter(t, nil)
			env.restaurants.On("Search", mock.Anything, "Springfield").Return(nil, tt.err)

			w := PerformRequest(env.router, http.MethodGet, "/api/restaurants?city=Springfield", nil, "", nil)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestEatOutPage(t *testing.T) {
	env := setupTestRouter(t, nil)
	_, cookie := env.createUserAndLogin(t, "Jane", "jane@example.com")

	w := PerformRequest(env.router, http.MethodGet, "/eat_out", nil, "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "restaurant-search")
}

func TestBookmarkEndpointsRequireSession(t *testing.T) {
	env := setupTestRouter(t, nil)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/bookmark_recipe"},
		{http.MethodGet, "/get_bookmarked_recipes"},
		{http.MethodPost, "/bookmark_restaurant"},
		{http.MethodGet, "/get_bookmarked_restaurants"},
	}

	for _, r := range requests {
		w := PerformJSON(env.router, r.method, r.path, map[string]interface{}{"title": "x", "name": "x"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, r.path)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String(), r.path)
	}

	w := PerformRequestWithToken(env.router, http.MethodGet, "/get_bookmarked_restaurants", "forged.token.value")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleRestaurantBookmark(t *testing.T) {
	env := setupTestRouter(t, nil)
	_, cookie := env.createUserAndLogin(t, "Jane", "jane@example.com")

	payload := map[string]interface{}{
		"name":        "Cafe X",
		"rating":      4.5,
		"coordinates": map[string]interface{}{"lat": 1.0, "lng": 2.0},
	}

	w := PerformJSON(env.router, http.MethodPost, "/bookmark_restaurant", payload, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Restaurant bookmarked successfully","action":"added"}`, w.Body.String())

	w = PerformRequest(env.router, http.MethodGet, "/get_bookmarked_restaurants", nil, "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookmarks":[{
		"name":"Cafe X","description":"","rating":4.5,"review_count":null,"price":null,
		"address":null,"coordinates":{"lat":1,"lng":2},"url":null
	}]}`, w.Body.String())

	w = PerformJSON(env.router, http.MethodPost, "/bookmark_restaurant", payload, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Bookmark removed","action":"removed"}`, w.Body.String())

	w = PerformRequest(env.router, http.MethodGet, "/get_bookmarked_restaurants", nil, "", cookie)
	assert.JSONEq(t, `{"bookmarks":[]}`, w.Body.String())
}

func TestToggleRestaurantBookmarkValidation(t *testing.T) {
	env := setupTestRouter(t, nil)
	_, cookie := env.createUserAndLogin(t, "Jane", "jane@example.com")

	w := PerformJSON(env.router, http.MethodPost, "/bookmark_restaurant", map[string]interface{}{"rating": 4}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant name is required"}`, w.Body.String())

	w = PerformJSON(env.router, http.MethodPost, "/bookmark_restaurant", "{not json", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestRestaurantBookmarkPersistenceFailure(t *testing.T) {
	bookmarks := new(mocks.MockBookmarkService)
	env := setupTestRouter(t, bookmarks)
	_, cookie := env.createUserAndLogin(t, "Jane", "jane@example.com")

	bookmarks.On("ToggleRestaurant", mock.Anything, mock.Anything, mock.Anything).
		Return(types.BookmarkAction(""), fmt.Errorf("failed to toggle restaurant bookmark: disk I/O error"))
	bookmarks.On("ListRestaurants", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to list restaurant bookmarks: disk I/O error"))

	w := PerformJSON(env.router, http.MethodPost, "/bookmark_restaurant", map[string]interface{}{"name": "Cafe X"}, cookie)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to bookmark restaurant"}`, w.Body.String())

	w = PerformRequest(env.router, http.MethodGet, "/get_bookmarked_restaurants", nil, "", cookie)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch bookmarks"}`, w.Body.String())
}
