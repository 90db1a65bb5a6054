package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pageza/platepal/backend/internal/metrics"
	"github.com/pageza/platepal/backend/internal/service"
	"github.com/pageza/platepal/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const yelpResponse = `{
  "businesses": [
    {
      "name": "Cafe X",
      "review_count": 120,
      "rating": 4.5,
      "price": "$$",
      "location": {"display_address": ["1 Main St", "Springfield, IL 62701"]},
      "coordinates": {"latitude": 39.78, "longitude": -89.65},
      "categories": [{"alias": "coffee", "title": "Coffee & Tea"}, {"alias": "bakeries", "title": "Bakeries"}],
      "image_url": "https://img.example/cafe.jpg",
      "url": "https://yelp.example/cafe-x"
    },
    {
      "name": "Plain Diner",
      "review_count": 3,
      "rating": 3.0,
      "location": {"display_address": ["2 Side St"]},
      "coordinates": {"latitude": 39.7, "longitude": -89.6},
      "categories": []
    }
  ]
}`

func newYelpServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	captured := &http.Request{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestRestaurantSearch(t *testing.T) {
	server, captured := newYelpServer(t, http.StatusOK, yelpResponse)
	recorder := new(testhelpers.MockRecorder)
	recorder.On("RecordProviderCall", "yelp", metrics.OutcomeSuccess, mock.AnythingOfType("time.Duration")).Return()

	svc := service.NewRestaurantSearchService(server.Client(), service.ProviderConfig{APIKey: "yelp-key", BaseURL: server.URL}, recorder)

	restaurants, err := svc.Search(context.Background(), "Springfield")
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	assert.Equal(t, "Bearer yelp-key", captured.Header.Get("Authorization"))
	query := captured.URL.Query()
	assert.Equal(t, "Springfield", query.Get("location"))
	assert.Equal(t, "restaurants", query.Get("term"))
	assert.Equal(t, "review_count", query.Get("sort_by"))
	assert.Equal(t, "20", query.Get("limit"))

	first := restaurants[0]
	assert.Equal(t, "Cafe X", first.Name)
	assert.Equal(t, 120, *first.ReviewCount)
	assert.Equal(t, 4.5, *first.Rating)
	assert.Equal(t, "$$", *first.Price)
	assert.Equal(t, "1 Main St Springfield, IL 62701", *first.Address)
	assert.Equal(t, 39.78, *first.Coordinates.Lat)
	assert.Equal(t, -89.65, *first.Coordinates.Lng)
	assert.Equal(t, "Coffee & Tea", first.Description)
	assert.Equal(t, "https://img.example/cafe.jpg", *first.ImageURL)
	assert.Equal(t, "https://yelp.example/cafe-x", *first.URL)

	second := restaurants[1]
	assert.Equal(t, "N/A", *second.Price)
	assert.Equal(t, "Restaurant", second.Description)
	assert.Equal(t, "", *second.ImageURL)
	assert.Equal(t, "", *second.URL)

	recorder.AssertExpectations(t)
}

func TestRestaurantSearchBadResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non-200 status", status: http.StatusUnauthorized, body: `{"error": {"code": "TOKEN_INVALID"}}`},
		{name: "missing businesses", status: http.StatusOK, body: `{"total": 0}`},
		{name: "invalid json", status: http.StatusOK, body: `<html>oops</html>`},
		{name: "missing rating", status: http.StatusOK, body: `{"businesses": [{"name": "A", "review_count": 1, "location": {"display_address": []}, "coordinates": {}}]}`},
		{name: "missing location", status: http.StatusOK, body: `{"businesses": [{"name": "A", "review_count": 1, "rating": 4}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newYelpServer(t, tt.status, tt.body)
			svc := service.NewRestaurantSearchService(server.Client(), service.ProviderConfig{APIKey: "k", BaseURL: server.URL}, nil)

			restaurants, err := svc.Search(context.Background(), "Springfield")
			assert.ErrorIs(t, err, service.ErrProviderResponse)
			assert.Nil(t, restaurants)
		})
	}
}

func TestRestaurantSearchEmptyResult(t *testing.T) {
	server, _ := newYelpServer(t, http.StatusOK, `{"businesses": []}`)
	svc := service.NewRestaurantSearchService(server.Client(), service.ProviderConfig{BaseURL: server.URL}, nil)

	restaurants, err := svc.Search(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)
}

func TestRestaurantSearchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	recorder := new(testhelpers.MockRecorder)
	recorder.On("RecordProviderCall", "yelp", metrics.OutcomeTransport, mock.AnythingOfType("time.Duration")).Return()
	svc := service.NewRestaurantSearchService(nil, service.ProviderConfig{BaseURL: baseURL}, recorder)

	_, err := svc.Search(context.Background(), "Springfield")
	assert.ErrorIs(t, err, service.ErrProviderUnavailable)
	recorder.AssertExpectations(t)
}
