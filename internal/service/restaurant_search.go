package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/platepal/backend/internal/metrics"
	"github.com/pageza/platepal/backend/internal/types"
)

var (
	// ErrProviderResponse means the provider answered with something unusable
	ErrProviderResponse = errors.New("unexpected provider response")
	// ErrProviderUnavailable means the provider could not be reached
	ErrProviderUnavailable = errors.New("provider unavailable")
)

const (
	restaurantProvider    = "yelp"
	restaurantSearchTerm  = "restaurants"
	restaurantSortBy      = "review_count"
	restaurantSearchLimit = 20

	defaultPrice       = "N/A"
	defaultDescription = "Restaurant"
)

// ProviderConfig holds the credentials and endpoint of a search provider
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}

type RestaurantSearchService struct {
	client  *http.Client
	config  ProviderConfig
	metrics metrics.Recorder
}

func NewRestaurantSearchService(client *http.Client, cfg ProviderConfig, recorder metrics.Recorder) *RestaurantSearchService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &RestaurantSearchService{client: client, config: cfg, metrics: recorder}
}

type yelpSearchResponse struct {
	Businesses *[]yelpBusiness `json:"businesses"`
}

type yelpBusiness struct {
	Name        *string  `json:"name"`
	ReviewCount *int     `json:"review_count"`
	Rating      *float64 `json:"rating"`
	Price       *string  `json:"price"`
	Location    *struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
	Coordinates *struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"coordinates"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
	ImageURL *string `json:"image_url"`
	URL      *string `json:"url"`
}

func (b *yelpBusiness) toRestaurant() (types.Restaurant, error) {
	switch {
	case b.Name == nil:
		return types.Restaurant{}, fmt.Errorf("%w: business without name", ErrProviderResponse)
	case b.ReviewCount == nil:
		return types.Restaurant{}, fmt.Errorf("%w: %s has no review_count", ErrProviderResponse, *b.Name)
	case b.Rating == nil:
		return types.Restaurant{}, fmt.Errorf("%w: %s has no rating", ErrProviderResponse, *b.Name)
	case b.Location == nil || b.Location.DisplayAddress == nil:
		return types.Restaurant{}, fmt.Errorf("%w: %s has no display_address", ErrProviderResponse, *b.Name)
	case b.Coordinates == nil:
		return types.Restaurant{}, fmt.Errorf("%w: %s has no coordinates", ErrProviderResponse, *b.Name)
	}

	price := defaultPrice
	if b.Price != nil {
		price = *b.Price
	}
	address := strings.Join(b.Location.DisplayAddress, " ")

	description := defaultDescription
	if len(b.Categories) > 0 && b.Categories[0].Title != "" {
		description = b.Categories[0].Title
	}

	imageURL := ""
	if b.ImageURL != nil {
		imageURL = *b.ImageURL
	}
	link := ""
	if b.URL != nil {
		link = *b.URL
	}

	return types.Restaurant{
		Name:        *b.Name,
		ReviewCount: b.ReviewCount,
		Rating:      b.Rating,
		Price:       &price,
		Address:     &address,
		Coordinates: types.Coordinates{
			Lat: b.Coordinates.Latitude,
			Lng: b.Coordinates.Longitude,
		},
		Description: description,
		ImageURL:    &imageURL,
		URL:         &link,
	}, nil
}

// Search returns up to 20 of the most reviewed restaurants near location
func (s *RestaurantSearchService) Search(ctx context.Context, location string) ([]types.Restaurant, error) {
	start := time.Now()

	restaurants, err := s.search(ctx, location)
	switch {
	case err == nil:
		s.metrics.RecordProviderCall(restaurantProvider, metrics.OutcomeSuccess, time.Since(start))
	case errors.Is(err, ErrProviderUnavailable):
		s.metrics.RecordProviderCall(restaurantProvider, metrics.OutcomeTransport, time.Since(start))
	default:
		s.metrics.RecordProviderCall(restaurantProvider, metrics.OutcomeBadResponse, time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Found %d restaurants in %s", len(restaurants), location)
	return restaurants, nil
}

func (s *RestaurantSearchService) search(ctx context.Context, location string) ([]types.Restaurant, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("term", restaurantSearchTerm)
	params.Set("sort_by", restaurantSortBy)
	params.Set("limit", fmt.Sprint(restaurantSearchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderResponse, resp.StatusCode)
	}

	var body yelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderResponse, err)
	}
	if body.Businesses == nil {
		return nil, fmt.Errorf("%w: missing businesses", ErrProviderResponse)
	}

	restaurants := make([]types.Restaurant, 0, len(*body.Businesses))
	for i := range *body.Businesses {
		restaurant, err := (*body.Businesses)[i].toRestaurant()
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}
