package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pageza/platepal/backend/internal/metrics"
	"github.com/pageza/platepal/backend/internal/types"
)

const (
	recipeProvider    = "spoonacular"
	recipeSearchLimit = 8

	defaultRecipeTitle       = "No title"
	defaultRecipeDescription = "No description"
	defaultRecipeURL         = "#"
)

type RecipeSearchService struct {
	client    *http.Client
	config    ProviderConfig
	metrics   metrics.Recorder
	sanitizer *bluemonday.Policy
}

func NewRecipeSearchService(client *http.Client, cfg ProviderConfig, recorder metrics.Recorder) *RecipeSearchService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &RecipeSearchService{
		client:    client,
		config:    cfg,
		metrics:   recorder,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

type spoonacularSearchResponse struct {
	Results []spoonacularRecipe `json:"results"`
}

type spoonacularRecipe struct {
	Title          *string           `json:"title"`
	Summary        *string           `json:"summary"`
	Image          *string           `json:"image"`
	SourceURL      *string           `json:"sourceUrl"`
	ReadyInMinutes types.OptionalInt `json:"readyInMinutes"`
	Servings       types.OptionalInt `json:"servings"`
}

func (s *RecipeSearchService) toRecipe(r spoonacularRecipe) types.Recipe {
	title := defaultRecipeTitle
	if r.Title != nil {
		title = *r.Title
	}

	description := defaultRecipeDescription
	if r.Summary != nil {
		description = *r.Summary
	}
	description = strings.NewReplacer("<b>", "", "</b>", "").Replace(description)
	description = s.sanitizer.Sanitize(description)

	image := ""
	if r.Image != nil {
		image = *r.Image
	}
	link := defaultRecipeURL
	if r.SourceURL != nil {
		link = *r.SourceURL
	}

	return types.Recipe{
		Title:          title,
		Description:    description,
		ImageURL:       &image,
		URL:            &link,
		ReadyInMinutes: r.ReadyInMinutes.Value,
		Servings:       r.Servings.Value,
	}
}

// Search returns up to 8 recipes matching query. Failures are logged and
// produce an empty list.
func (s *RecipeSearchService) Search(ctx context.Context, query string) []types.Recipe {
	start := time.Now()

	recipes, outcome, err := s.search(ctx, query)
	s.metrics.RecordProviderCall(recipeProvider, outcome, time.Since(start))
	if err != nil {
		log.Printf("Recipe search for %q failed: %v", query, err)
		return []types.Recipe{}
	}

	log.Printf("Found %d recipes for %q", len(recipes), query)
	return recipes
}

func (s *RecipeSearchService) search(ctx context.Context, query string) ([]types.Recipe, string, error) {
	params := url.Values{}
	params.Set("apiKey", s.config.APIKey)
	params.Set("query", query)
	params.Set("number", fmt.Sprint(recipeSearchLimit))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("instructionsRequired", "true")

	endpoint := strings.TrimSuffix(s.config.BaseURL, "/") + "/complexSearch?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, metrics.OutcomeTransport, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, metrics.OutcomeTransport, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, metrics.OutcomeBadResponse, fmt.Errorf("status %d", resp.StatusCode)
	}

	var body spoonacularSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, metrics.OutcomeBadResponse, fmt.Errorf("failed to decode response: %w", err)
	}

	recipes := make([]types.Recipe, 0, len(body.Results))
	for _, r := range body.Results {
		recipes = append(recipes, s.toRecipe(r))
	}
	return recipes, metrics.OutcomeSuccess, nil
}
