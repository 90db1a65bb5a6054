package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pageza/platepal/backend/internal/metrics"
	"github.com/pageza/platepal/backend/internal/models"
	"github.com/pageza/platepal/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrMissingBookmarkKey is returned when a toggle request has no title or name
	ErrMissingBookmarkKey = errors.New("bookmark key is required")
	// ErrInvalidBookmarkURL is returned for links that are not absolute http(s) URLs
	ErrInvalidBookmarkURL = errors.New("bookmark url must be an http or https link")
)

// Bookmark kinds, used as metric labels
const (
	KindRecipe     = "recipe"
	KindRestaurant = "restaurant"
)

type BookmarkService struct {
	db        *gorm.DB
	metrics   metrics.Recorder
	sanitizer *bluemonday.Policy
}

func NewBookmarkService(db *gorm.DB, recorder metrics.Recorder) *BookmarkService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &BookmarkService{db: db, metrics: recorder, sanitizer: bluemonday.UGCPolicy()}
}

// bookmarkURL drops empty and "#" placeholder links and rejects anything
// that is not an absolute http(s) URL.
func bookmarkURL(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	link := strings.TrimSpace(*raw)
	if link == "" || link == defaultRecipeURL {
		return nil, nil
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidBookmarkURL
	}
	return &link, nil
}

// toggle deletes the row matching where, or inserts row when nothing matched.
// The unique index on (user_id, key) keeps a concurrent insert from creating a
// second row; the losing insert becomes a no-op.
func (s *BookmarkService) toggle(ctx context.Context, kind string, model, row interface{}, where string, args ...interface{}) (types.BookmarkAction, error) {
	var action types.BookmarkAction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where(where, args...).Delete(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			action = types.BookmarkRemoved
			return nil
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return err
		}
		action = types.BookmarkAdded
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to toggle %s bookmark: %w", kind, err)
	}

	s.metrics.RecordBookmarkToggle(kind, string(action))
	return action, nil
}

// ToggleRecipe adds the recipe to the user's bookmarks, or removes it when a
// bookmark with the same title already exists.
func (s *BookmarkService) ToggleRecipe(ctx context.Context, userID uuid.UUID, req *types.BookmarkRecipeRequest) (types.BookmarkAction, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", ErrMissingBookmarkKey
	}
	link, err := bookmarkURL(req.URL)
	if err != nil {
		return "", err
	}

	// Descriptions are rendered as HTML on the recipes page
	row := &models.BookmarkedRecipe{
		UserID:         userID,
		Title:          req.Title,
		Description:    s.sanitizer.Sanitize(req.Description),
		ReadyInMinutes: req.ReadyInMinutes.Value,
		Servings:       req.Servings.Value,
		SourceURL:      link,
	}

	return s.toggle(ctx, KindRecipe, &models.BookmarkedRecipe{}, row,
		"user_id = ? AND title = ?", userID, req.Title)
}

// ToggleRestaurant adds the restaurant to the user's bookmarks, or removes it
// when a bookmark with the same name already exists.
func (s *BookmarkService) ToggleRestaurant(ctx context.Context, userID uuid.UUID, req *types.BookmarkRestaurantRequest) (types.BookmarkAction, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", ErrMissingBookmarkKey
	}
	link, err := bookmarkURL(req.URL)
	if err != nil {
		return "", err
	}

	row := &models.BookmarkedRestaurant{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount.Value,
		Price:       req.Price,
		Address:     req.Address,
		YelpURL:     link,
	}
	if req.Coordinates != nil {
		row.Latitude = req.Coordinates.Lat
		row.Longitude = req.Coordinates.Lng
	}

	return s.toggle(ctx, KindRestaurant, &models.BookmarkedRestaurant{}, row,
		"user_id = ? AND name = ?", userID, req.Name)
}

// ListRecipes returns the user's recipe bookmarks, oldest first
func (s *BookmarkService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]types.Recipe, error) {
	var rows []models.BookmarkedRecipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipe bookmarks: %w", err)
	}

	recipes := make([]types.Recipe, 0, len(rows))
	for _, b := range rows {
		recipes = append(recipes, types.Recipe{
			Title:          b.Title,
			Description:    s.sanitizer.Sanitize(b.Description),
			URL:            b.SourceURL,
			ReadyInMinutes: b.ReadyInMinutes,
			Servings:       b.Servings,
		})
	}
	return recipes, nil
}

// ListRestaurants returns the user's restaurant bookmarks, oldest first
func (s *BookmarkService) ListRestaurants(ctx context.Context, userID uuid.UUID) ([]types.Restaurant, error) {
	var rows []models.BookmarkedRestaurant
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurant bookmarks: %w", err)
	}

	restaurants := make([]types.Restaurant, 0, len(rows))
	for _, b := range rows {
		restaurants = append(restaurants, types.Restaurant{
			Name:        b.Name,
			Description: b.Description,
			Rating:      b.Rating,
			ReviewCount: b.ReviewCount,
			Price:       b.Price,
			Address:     b.Address,
			Coordinates: types.Coordinates{Lat: b.Latitude, Lng: b.Longitude},
			URL:         b.YelpURL,
		})
	}
	return restaurants, nil
}
