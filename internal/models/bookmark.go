package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookmarkedRecipe is a recipe saved by a user. Title is the per-user key.
type BookmarkedRecipe struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_recipe_user_title" json:"user_id"`
	Title          string    `gorm:"size:200;not null;uniqueIndex:idx_recipe_user_title" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	ReadyInMinutes *int      `json:"ready_in_minutes"`
	Servings       *int      `json:"servings"`
	SourceURL      *string   `gorm:"size:500" json:"source_url"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (b *BookmarkedRecipe) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BookmarkedRestaurant is a restaurant saved by a user. Name is the per-user key.
type BookmarkedRestaurant struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_restaurant_user_name" json:"user_id"`
	Name        string    `gorm:"size:200;not null;uniqueIndex:idx_restaurant_user_name" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Rating      *float64  `json:"rating"`
	ReviewCount *int      `json:"review_count"`
	Price       *string   `gorm:"size:10" json:"price"`
	Address     *string   `gorm:"size:500" json:"address"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	YelpURL     *string   `gorm:"size:500" json:"yelp_url"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (b *BookmarkedRestaurant) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
