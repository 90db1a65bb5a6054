package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. It is never updated after registration.
type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:60;not null" json:"-"`

	RecipeBookmarks     []BookmarkedRecipe     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RestaurantBookmarks []BookmarkedRestaurant `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions            []Session              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Session binds an opaque session ID to a user until ExpiresAt.
type Session struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
