package testhelpers

import (
	"testing"

	"github.com/pageza/platepal/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of users made by CreateTestUser
const TestPassword = "testpassword123"

// CreateTestUser inserts a user with TestPassword as the password
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i
func IntPtr(i int) *int {
	return &i
}

// Float64Ptr returns a pointer to f
func Float64Ptr(f float64) *float64 {
	return &f
}
