package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	goval "github.com/go-passwd/validator"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/leebenson/conform"
	"github.com/pageza/platepal/backend/internal/models"
	"github.com/pageza/platepal/backend/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrRegistrationFailed  = errors.New("registration failed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrUserNotFound        = errors.New("user not found")
)

// Password length bounds. bcrypt ignores input past 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// AuthOptions configures token signing and password hashing
type AuthOptions struct {
	Secret     string
	SessionTTL time.Duration
	BcryptCost int
}

type AuthService struct {
	db         *gorm.DB
	sessions   SessionStore
	secret     []byte
	sessionTTL time.Duration
	bcryptCost int
	validate   *validator.Validate
	passwords  *goval.Validator
}

type registration struct {
	Name     string `conform:"trim" validate:"required,max=100"`
	Email    string `conform:"trim,lower" validate:"required,email,max=120"`
	Password string `validate:"required"`
}

func NewAuthService(db *gorm.DB, sessions SessionStore, opts AuthOptions) *AuthService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	return &AuthService{
		db:         db,
		sessions:   sessions,
		secret:     []byte(opts.Secret),
		sessionTTL: opts.SessionTTL,
		bcryptCost: opts.BcryptCost,
		validate:   validator.New(),
		passwords: goval.New(
			goval.MinLength(MinPasswordLength, fmt.Errorf("password must be at least %d characters", MinPasswordLength)),
			goval.MaxLength(MaxPasswordLength, fmt.Errorf("password must be at most %d characters", MaxPasswordLength)),
		),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	reg := registration{Name: name, Email: email, Password: password}
	if err := conform.Strings(&reg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}
	if err := s.validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}
	if err := s.passwords.Validate(reg.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}

	// Check if user already exists
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", reg.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if count > 0 {
		return nil, ErrRegistrationFailed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// A concurrent registration can still win the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRegistrationFailed
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("Registered user %s", user.ID)
	return user, nil
}

// Login checks credentials, opens a session and returns a token bound to it
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	// Sign before storing so a signing failure leaves no session behind
	token, err := s.generateToken(session, now)
	if err != nil {
		return "", nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to open session: %w", err)
	}

	return token, &user, nil
}

func (s *AuthService) generateToken(session *models.Session, now time.Time) (string, error) {
	claims := &types.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		UserID: session.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a token and that its session is still open
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.SessionClaims, error) {
	claims := &types.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Logout closes a session. Unknown sessions are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes a user together with their bookmarks and database sessions
func (s *AuthService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.BookmarkedRecipe{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipe bookmarks: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.BookmarkedRestaurant{}).Error; err != nil {
			return fmt.Errorf("failed to delete restaurant bookmarks: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		result := tx.Delete(&models.User{}, "id = ?", userID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
