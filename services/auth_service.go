package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelops/models"
)

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

type RegisterInput struct {
	HotelName string
	OwnerName string
	Email     string
	Phone     string
	Password  string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return invalidf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalidf("email %q is not valid", email)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func emailTaken(tx *gorm.DB, email, exceptID string) (bool, error) {
	q := tx.Model(&models.User{}).Where("email = ?", email)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Register creates a hotel together with its owner account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.Hotel, *models.User, error) {
	in.OwnerName = strings.TrimSpace(in.OwnerName)
	in.HotelName = strings.TrimSpace(in.HotelName)
	in.Email = normalizeEmail(in.Email)

	if in.OwnerName == "" {
		return nil, nil, invalidf("owner name is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, nil, err
	}
	if in.Password == "" {
		return nil, nil, invalidf("password is required")
	}
	if in.HotelName == "" {
		in.HotelName = in.OwnerName + "'s Hotel"
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	hotel := &models.Hotel{
		Name:             in.HotelName,
		OwnerPhone:       strings.TrimSpace(in.Phone),
		SubscriptionPlan: models.PlanFree,
		IsActive:         true,
	}
	owner := &models.User{
		Name:        in.OwnerName,
		Email:       in.Email,
		Password:    hash,
		Role:        models.RoleOwner,
		Phone:       strings.TrimSpace(in.Phone),
		Status:      models.UserStatusActive,
		Permissions: models.RoleOwner.PermissionMap(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := emailTaken(tx, in.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateEmail
		}
		if err := tx.Create(hotel).Error; err != nil {
			return fmt.Errorf("create hotel: %w", err)
		}
		owner.HotelID = hotel.ID
		if err := tx.Create(owner).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("create owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return hotel, owner, nil
}

// Login checks credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	db := s.DB.WithContext(ctx)

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err, ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active() {
		return nil, ErrInactiveAccount
	}

	var hotel models.Hotel
	if err := db.Where("id = ?", user.HotelID).First(&hotel).Error; err != nil {
		return nil, notFound(err, ErrInactiveAccount)
	}
	if !hotel.IsActive {
		return nil, ErrInactiveAccount
	}

	token, expiresAt, err := s.Tokens.Issue(&user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: &user}, nil
}

func (s *AuthService) Logout(ctx context.Context, p Principal) error {
	return s.Tokens.Revoke(ctx, p)
}

// Profile returns the caller's own account.
func (s *AuthService) Profile(ctx context.Context, p Principal) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where("id = ? AND hotel_id = ?", p.UserID, p.HotelID).
		First(&user).Error
	if err != nil {
		return nil, notFound(err, ErrStaffNotFound)
	}
	return &user, nil
}
