package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hotelops/models"
)

// Claims is the session token payload.
type Claims struct {
	UserID  string      `json:"id"`
	Role    models.Role `json:"role"`
	HotelID string      `json:"hotelId"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() Principal {
	p := Principal{
		UserID:  c.UserID,
		Role:    c.Role,
		HotelID: c.HotelID,
		TokenID: c.ID,
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p
}

type TokenService struct {
	secret   []byte
	ttl      time.Duration
	denylist TokenDenylist

	// Now is the clock used for issuing and validating tokens.
	Now func() time.Time
}

func NewTokenService(secret string, ttl time.Duration, denylist TokenDenylist) *TokenService {
	if denylist == nil {
		denylist = NewMemoryDenylist()
	}
	return &TokenService{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: denylist,
		Now:      time.Now,
	}
}

// Issue signs an HS256 token for u valid for the configured ttl.
func (s *TokenService) Issue(u *models.User) (string, time.Time, error) {
	now := s.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		UserID:  u.ID,
		Role:    u.Role,
		HotelID: u.HotelID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies signature, algorithm and expiry, then checks revocation.
// Every verification failure is reported as ErrInvalidToken.
func (s *TokenService) Parse(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: missing claims", ErrInvalidToken)
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: revoked", ErrInvalidToken)
	}
	return claims, nil
}

// Revoke denies the token until it would have expired anyway.
func (s *TokenService) Revoke(ctx context.Context, p Principal) error {
	if p.TokenID == "" {
		return errors.New("token has no id")
	}
	return s.denylist.Revoke(ctx, p.TokenID, p.ExpiresAt)
}
