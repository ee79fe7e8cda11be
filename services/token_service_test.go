package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/models"
)

func testUser() *models.User {
	u := &models.User{Role: models.RoleReceptionist, HotelID: "hotel-1"}
	u.ID = "user-1"
	return u
}

func TestIssueAndParse(t *testing.T) {
	svc := NewTokenService("k", 24*time.Hour, nil)
	token, exp, err := svc.Issue(testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := svc.Parse(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "hotel-1", claims.HotelID)
	assert.Equal(t, models.RoleReceptionist, claims.Role)
	assert.NotEmpty(t, claims.ID)

	p := claims.Principal()
	assert.Equal(t, claims.ID, p.TokenID)
	assert.Equal(t, exp.Unix(), p.ExpiresAt.Unix())
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("k", 24*time.Hour, nil)
	issuedAt := time.Now().Add(-25 * time.Hour)
	svc.Now = func() time.Time { return issuedAt }
	token, _, err := svc.Issue(testUser())
	require.NoError(t, err)

	svc.Now = time.Now
	_, err = svc.Parse(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenService("one", time.Hour, nil).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenService("two", time.Hour, nil).Parse(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("k", time.Hour, nil).Parse(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = NewTokenService("k", time.Hour, nil).Parse(context.Background(), hs512)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenService("k", time.Hour, nil).Parse(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
