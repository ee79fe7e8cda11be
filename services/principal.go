package services

import (
	"time"

	"hotelops/models"
)

// Principal is the authenticated caller of one request.
type Principal struct {
	UserID    string
	Role      models.Role
	HotelID   string
	TokenID   string
	ExpiresAt time.Time
}
