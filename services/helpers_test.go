package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotelops/models"
	"hotelops/testutil"
)

type fixture struct {
	db     *gorm.DB
	tokens *TokenService
	auth   *AuthService
	rooms  *RoomService
	books  *BookingService
	staff  *StaffService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	tokens := NewTokenService("test-secret", 24*time.Hour, NewMemoryDenylist())
	return &fixture{
		db:     db,
		tokens: tokens,
		auth:   NewAuthService(db, tokens),
		rooms:  NewRoomService(db),
		books:  NewBookingService(db),
		staff:  NewStaffService(db),
	}
}

// registerHotel creates a tenant and returns its hotel and owner.
func (f *fixture) registerHotel(t *testing.T, name, email string) (*models.Hotel, *models.User) {
	t.Helper()
	hotel, owner, err := f.auth.Register(context.Background(), RegisterInput{
		HotelName: name,
		OwnerName: name + " Owner",
		Email:     email,
		Phone:     "0800000000",
		Password:  "pa55word",
	})
	require.NoError(t, err)
	return hotel, owner
}

func (f *fixture) addRoom(t *testing.T, hotelID, number string, price int64) *models.Room {
	t.Helper()
	typ := "Deluxe"
	p := decimal.NewFromInt(price)
	room, err := f.rooms.Create(context.Background(), hotelID, RoomInput{
		RoomNumber: &number,
		Type:       &typ,
		Price:      &p,
	})
	require.NoError(t, err)
	return room
}

func (f *fixture) book(t *testing.T, hotelID, roomID string, in, out models.Date) *models.Booking {
	t.Helper()
	b, err := f.books.Create(context.Background(), hotelID, CreateBookingInput{
		RoomID:     roomID,
		GuestName:  "Jane Guest",
		GuestPhone: "0811111111",
		CheckIn:    in,
		CheckOut:   out,
	})
	require.NoError(t, err)
	return b
}

func strPtr(s string) *string { return &s }
