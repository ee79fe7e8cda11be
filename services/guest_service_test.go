package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/models"
)

func TestGuestDirectory(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	room := f.addRoom(t, hotel.ID, "101", 100)
	ctx := context.Background()

	mk := func(name, phone, email string, in, out models.Date) *models.Booking {
		b, err := f.books.Create(ctx, hotel.ID, CreateBookingInput{
			RoomID: room.ID, GuestName: name, GuestPhone: phone, GuestEmail: email, CheckIn: in, CheckOut: out,
		})
		require.NoError(t, err)
		return b
	}

	mk("Ann", "1", "ann@example.com", models.NewDate(2024, 1, 1), models.NewDate(2024, 1, 2))
	mk("Ann B.", "2", "ANN@example.com", models.NewDate(2024, 2, 1), models.NewDate(2024, 2, 3))
	mk("Bob", "3", "", models.NewDate(2024, 1, 10), models.NewDate(2024, 1, 11))
	gone := mk("Cy", "4", "", models.NewDate(2024, 3, 1), models.NewDate(2024, 3, 2))
	_, _, err := f.books.UpdateStatus(ctx, hotel.ID, gone.ID, models.BookingCancelled)
	require.NoError(t, err)

	guests, err := NewGuestService(f.db).List(ctx, hotel.ID)
	require.NoError(t, err)
	require.Len(t, guests, 2)

	ann := guests[0]
	assert.Equal(t, "ann@example.com", ann.Key)
	assert.Equal(t, "Ann B.", ann.Name)
	assert.Equal(t, 2, ann.Visits)
	assert.Equal(t, "300.00", ann.TotalSpent.StringFixed(2))
	assert.Equal(t, "2024-02-01", ann.LastVisit.String())

	bob := guests[1]
	assert.Equal(t, "3", bob.Key)
	assert.Equal(t, 1, bob.Visits)
}
