package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/models"
)

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0, OccupancyRate(0, 0))
	assert.Equal(t, 0, OccupancyRate(3, 0))
	assert.Equal(t, 33, OccupancyRate(1, 3))
	assert.Equal(t, 67, OccupancyRate(2, 3))
	assert.Equal(t, 50, OccupancyRate(1, 2))
	assert.Equal(t, 100, OccupancyRate(4, 4))
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	other, _ := f.registerHotel(t, "B", "b@example.com")

	r1 := f.addRoom(t, hotel.ID, "101", 100)
	r2 := f.addRoom(t, hotel.ID, "102", 80)
	r3 := f.addRoom(t, hotel.ID, "103", 60)
	f.addRoom(t, hotel.ID, "104", 60)
	foreign := f.addRoom(t, other.ID, "101", 500)

	// today = 2024-03-10
	f.book(t, hotel.ID, r1.ID, models.NewDate(2024, 3, 10), models.NewDate(2024, 3, 12)) // 200, check-in today
	f.book(t, hotel.ID, r2.ID, models.NewDate(2024, 3, 8), models.NewDate(2024, 3, 11))  // 240, in house
	f.book(t, hotel.ID, r3.ID, models.NewDate(2024, 3, 5), models.NewDate(2024, 3, 10))  // 300, left today
	cancelled := f.book(t, hotel.ID, r3.ID, models.NewDate(2024, 3, 10), models.NewDate(2024, 3, 11))
	f.book(t, other.ID, foreign.ID, models.NewDate(2024, 3, 10), models.NewDate(2024, 3, 11))

	_, _, err := f.books.UpdateStatus(context.Background(), hotel.ID, cancelled.ID, models.BookingCancelled)
	require.NoError(t, err)

	svc := NewDashboardService(f.db)
	svc.Now = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }

	stats, err := svc.Stats(context.Background(), hotel.ID)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", stats.Date.String())
	assert.EqualValues(t, 2, stats.CheckIns)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(800)), stats.Revenue.String())
	assert.Equal(t, 50, stats.Occupancy)
	assert.EqualValues(t, 4, stats.TotalRooms)
}

func TestDashboardStatsEmptyHotel(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")

	stats, err := NewDashboardService(f.db).Stats(context.Background(), hotel.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.CheckIns)
	assert.True(t, stats.Revenue.IsZero())
	assert.Equal(t, 0, stats.Occupancy)
}
