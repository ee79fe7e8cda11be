package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/models"
)

func TestCreateRoomDefaults(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")

	room := f.addRoom(t, hotel.ID, " 101 ", 50)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, models.RoomAvailable, room.Status)
	assert.Equal(t, models.DefaultFloor, room.Floor)
	assert.Equal(t, hotel.ID, room.HotelID)
	assert.Equal(t, false, room.Amenities["wifi"])
	assert.True(t, room.Price.Equal(decimal.NewFromInt(50)))
}

func TestCreateRoomDuplicateNumberPerTenant(t *testing.T) {
	f := newFixture(t)
	hotelA, _ := f.registerHotel(t, "A", "a@example.com")
	hotelB, _ := f.registerHotel(t, "B", "b@example.com")

	f.addRoom(t, hotelA.ID, "101", 50)

	typ := "Suite"
	price := decimal.NewFromInt(80)
	_, err := f.rooms.Create(context.Background(), hotelA.ID, RoomInput{RoomNumber: strPtr("101"), Type: &typ, Price: &price})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)

	room, err := f.rooms.Create(context.Background(), hotelB.ID, RoomInput{RoomNumber: strPtr("101"), Type: &typ, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, hotelB.ID, room.HotelID)
}

func TestCreateRoomValidation(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	price := decimal.NewFromInt(10)
	negative := decimal.NewFromInt(-1)

	cases := map[string]RoomInput{
		"missing number": {Type: strPtr("Std"), Price: &price},
		"missing type":   {RoomNumber: strPtr("1"), Price: &price},
		"missing price":  {RoomNumber: strPtr("1"), Type: strPtr("Std")},
		"negative price": {RoomNumber: strPtr("1"), Type: strPtr("Std"), Price: &negative},
		"bad status":     {RoomNumber: strPtr("1"), Type: strPtr("Std"), Price: &price, Status: strPtr("BROKEN")},
	}
	for name, in := range cases {
		_, err := f.rooms.Create(context.Background(), hotel.ID, in)
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr), name)
	}
}

func TestListRoomsIsTenantScoped(t *testing.T) {
	f := newFixture(t)
	hotelA, _ := f.registerHotel(t, "A", "a@example.com")
	hotelB, _ := f.registerHotel(t, "B", "b@example.com")
	f.addRoom(t, hotelA.ID, "102", 50)
	f.addRoom(t, hotelA.ID, "101", 50)
	f.addRoom(t, hotelB.ID, "201", 70)

	rooms, err := f.rooms.List(context.Background(), hotelA.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "102", rooms[1].RoomNumber)
}

func TestUpdateRoomMergesFields(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	room := f.addRoom(t, hotel.ID, "101", 50)

	price := decimal.RequireFromString("65.50")
	updated, err := f.rooms.Update(context.Background(), hotel.ID, room.ID, RoomInput{
		Price:     &price,
		Status:    strPtr("cleaning"),
		Amenities: map[string]bool{"wifi": true},
	})
	require.NoError(t, err)

	assert.Equal(t, "101", updated.RoomNumber)
	assert.Equal(t, "Deluxe", updated.Type)
	assert.Equal(t, models.DefaultFloor, updated.Floor)
	assert.Equal(t, models.RoomCleaning, updated.Status)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, true, updated.Amenities["wifi"])
	assert.Equal(t, false, updated.Amenities["tv"])
}

func TestUpdateRoomRejectsDuplicateNumber(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	f.addRoom(t, hotel.ID, "101", 50)
	room := f.addRoom(t, hotel.ID, "102", 50)

	_, err := f.rooms.Update(context.Background(), hotel.ID, room.ID, RoomInput{RoomNumber: strPtr("101")})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)

	same, err := f.rooms.Update(context.Background(), hotel.ID, room.ID, RoomInput{RoomNumber: strPtr("102")})
	require.NoError(t, err)
	assert.Equal(t, "102", same.RoomNumber)
}

func TestRoomCrossTenantAccessIsNotFound(t *testing.T) {
	f := newFixture(t)
	hotelA, _ := f.registerHotel(t, "A", "a@example.com")
	hotelB, _ := f.registerHotel(t, "B", "b@example.com")
	room := f.addRoom(t, hotelB.ID, "101", 50)

	_, err := f.rooms.Get(context.Background(), hotelA.ID, room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = f.rooms.Update(context.Background(), hotelA.ID, room.ID, RoomInput{Type: strPtr("Hacked")})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, f.rooms.Delete(context.Background(), hotelA.ID, room.ID), ErrRoomNotFound)

	still, err := f.rooms.Get(context.Background(), hotelB.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", still.Type)
}

func TestDeleteRoom(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	room := f.addRoom(t, hotel.ID, "101", 50)

	require.NoError(t, f.rooms.Delete(context.Background(), hotel.ID, room.ID))
	assert.ErrorIs(t, f.rooms.Delete(context.Background(), hotel.ID, room.ID), ErrRoomNotFound)
}

func TestDeleteRoomWithActiveBooking(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	room := f.addRoom(t, hotel.ID, "101", 50)
	b := f.book(t, hotel.ID, room.ID, models.NewDate(2024, 1, 1), models.NewDate(2024, 1, 2))

	assert.ErrorIs(t, f.rooms.Delete(context.Background(), hotel.ID, room.ID), ErrRoomInUse)

	_, _, err := f.books.UpdateStatus(context.Background(), hotel.ID, b.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.NoError(t, f.rooms.Delete(context.Background(), hotel.ID, room.ID))
}
