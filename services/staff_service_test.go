package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotelops/models"
)

func TestCreateStaffDefaults(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")

	u, err := f.staff.Create(context.Background(), hotel.ID, StaffInput{
		Name: "Rita", Email: "Rita@Example.com", Password: "pw",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleReceptionist, u.Role)
	assert.Equal(t, models.UserStatusActive, u.Status)
	assert.Equal(t, "rita@example.com", u.Email)
	assert.Equal(t, hotel.ID, u.HotelID)
	assert.Equal(t, true, u.Permissions["bookings"])
	assert.Equal(t, false, u.Permissions["billing"])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pw")))
}

func TestCreateStaffRoleAndOverrides(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")

	u, err := f.staff.Create(context.Background(), hotel.ID, StaffInput{
		Name: "Hank", Email: "hank@example.com", Password: "pw", Role: "housekeeping",
		Permissions: map[string]bool{"rooms": true, "guests": true, "root": true},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleHousekeeping, u.Role)
	assert.Len(t, u.Permissions, 2)
	assert.True(t, u.Can(models.CapGuests))
	assert.False(t, u.Can(models.CapBookings))
}

func TestCreateStaffRejections(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")

	_, err := f.staff.Create(context.Background(), hotel.ID, StaffInput{Name: "X", Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var vErr *ValidationError
	_, err = f.staff.Create(context.Background(), hotel.ID, StaffInput{Name: "X", Email: "x@example.com", Password: "pw", Role: "OWNER"})
	assert.True(t, errors.As(err, &vErr))

	_, err = f.staff.Create(context.Background(), hotel.ID, StaffInput{Name: "X", Email: "x@example.com", Password: "pw", Role: "Chef"})
	assert.True(t, errors.As(err, &vErr))

	_, err = f.staff.Create(context.Background(), hotel.ID, StaffInput{Name: "X", Email: "x@example.com"})
	assert.True(t, errors.As(err, &vErr))
}

func TestListStaffExcludesOwnerAndOtherTenants(t *testing.T) {
	f := newFixture(t)
	hotelA, _ := f.registerHotel(t, "A", "a@example.com")
	hotelB, _ := f.registerHotel(t, "B", "b@example.com")
	_, err := f.staff.Create(context.Background(), hotelA.ID, StaffInput{Name: "A1", Email: "a1@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = f.staff.Create(context.Background(), hotelB.ID, StaffInput{Name: "B1", Email: "b1@example.com", Password: "pw"})
	require.NoError(t, err)

	users, err := f.staff.List(context.Background(), hotelA.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "A1", users[0].Name)
}

func TestUpdateStaff(t *testing.T) {
	f := newFixture(t)
	hotel, _ := f.registerHotel(t, "A", "a@example.com")
	u, err := f.staff.Create(context.Background(), hotel.ID, StaffInput{Name: "Rita", Email: "rita@example.com", Password: "pw", Phone: "1"})
	require.NoError(t, err)
	hash := u.Password

	updated, err := f.staff.Update(context.Background(), hotel.ID, u.ID, StaffInput{Role: "Security", Password: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleSecurity, updated.Role)
	assert.Equal(t, "Rita", updated.Name)
	assert.Equal(t, "1", updated.Phone)
	assert.Equal(t, hash, updated.Password)
	assert.True(t, updated.Can(models.CapGuests))
	assert.False(t, updated.Can(models.CapBookings))

	updated, err = f.staff.Update(context.Background(), hotel.ID, u.ID, StaffInput{Status: "inactive", Permissions: map[string]bool{"billing": true}})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusInactive, updated.Status)
	assert.True(t, updated.Can(models.CapBilling))

	_, err = f.staff.Update(context.Background(), hotel.ID, u.ID, StaffInput{Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUpdateStaffCannotTouchOwnerOrOtherTenant(t *testing.T) {
	f := newFixture(t)
	hotelA, owner := f.registerHotel(t, "A", "a@example.com")
	hotelB, _ := f.registerHotel(t, "B", "b@example.com")
	foreign, err := f.staff.Create(context.Background(), hotelB.ID, StaffInput{Name: "B1", Email: "b1@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = f.staff.Update(context.Background(), hotelA.ID, owner.ID, StaffInput{Name: "Renamed"})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = f.staff.Update(context.Background(), hotelA.ID, foreign.ID, StaffInput{Name: "Renamed"})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestDeleteStaff(t *testing.T) {
	f := newFixture(t)
	hotel, owner := f.registerHotel(t, "A", "a@example.com")
	hotelB, _ := f.registerHotel(t, "B", "b@example.com")
	u, err := f.staff.Create(context.Background(), hotel.ID, StaffInput{Name: "Rita", Email: "rita@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.staff.Delete(context.Background(), hotelB.ID, owner.ID, u.ID), ErrStaffNotFound)
	assert.ErrorIs(t, f.staff.Delete(context.Background(), hotel.ID, owner.ID, owner.ID), ErrStaffNotFound)

	require.NoError(t, f.staff.Delete(context.Background(), hotel.ID, owner.ID, u.ID))
	assert.ErrorIs(t, f.staff.Delete(context.Background(), hotel.ID, owner.ID, u.ID), ErrStaffNotFound)
}

func TestLookupIncludesOwner(t *testing.T) {
	f := newFixture(t)
	hotel, owner := f.registerHotel(t, "A", "a@example.com")

	u, err := f.staff.Lookup(context.Background(), hotel.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, u.Role)

	_, err = f.staff.Lookup(context.Background(), "other-hotel", owner.ID)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
