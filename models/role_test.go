package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestRoleDefaultPermissions(t *testing.T) {
	tests := []struct {
		role    Role
		granted []Capability
	}{
		{RoleOwner, Capabilities},
		{RoleManager, Capabilities},
		{RoleReceptionist, []Capability{CapBookings, CapRooms, CapGuests}},
		{RoleHousekeeping, []Capability{CapRooms}},
		{RoleSecurity, []Capability{CapGuests}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			perms := tt.role.DefaultPermissions()
			assert.Len(t, perms, len(Capabilities))

			want := map[Capability]bool{}
			for _, c := range tt.granted {
				want[c] = true
			}
			for _, c := range Capabilities {
				assert.Equal(t, want[c], perms[c], "capability %s", c)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("receptionist")
	assert.True(t, ok)
	assert.Equal(t, RoleReceptionist, r)

	r, ok = ParseRole(" owner ")
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, r)

	_, ok = ParseRole("Cleaner")
	assert.False(t, ok)
}

func TestEffectivePermissionsOverrides(t *testing.T) {
	overrides := datatypes.JSONMap{"billing": true, "rooms": false, "unknown": true}

	perms := EffectivePermissions(RoleReceptionist, overrides)
	assert.True(t, perms[CapBilling])
	assert.False(t, perms[CapRooms])
	assert.True(t, perms[CapBookings])
	_, present := perms[Capability("unknown")]
	assert.False(t, present)
}

func TestEffectivePermissionsOwnerCannotBeNarrowed(t *testing.T) {
	perms := EffectivePermissions(RoleOwner, datatypes.JSONMap{"staff": false, "delete": false})
	for _, c := range Capabilities {
		assert.True(t, perms[c], "capability %s", c)
	}
}

func TestSanitizePermissions(t *testing.T) {
	out := SanitizePermissions(map[string]bool{"rooms": true, "admin": true})
	assert.Equal(t, datatypes.JSONMap{"rooms": true}, out)
}

func TestUserCan(t *testing.T) {
	u := User{Role: RoleHousekeeping}
	assert.True(t, u.Can(CapRooms))
	assert.False(t, u.Can(CapBookings))

	u.Permissions = datatypes.JSONMap{"bookings": true}
	assert.True(t, u.Can(CapBookings))
}
