package models

import (
	"strings"

	"gorm.io/datatypes"
)

// Role is the closed set of user roles inside a hotel.
type Role string

const (
	RoleOwner        Role = "OWNER"
	RoleManager      Role = "Manager"
	RoleReceptionist Role = "Receptionist"
	RoleHousekeeping Role = "Housekeeping"
	RoleSecurity     Role = "Security"
)

var Roles = []Role{RoleOwner, RoleManager, RoleReceptionist, RoleHousekeeping, RoleSecurity}

// ParseRole matches s against the known roles, ignoring case.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range Roles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Capability names a module a user may operate on.
type Capability string

const (
	CapBookings Capability = "bookings"
	CapRooms    Capability = "rooms"
	CapBilling  Capability = "billing"
	CapDelete   Capability = "delete"
	CapGuests   Capability = "guests"
	CapStaff    Capability = "staff"
)

var Capabilities = []Capability{CapBookings, CapRooms, CapBilling, CapDelete, CapGuests, CapStaff}

func isCapability(s string) bool {
	for _, c := range Capabilities {
		if string(c) == s {
			return true
		}
	}
	return false
}

var roleCapabilities = map[Role][]Capability{
	RoleOwner:        Capabilities,
	RoleManager:      Capabilities,
	RoleReceptionist: {CapBookings, CapRooms, CapGuests},
	RoleHousekeeping: {CapRooms},
	RoleSecurity:     {CapGuests},
}

// DefaultPermissions returns the full capability row for r, with every
// capability present as true or false.
func (r Role) DefaultPermissions() map[Capability]bool {
	out := make(map[Capability]bool, len(Capabilities))
	for _, c := range Capabilities {
		out[c] = false
	}
	for _, c := range roleCapabilities[r] {
		out[c] = true
	}
	return out
}

// PermissionMap is the storable form of the role's default row.
func (r Role) PermissionMap() datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for c, ok := range r.DefaultPermissions() {
		out[string(c)] = ok
	}
	return out
}

// SanitizePermissions keeps only known capability keys with boolean values.
func SanitizePermissions(in map[string]bool) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range in {
		if isCapability(k) {
			out[k] = v
		}
	}
	return out
}

// EffectivePermissions layers per-user overrides on the role defaults.
// The owner row cannot be narrowed.
func EffectivePermissions(r Role, overrides datatypes.JSONMap) map[Capability]bool {
	perms := r.DefaultPermissions()
	if r == RoleOwner {
		return perms
	}
	for k, v := range overrides {
		if !isCapability(k) {
			continue
		}
		if b, ok := v.(bool); ok {
			perms[Capability(k)] = b
		}
	}
	return perms
}
