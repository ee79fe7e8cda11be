package models

import "gorm.io/datatypes"

const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

type User struct {
	Base
	Name        string            `gorm:"size:120;not null" json:"name"`
	Email       string            `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Password    string            `gorm:"size:255;not null" json:"-"`
	Role        Role              `gorm:"size:20;not null;index" json:"role"`
	Phone       string            `gorm:"size:30" json:"phone"`
	Status      string            `gorm:"size:20;not null" json:"status"`
	Permissions datatypes.JSONMap `json:"permissions"`
	HotelID     string            `gorm:"type:char(36);not null;index" json:"hotelId"`
}

func (u *User) Active() bool {
	return u.Status == UserStatusActive
}

func (u *User) Can(c Capability) bool {
	return EffectivePermissions(u.Role, u.Permissions)[c]
}
