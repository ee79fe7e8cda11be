package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomCleaning    RoomStatus = "CLEANING"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

const DefaultFloor = "1st Floor"

func ParseRoomStatus(s string) (RoomStatus, bool) {
	switch st := RoomStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return st, true
	}
	return "", false
}

// Room numbers are unique per hotel, not globally.
type Room struct {
	Base
	RoomNumber string            `gorm:"size:50;not null;uniqueIndex:idx_rooms_hotel_number,priority:2" json:"roomNumber"`
	Type       string            `gorm:"size:50;not null" json:"type"`
	Price      decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"price"`
	Status     RoomStatus        `gorm:"size:20;not null" json:"status"`
	Floor      string            `gorm:"size:30" json:"floor"`
	Amenities  datatypes.JSONMap `json:"amenities"`
	HotelID    string            `gorm:"type:char(36);not null;uniqueIndex:idx_rooms_hotel_number,priority:1" json:"hotelId"`
}

var AmenityKeys = []string{"ac", "wifi", "tv", "minibar"}

// NormalizeAmenities returns every known amenity flag, false when absent.
func NormalizeAmenities(in map[string]bool) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for _, k := range AmenityKeys {
		out[k] = in[k]
	}
	return out
}
