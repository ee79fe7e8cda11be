package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

var BookingStatuses = []BookingStatus{BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled}

// legal forward moves; cancellation is allowed from anywhere
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCheckedIn},
	BookingCheckedIn: {BookingCheckedOut},
}

// ParseBookingStatus accepts any case and "-" or " " in place of "_".
func ParseBookingStatus(s string) (BookingStatus, bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, st := range BookingStatuses {
		if string(st) == norm {
			return st, true
		}
	}
	return "", false
}

// CanTransitionTo reports whether a booking in s may move to next.
// Staying in the same status is always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	if next == BookingCancelled {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Holds reports whether a booking in s still claims its room.
func (s BookingStatus) Holds() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}

type Booking struct {
	Base
	GuestName    string          `gorm:"size:120;not null" json:"guestName"`
	GuestPhone   string          `gorm:"size:30;not null" json:"guestPhone"`
	GuestEmail   string          `gorm:"size:191" json:"guestEmail"`
	GuestCount   int             `gorm:"not null" json:"guestCount"`
	CheckInDate  Date            `gorm:"not null;index" json:"checkInDate"`
	CheckOutDate Date            `gorm:"not null" json:"checkOutDate"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status       BookingStatus   `gorm:"size:20;not null;index" json:"status"`
	RoomID       string          `gorm:"type:char(36);not null;index" json:"roomId"`
	HotelID      string          `gorm:"type:char(36);not null;index" json:"hotelId"`

	Room *Room `gorm:"foreignKey:RoomID;references:ID" json:"Room,omitempty"`
}

// Nights is the number of nights between check-in and check-out.
func (b *Booking) Nights() int {
	return b.CheckInDate.DaysUntil(b.CheckOutDate)
}
