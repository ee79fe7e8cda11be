package models

import "github.com/shopspring/decimal"

// Guest is a directory entry derived from bookings; it is not stored.
type Guest struct {
	Key        string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Visits     int             `json:"visits"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	LastVisit  Date            `json:"lastVisit"`
}
