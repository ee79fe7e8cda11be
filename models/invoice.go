package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "Unpaid"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
)

func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	for _, st := range []InvoiceStatus{InvoiceUnpaid, InvoicePaid, InvoicePending} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// DefaultTaxRate applies when an invoice is created without an explicit rate.
var DefaultTaxRate = decimal.RequireFromString("0.12")

// Invoice is issued once per booking.
type Invoice struct {
	Base
	InvoiceNumber string          `gorm:"size:20;not null;uniqueIndex:idx_invoices_hotel_number,priority:2" json:"invoiceNumber"`
	BookingID     string          `gorm:"type:char(36);not null;uniqueIndex:idx_invoices_hotel_booking,priority:2" json:"bookingId"`
	GuestName     string          `gorm:"size:120" json:"guest"`
	IssueDate     Date            `gorm:"not null" json:"date"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"taxRate"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        InvoiceStatus   `gorm:"size:20;not null" json:"status"`
	HotelID       string          `gorm:"type:char(36);not null;uniqueIndex:idx_invoices_hotel_number,priority:1;uniqueIndex:idx_invoices_hotel_booking,priority:1" json:"hotelId"`
}
