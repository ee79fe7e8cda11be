package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelops/logger"
	"hotelops/models"
	"hotelops/utils"
)

const maxInvoiceNumberAttempts = 8

type InvoiceService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db, Now: time.Now}
}

// InvoiceAmounts computes tax and total for amount at rate, to the cent.
func InvoiceAmounts(amount, rate decimal.Decimal) (tax, total decimal.Decimal) {
	tax = amount.Mul(rate).Round(2)
	return tax, amount.Add(tax).Round(2)
}

// Create issues the invoice for a booking. A nil rate uses DefaultTaxRate.
func (s *InvoiceService) Create(ctx context.Context, hotelID, bookingID string, rate *decimal.Decimal) (*models.Invoice, error) {
	taxRate := models.DefaultTaxRate
	if rate != nil {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, invalidf("tax rate must be between 0 and 1")
		}
		taxRate = *rate
	}

	db := s.DB.WithContext(ctx)
	booking, err := findBooking(db, hotelID, bookingID)
	if err != nil {
		return nil, err
	}

	tax, total := InvoiceAmounts(booking.TotalAmount, taxRate)
	invoice := &models.Invoice{
		BookingID: booking.ID,
		GuestName: booking.GuestName,
		IssueDate: models.DateOf(s.Now().UTC()),
		Amount:    booking.TotalAmount,
		TaxRate:   taxRate,
		Tax:       tax,
		Total:     total,
		Status:    models.InvoiceUnpaid,
		HotelID:   hotelID,
	}

	// Each attempt runs on its own so a unique violation does not poison
	// a surrounding transaction.
	for attempt := 0; attempt < maxInvoiceNumberAttempts; attempt++ {
		var existing int64
		err := db.Model(&models.Invoice{}).
			Where("hotel_id = ? AND booking_id = ?", hotelID, booking.ID).
			Count(&existing).Error
		if err != nil {
			return nil, err
		}
		if existing > 0 {
			return nil, ErrInvoiceExists
		}

		number, err := utils.GenerateInvoiceNumber()
		if err != nil {
			return nil, fmt.Errorf("generate invoice number: %w", err)
		}
		invoice.ID = ""
		invoice.InvoiceNumber = number

		err = db.Create(invoice).Error
		if err == nil {
			return invoice, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create invoice: %w", err)
		}
		logger.FromContext(ctx).Warn("invoice number collision, retrying",
			zap.String("invoice_number", number),
			zap.Int("attempt", attempt+1),
		)
	}
	return nil, fmt.Errorf("create invoice: no free invoice number after %d attempts", maxInvoiceNumberAttempts)
}

func (s *InvoiceService) List(ctx context.Context, hotelID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (s *InvoiceService) UpdateStatus(ctx context.Context, hotelID, id string, status models.InvoiceStatus) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND hotel_id = ?", id, hotelID).First(&invoice).Error; err != nil {
			return notFound(err, ErrInvoiceNotFound)
		}
		if invoice.Status == status {
			return nil
		}
		if err := tx.Model(&invoice).Update("status", status).Error; err != nil {
			return fmt.Errorf("update invoice status: %w", err)
		}
		invoice.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
