package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"hotelops/models"
)

const BookingsSheet = "Bookings"

var bookingExportHeader = []interface{}{
	"Booking ID", "Guest", "Phone", "Email", "Guests", "Room",
	"Check-in", "Check-out", "Nights", "Total", "Status",
}

// BookingsWorkbook renders bookings as a single-sheet workbook, one row per
// booking below a header row. The caller must Close the file.
func BookingsWorkbook(bookings []models.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", BookingsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if err := f.SetSheetRow(BookingsSheet, "A1", &bookingExportHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i := range bookings {
		b := &bookings[i]
		roomNumber := ""
		if b.Room != nil {
			roomNumber = b.Room.RoomNumber
		}
		total, _ := b.TotalAmount.Float64()
		row := []interface{}{
			b.ID, b.GuestName, b.GuestPhone, b.GuestEmail, b.GuestCount, roomNumber,
			b.CheckInDate.String(), b.CheckOutDate.String(), b.Nights(), total, string(b.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(BookingsSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(BookingsSheet, "A", "A", 38); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(BookingsSheet, "B", "K", 14); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
