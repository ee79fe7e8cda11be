package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelops/logger"
	"hotelops/models"
)

// statuses whose booking still claims the room
var holdingStatuses = []string{string(models.BookingConfirmed), string(models.BookingCheckedIn)}

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	RoomID     string
	GuestName  string
	GuestPhone string
	GuestEmail string
	GuestCount int
	CheckIn    models.Date
	CheckOut   models.Date
}

// Quote returns the nights between the two dates and their total price.
// Check-out must fall strictly after check-in.
func Quote(price decimal.Decimal, checkIn, checkOut models.Date) (int, decimal.Decimal, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0, decimal.Zero, invalidf("check-in and check-out dates are required")
	}
	if !checkOut.After(checkIn) {
		return 0, decimal.Zero, invalidf("check-out date must be after check-in date")
	}
	nights := checkIn.DaysUntil(checkOut)
	return nights, price.Mul(decimal.NewFromInt(int64(nights))).Round(2), nil
}

func findBooking(tx *gorm.DB, hotelID, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.Where("id = ? AND hotel_id = ?", id, hotelID).First(&booking).Error; err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	return &booking, nil
}

// Create books a room for the given dates, rejecting overlaps with bookings
// that still hold the room, and marks the room occupied.
func (s *BookingService) Create(ctx context.Context, hotelID string, in CreateBookingInput) (*models.Booking, error) {
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.GuestPhone = strings.TrimSpace(in.GuestPhone)
	if in.GuestName == "" {
		return nil, invalidf("guest name is required")
	}
	if in.GuestPhone == "" {
		return nil, invalidf("guest phone is required")
	}
	if in.GuestCount == 0 {
		in.GuestCount = 1
	}
	if in.GuestCount < 0 {
		return nil, invalidf("guest count must be positive")
	}

	var booking *models.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := findRoom(tx, hotelID, in.RoomID)
		if err != nil {
			return err
		}

		_, total, err := Quote(room.Price, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}

		var overlapping int64
		err = tx.Model(&models.Booking{}).
			Where("hotel_id = ? AND room_id = ? AND status IN ?", hotelID, room.ID, holdingStatuses).
			Where("check_in_date < ? AND check_out_date > ?", in.CheckOut, in.CheckIn).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("check overlapping bookings: %w", err)
		}
		if overlapping > 0 {
			return ErrRoomUnavailable
		}

		booking = &models.Booking{
			GuestName:    in.GuestName,
			GuestPhone:   in.GuestPhone,
			GuestEmail:   strings.TrimSpace(in.GuestEmail),
			GuestCount:   in.GuestCount,
			CheckInDate:  in.CheckIn,
			CheckOutDate: in.CheckOut,
			TotalAmount:  total,
			Status:       models.BookingConfirmed,
			RoomID:       room.ID,
			HotelID:      hotelID,
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		if err := tx.Model(room).Update("status", models.RoomOccupied).Error; err != nil {
			return fmt.Errorf("mark room occupied: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("room_id", booking.RoomID),
		zap.String("check_in", booking.CheckInDate.String()),
		zap.String("check_out", booking.CheckOutDate.String()),
	)
	return booking, nil
}

// List returns the hotel's bookings, newest first, with their rooms.
func (s *BookingService) List(ctx context.Context, hotelID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Room").
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) Get(ctx context.Context, hotelID, id string) (*models.Booking, error) {
	return findBooking(s.DB.WithContext(ctx).Preload("Room"), hotelID, id)
}

// UpdateStatus moves a booking along its lifecycle. Re-applying the current
// status changes nothing. The reported bool is true when a write happened.
func (s *BookingService) UpdateStatus(ctx context.Context, hotelID, id string, next models.BookingStatus) (*models.Booking, bool, error) {
	var (
		booking *models.Booking
		changed bool
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = findBooking(tx, hotelID, id)
		if err != nil {
			return err
		}
		if booking.Status == next {
			return nil
		}
		if !booking.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s to %s", ErrIllegalTransition, booking.Status, next)
		}

		prev := booking.Status
		if err := tx.Model(booking).Update("status", next).Error; err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = next
		changed = true
		return syncRoomStatus(tx, booking, prev, next)
	})
	if err != nil {
		return nil, false, err
	}
	return booking, changed, nil
}

// syncRoomStatus reflects a booking transition on its room. Cancelling only
// releases a room the booking still held. A release never overrides
// MAINTENANCE or a room another booking is checked into.
func syncRoomStatus(tx *gorm.DB, booking *models.Booking, prev, next models.BookingStatus) error {
	var roomStatus models.RoomStatus
	switch next {
	case models.BookingCheckedIn:
		roomStatus = models.RoomOccupied
	case models.BookingCheckedOut:
		roomStatus = models.RoomCleaning
	case models.BookingCancelled:
		if !prev.Holds() {
			return nil
		}
		roomStatus = models.RoomAvailable
	default:
		return nil
	}

	room := tx.Model(&models.Room{}).Where("id = ? AND hotel_id = ?", booking.RoomID, booking.HotelID)
	if next == models.BookingCheckedIn {
		return room.Update("status", roomStatus).Error
	}

	var inHouse int64
	err := tx.Model(&models.Booking{}).
		Where("hotel_id = ? AND room_id = ? AND id <> ? AND status = ?",
			booking.HotelID, booking.RoomID, booking.ID, models.BookingCheckedIn).
		Count(&inHouse).Error
	if err != nil {
		return err
	}
	if inHouse > 0 {
		return nil
	}

	return room.Where("status <> ?", models.RoomMaintenance).Update("status", roomStatus).Error
}
