package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("token is not valid")

	ErrHotelNotFound   = errors.New("hotel not found")
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvoiceNotFound = errors.New("invoice not found")

	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrRoomInUse           = errors.New("room has active bookings")
	ErrRoomUnavailable     = errors.New("room is already booked for the selected dates")
	ErrIllegalTransition   = errors.New("illegal booking status transition")
	ErrInvoiceExists       = errors.New("invoice already exists for this booking")
)

// ValidationError reports bad caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// notFound maps gorm's missing-row error to the given domain error.
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
