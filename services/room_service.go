package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelops/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomInput holds optional room fields; nil means "not provided".
type RoomInput struct {
	RoomNumber *string
	Type       *string
	Price      *decimal.Decimal
	Status     *string
	Floor      *string
	Amenities  map[string]bool
}

func roomNumberTaken(tx *gorm.DB, hotelID, number, exceptID string) (bool, error) {
	q := tx.Model(&models.Room{}).Where("hotel_id = ? AND room_number = ?", hotelID, number)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func findRoom(tx *gorm.DB, hotelID, id string) (*models.Room, error) {
	var room models.Room
	if err := tx.Where("id = ? AND hotel_id = ?", id, hotelID).First(&room).Error; err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	return &room, nil
}

func (s *RoomService) List(ctx context.Context, hotelID string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Get(ctx context.Context, hotelID, id string) (*models.Room, error) {
	return findRoom(s.DB.WithContext(ctx), hotelID, id)
}

func (s *RoomService) Create(ctx context.Context, hotelID string, in RoomInput) (*models.Room, error) {
	if hotelID == "" {
		return nil, invalidf("hotel id not found, please log in again")
	}

	room := &models.Room{
		Status:    models.RoomAvailable,
		Floor:     models.DefaultFloor,
		Amenities: models.NormalizeAmenities(in.Amenities),
		HotelID:   hotelID,
	}
	if in.RoomNumber != nil {
		room.RoomNumber = strings.TrimSpace(*in.RoomNumber)
	}
	if in.Type != nil {
		room.Type = strings.TrimSpace(*in.Type)
	}
	if room.RoomNumber == "" {
		return nil, invalidf("room number is required")
	}
	if room.Type == "" {
		return nil, invalidf("room type is required")
	}
	if in.Price == nil {
		return nil, invalidf("price is required")
	}
	if in.Price.IsNegative() {
		return nil, invalidf("price must not be negative")
	}
	room.Price = in.Price.Round(2)
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		st, ok := models.ParseRoomStatus(*in.Status)
		if !ok {
			return nil, invalidf("unknown room status %q", *in.Status)
		}
		room.Status = st
	}
	if in.Floor != nil && strings.TrimSpace(*in.Floor) != "" {
		room.Floor = strings.TrimSpace(*in.Floor)
	}

	db := s.DB.WithContext(ctx)
	taken, err := roomNumberTaken(db, hotelID, room.RoomNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateRoomNumber
	}
	if err := db.Create(room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

// Update merges the provided fields into the stored room.
func (s *RoomService) Update(ctx context.Context, hotelID, id string, in RoomInput) (*models.Room, error) {
	var room *models.Room
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		room, err = findRoom(tx, hotelID, id)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if in.RoomNumber != nil {
			number := strings.TrimSpace(*in.RoomNumber)
			if number == "" {
				return invalidf("room number cannot be empty")
			}
			if number != room.RoomNumber {
				taken, err := roomNumberTaken(tx, hotelID, number, room.ID)
				if err != nil {
					return err
				}
				if taken {
					return ErrDuplicateRoomNumber
				}
				updates["room_number"] = number
			}
		}
		if in.Type != nil {
			if t := strings.TrimSpace(*in.Type); t != "" {
				updates["type"] = t
			}
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				return invalidf("price must not be negative")
			}
			updates["price"] = in.Price.Round(2)
		}
		if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
			st, ok := models.ParseRoomStatus(*in.Status)
			if !ok {
				return invalidf("unknown room status %q", *in.Status)
			}
			updates["status"] = st
		}
		if in.Floor != nil {
			if f := strings.TrimSpace(*in.Floor); f != "" {
				updates["floor"] = f
			}
		}
		if in.Amenities != nil {
			merged := map[string]bool{}
			for k, v := range room.Amenities {
				if b, ok := v.(bool); ok {
					merged[k] = b
				}
			}
			for k, v := range in.Amenities {
				merged[k] = v
			}
			updates["amenities"] = models.NormalizeAmenities(merged)
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(room).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRoomNumber
			}
			return fmt.Errorf("update room: %w", err)
		}
		return tx.Where("id = ?", room.ID).First(room).Error
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes a room that no booking currently holds.
func (s *RoomService) Delete(ctx context.Context, hotelID, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := findRoom(tx, hotelID, id)
		if err != nil {
			return err
		}

		var active int64
		err = tx.Model(&models.Booking{}).
			Where("hotel_id = ? AND room_id = ? AND status IN ?", hotelID, room.ID, holdingStatuses).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrRoomInUse
		}

		res := tx.Where("id = ? AND hotel_id = ?", room.ID, hotelID).Delete(&models.Room{})
		if res.Error != nil {
			return fmt.Errorf("delete room: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRoomNotFound
		}
		return nil
	})
}
