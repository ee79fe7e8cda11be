package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotelops/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// HotelInput lists the profile fields an owner may edit.
type HotelInput struct {
	Name       *string
	OwnerPhone *string
}

func (s *HotelService) Get(ctx context.Context, hotelID string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).Where("id = ?", hotelID).First(&hotel).Error; err != nil {
		return nil, notFound(err, ErrHotelNotFound)
	}
	return &hotel, nil
}

func (s *HotelService) Update(ctx context.Context, hotelID string, in HotelInput) (*models.Hotel, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalidf("hotel name cannot be empty")
		}
		updates["name"] = name
	}
	if in.OwnerPhone != nil {
		updates["owner_phone"] = strings.TrimSpace(*in.OwnerPhone)
	}

	var hotel models.Hotel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", hotelID).First(&hotel).Error; err != nil {
			return notFound(err, ErrHotelNotFound)
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&hotel).Updates(updates).Error; err != nil {
			return fmt.Errorf("update hotel: %w", err)
		}
		return tx.Where("id = ?", hotelID).First(&hotel).Error
	})
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}
