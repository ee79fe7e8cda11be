package services

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"hotelops/models"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func guestKey(b *models.Booking) string {
	if email := strings.ToLower(strings.TrimSpace(b.GuestEmail)); email != "" {
		return email
	}
	return strings.TrimSpace(b.GuestPhone)
}

// List builds the guest directory from the hotel's bookings, grouped by
// email or, failing that, phone. Cancelled bookings are not counted.
func (s *GuestService) List(ctx context.Context, hotelID string) ([]models.Guest, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ? AND status <> ?", hotelID, models.BookingCancelled).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	byKey := map[string]*models.Guest{}
	for i := range bookings {
		b := &bookings[i]
		key := guestKey(b)
		g, ok := byKey[key]
		if !ok {
			g = &models.Guest{Key: key}
			byKey[key] = g
		}
		g.Visits++
		g.TotalSpent = g.TotalSpent.Add(b.TotalAmount)
		if !b.CheckInDate.Before(g.LastVisit) {
			g.LastVisit = b.CheckInDate
			g.Name = b.GuestName
			g.Phone = b.GuestPhone
			if b.GuestEmail != "" {
				g.Email = b.GuestEmail
			}
		}
	}

	guests := make([]models.Guest, 0, len(byKey))
	for _, g := range byKey {
		guests = append(guests, *g)
	}
	sort.Slice(guests, func(i, j int) bool {
		if !guests[i].LastVisit.Equal(guests[j].LastVisit) {
			return guests[i].LastVisit.After(guests[j].LastVisit)
		}
		return guests[i].Name < guests[j].Name
	})
	return guests, nil
}
