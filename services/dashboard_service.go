package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelops/models"
)

type DashboardStats struct {
	Date           models.Date     `json:"date"`
	CheckIns       int64           `json:"checkIns"`
	Revenue        decimal.Decimal `json:"revenue"`
	Occupancy      int             `json:"occupancyRate"`
	TotalRooms     int64           `json:"totalRooms"`
	AvailableRooms int64           `json:"availableRooms"`
}

type DashboardService struct {
	DB *gorm.DB

	// Now supplies "today"; the date is taken in UTC.
	Now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

// OccupancyRate is occupied over total as a whole percentage, rounded half up.
func OccupancyRate(occupied, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(occupied)*100/float64(total) + 0.5))
}

func (s *DashboardService) Stats(ctx context.Context, hotelID string) (*DashboardStats, error) {
	db := s.DB.WithContext(ctx)
	today := models.DateOf(s.Now().UTC())
	stats := &DashboardStats{Date: today, Revenue: decimal.Zero}

	bookings := func() *gorm.DB {
		return db.Model(&models.Booking{}).Where("hotel_id = ?", hotelID)
	}

	if err := bookings().Where("check_in_date = ?", today).Count(&stats.CheckIns).Error; err != nil {
		return nil, fmt.Errorf("count check-ins: %w", err)
	}

	var revenue decimal.NullDecimal
	if err := bookings().Select("SUM(total_amount)").Row().Scan(&revenue); err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	if revenue.Valid {
		stats.Revenue = revenue.Decimal.Round(2)
	}

	var occupied int64
	err := bookings().
		Where("check_in_date <= ? AND check_out_date > ?", today, today).
		Where("status <> ?", models.BookingCancelled).
		Count(&occupied).Error
	if err != nil {
		return nil, fmt.Errorf("count occupied rooms: %w", err)
	}

	rooms := func() *gorm.DB {
		return db.Model(&models.Room{}).Where("hotel_id = ?", hotelID)
	}
	if err := rooms().Count(&stats.TotalRooms).Error; err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	if err := rooms().Where("status = ?", models.RoomAvailable).Count(&stats.AvailableRooms).Error; err != nil {
		return nil, fmt.Errorf("count available rooms: %w", err)
	}

	stats.Occupancy = OccupancyRate(occupied, stats.TotalRooms)
	return stats, nil
}
