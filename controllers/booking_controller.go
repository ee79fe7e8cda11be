package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/logger"
	"hotelops/metrics"
	"hotelops/models"
	"hotelops/services"
	"hotelops/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CreateBookingRequest struct {
	GuestName    string `json:"guestName"`
	GuestPhone   string `json:"guestPhone"`
	GuestEmail   string `json:"guestEmail"`
	GuestCount   int    `json:"guestCount"`
	RoomID       string `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	bookings, err := bc.BookingSvc.List(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (bc *BookingController) GetBooking(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	booking, err := bc.BookingSvc.Get(c.Request.Context(), p.HotelID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if strings.TrimSpace(req.RoomID) == "" {
		utils.JSONError(c, http.StatusBadRequest, "roomId is required")
		return
	}

	checkIn, err := models.ParseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate must be YYYY-MM-DD")
		return
	}
	checkOut, err := models.ParseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOutDate must be YYYY-MM-DD")
		return
	}

	booking, err := bc.BookingSvc.Create(c.Request.Context(), p.HotelID, services.CreateBookingInput{
		RoomID:     strings.TrimSpace(req.RoomID),
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		GuestCount: req.GuestCount,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.BookingsCreated.Inc()
	c.JSON(http.StatusCreated, booking)
}

// PUT /api/bookings/:id
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	next, valid := models.ParseBookingStatus(req.Status)
	if !valid {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("unknown booking status %q", req.Status))
		return
	}

	booking, changed, err := bc.BookingSvc.UpdateStatus(c.Request.Context(), p.HotelID, c.Param("id"), next)
	if err != nil {
		respondError(c, err)
		return
	}
	if changed {
		metrics.BookingTransitions.WithLabelValues(string(next)).Inc()
		logger.FromGin(c).Info("booking status changed",
			zap.String("booking_id", booking.ID),
			zap.String("status", string(next)),
		)
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/bookings/export
func (bc *BookingController) ExportBookings(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	bookings, err := bc.BookingSvc.List(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := services.BookingsWorkbook(bookings)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
