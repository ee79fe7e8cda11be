package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
)

type hotelSettingsPayload struct {
	Name       *string `json:"name"`
	OwnerPhone *string `json:"ownerPhone"`
}

type SettingsController struct {
	HotelSvc *services.HotelService
}

func NewSettingsController(svc *services.HotelService) *SettingsController {
	return &SettingsController{HotelSvc: svc}
}

// GET /api/settings/hotel
func (sc *SettingsController) GetHotelSettings(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	hotel, err := sc.HotelSvc.Get(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// PUT /api/settings/hotel
func (sc *SettingsController) UpdateHotelSettings(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}

	hotel, err := sc.HotelSvc.Update(c.Request.Context(), p.HotelID, services.HotelInput{
		Name:       payload.Name,
		OwnerPhone: payload.OwnerPhone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}
