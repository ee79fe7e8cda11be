package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// GET /api/guests
func (gc *GuestController) GetGuests(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	guests, err := gc.GuestSvc.List(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}
