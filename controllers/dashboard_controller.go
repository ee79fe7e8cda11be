package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{DashboardSvc: svc}
}

// GET /api/dashboard/stats
func (dc *DashboardController) GetStats(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	stats, err := dc.DashboardSvc.Stats(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
