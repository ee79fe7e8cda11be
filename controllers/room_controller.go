package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotelops/services"
	"hotelops/utils"
)

// RoomRequest accepts price as a JSON number or numeric string.
type RoomRequest struct {
	RoomNumber *string          `json:"roomNumber"`
	Type       *string          `json:"type"`
	Price      *decimal.Decimal `json:"price"`
	Status     *string          `json:"status"`
	Floor      *string          `json:"floor"`
	Amenities  map[string]bool  `json:"amenities"`
}

func (r RoomRequest) input() services.RoomInput {
	return services.RoomInput{
		RoomNumber: r.RoomNumber,
		Type:       r.Type,
		Price:      r.Price,
		Status:     r.Status,
		Floor:      r.Floor,
		Amenities:  r.Amenities,
	}
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	rooms, err := rc.RoomSvc.List(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (rc *RoomController) GetRoom(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	room, err := rc.RoomSvc.Get(c.Request.Context(), p.HotelID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	room, err := rc.RoomSvc.Create(c.Request.Context(), p.HotelID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// PUT /api/rooms/:id
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	room, err := rc.RoomSvc.Update(c.Request.Context(), p.HotelID, c.Param("id"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /api/rooms/:id
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := rc.RoomSvc.Delete(c.Request.Context(), p.HotelID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted")
}
