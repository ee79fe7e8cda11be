package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
	"hotelops/utils"
)

// StaffRequest is shared by create and update. Password is ignored on update.
type StaffRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	Status      string          `json:"status"`
	Permissions map[string]bool `json:"permissions"`
}

func (r StaffRequest) input() services.StaffInput {
	return services.StaffInput{
		Name:        r.Name,
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		Phone:       r.Phone,
		Status:      r.Status,
		Permissions: r.Permissions,
	}
}

type StaffController struct {
	StaffSvc *services.StaffService
}

func NewStaffController(svc *services.StaffService) *StaffController {
	return &StaffController{StaffSvc: svc}
}

// GET /api/auth/staff
func (sc *StaffController) GetStaff(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	staff, err := sc.StaffSvc.List(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// POST /api/auth/staff
func (sc *StaffController) CreateStaff(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := sc.StaffSvc.Create(c.Request.Context(), p.HotelID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff account created", "user": user})
}

// PUT /api/auth/staff/:id
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in := req.input()
	in.Password = ""

	user, err := sc.StaffSvc.Update(c.Request.Context(), p.HotelID, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/auth/staff/:id
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := sc.StaffSvc.Delete(c.Request.Context(), p.HotelID, p.UserID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Staff member removed")
}
