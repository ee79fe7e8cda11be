package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/logger"
	"hotelops/metrics"
	"hotelops/models"
	"hotelops/services"
	"hotelops/utils"
)

type RegisterRequest struct {
	OwnerName string `json:"ownerName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	HotelName string `json:"hotelName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Role    models.Role `json:"role"`
	HotelID string      `json:"hotelId"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hotel, owner, err := ac.AuthSvc.Register(c.Request.Context(), services.RegisterInput{
		HotelName: req.HotelName,
		OwnerName: req.OwnerName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RegistrationCounter.Inc()
	logger.FromGin(c).Info("hotel registered",
		zap.String("hotel_id", hotel.ID),
		zap.String("owner_id", owner.ID),
	)
	utils.JSONMessage(c, http.StatusCreated, "Registered successfully!")
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := ac.AuthSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			metrics.LoginCounter.WithLabelValues("invalid").Inc()
		case errors.Is(err, services.ErrInactiveAccount):
			metrics.LoginCounter.WithLabelValues("inactive").Inc()
		default:
			metrics.LoginCounter.WithLabelValues("error").Inc()
		}
		respondError(c, err)
		return
	}

	metrics.LoginCounter.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
		"user": sessionUser{
			ID:      res.User.ID,
			Name:    res.User.Name,
			Role:    res.User.Role,
			HotelID: res.User.HotelID,
		},
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := ac.AuthSvc.Logout(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Logged out")
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	user, err := ac.AuthSvc.Profile(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"permissions": models.EffectivePermissions(user.Role, user.Permissions),
	})
}
