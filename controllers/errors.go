package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/logger"
	"hotelops/middleware"
	"hotelops/services"
	"hotelops/utils"
)

const msgServerError = "Server Error"

var (
	badRequestErrors = []error{
		services.ErrDuplicateEmail,
		services.ErrDuplicateRoomNumber,
		services.ErrRoomInUse,
		services.ErrRoomUnavailable,
		services.ErrIllegalTransition,
		services.ErrInvoiceExists,
	}
	notFoundErrors = []error{
		services.ErrHotelNotFound,
		services.ErrStaffNotFound,
		services.ErrRoomNotFound,
		services.ErrBookingNotFound,
		services.ErrInvoiceNotFound,
	}
)

func statusFor(err error) int {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	switch {
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInactiveAccount):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes the JSON error body for err. Unmapped errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.FromGin(c).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		utils.JSONError(c, code, msgServerError)
		return
	}
	utils.JSONError(c, code, err.Error())
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// principal returns the authenticated caller. Routes reaching a controller
// always pass RequireAuth, so a miss is a wiring bug.
func principal(c *gin.Context) (services.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
	}
	return p, ok
}
