package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/logger"
	"hotelops/models"
	"hotelops/services"
	"hotelops/utils"
)

type UserLookup interface {
	Lookup(ctx context.Context, hotelID, userID string) (*models.User, error)
}

// RequireCapability loads the caller's current account and rejects the
// request unless it is active and holds every listed capability.
func RequireCapability(users UserLookup, caps ...models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		user, err := users.Lookup(c.Request.Context(), p.HotelID, p.UserID)
		if err != nil {
			if errors.Is(err, services.ErrStaffNotFound) {
				utils.AbortWithError(c, http.StatusForbidden, "Access denied")
				return
			}
			logger.FromGin(c).Error("load caller failed", zap.Error(err))
			utils.AbortWithError(c, http.StatusInternalServerError, "Server Error")
			return
		}
		if !user.Active() {
			utils.AbortWithError(c, http.StatusForbidden, "Account is inactive")
			return
		}

		perms := models.EffectivePermissions(user.Role, user.Permissions)
		for _, capability := range caps {
			if !perms[capability] {
				utils.AbortWithError(c, http.StatusForbidden, "Access denied: missing "+string(capability)+" permission")
				return
			}
		}

		c.Next()
	}
}

// RequireRole admits only callers whose token carries one of roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		utils.AbortWithError(c, http.StatusForbidden, "Access denied")
	}
}
