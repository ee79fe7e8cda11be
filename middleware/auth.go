package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/logger"
	"hotelops/services"
	"hotelops/utils"
)

const (
	TokenHeader  = "x-auth-token"
	principalKey = "principal"
)

type TokenParser interface {
	Parse(ctx context.Context, raw string) (*services.Claims, error)
}

func tokenFromRequest(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader(TokenHeader)); t != "" {
		return t
	}
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// RequireAuth verifies the session token and stores the caller's Principal
// on the context.
func RequireAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), raw)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidToken) {
				logger.FromGin(c).Error("token verification failed", zap.Error(err))
				utils.AbortWithError(c, http.StatusInternalServerError, "Server Error")
				return
			}
			utils.AbortWithError(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		if claims.HotelID == "" || !claims.Role.Valid() {
			utils.AbortWithError(c, http.StatusUnauthorized, "Token is not valid")
			return
		}

		p := claims.Principal()
		c.Set(principalKey, p)
		c.Set(logger.GinKey, logger.FromGin(c).With(
			zap.String("user_id", p.UserID),
			zap.String("hotel_id", p.HotelID),
		))
		c.Next()
	}
}

// PrincipalFrom returns the caller set by RequireAuth.
func PrincipalFrom(c *gin.Context) (services.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return services.Principal{}, false
	}
	p, ok := v.(services.Principal)
	return p, ok
}
