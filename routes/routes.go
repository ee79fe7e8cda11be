package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelops/controllers"
	"hotelops/metrics"
	"hotelops/middleware"
	"hotelops/models"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Auth      *controllers.AuthController
	Staff     *controllers.StaffController
	Rooms     *controllers.RoomController
	Bookings  *controllers.BookingController
	Dashboard *controllers.DashboardController
	Invoices  *controllers.InvoiceController
	Guests    *controllers.GuestController
	Settings  *controllers.SettingsController
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.TokenHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires every route. tokens verifies sessions and users reloads
// the caller for capability checks.
func SetupRouter(
	h Controllers,
	tokens middleware.TokenParser,
	users middleware.UserLookup,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		gin.Recovery(),
		cors.New(corsConfig(corsOrigins)),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HotelOps API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	authed := middleware.RequireAuth(tokens)
	can := func(caps ...models.Capability) gin.HandlerFunc {
		return middleware.RequireCapability(users, caps...)
	}
	// an empty capability list still requires a current, active account
	active := can()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", authed, h.Auth.Logout)
			auth.GET("/me", authed, active, h.Auth.Me)

			staff := auth.Group("/staff", authed, can(models.CapStaff))
			{
				staff.GET("", h.Staff.GetStaff)
				staff.POST("", h.Staff.CreateStaff)
				staff.PUT("/:id", h.Staff.UpdateStaff)
				staff.DELETE("/:id", h.Staff.DeleteStaff)
			}
		}

		rooms := api.Group("/rooms", authed, can(models.CapRooms))
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.POST("", h.Rooms.CreateRoom)
			rooms.GET("/:id", h.Rooms.GetRoom)
			rooms.PUT("/:id", h.Rooms.UpdateRoom)
			rooms.DELETE("/:id", can(models.CapDelete), h.Rooms.DeleteRoom)
		}

		bookings := api.Group("/bookings", authed, can(models.CapBookings))
		{
			bookings.GET("", h.Bookings.GetBookings)
			bookings.POST("", h.Bookings.CreateBooking)
			bookings.GET("/export", h.Bookings.ExportBookings)
			bookings.GET("/:id", h.Bookings.GetBooking)
			bookings.PUT("/:id", h.Bookings.UpdateBookingStatus)
		}

		api.GET("/dashboard/stats", authed, active, h.Dashboard.GetStats)

		invoices := api.Group("/invoices", authed, can(models.CapBilling))
		{
			invoices.GET("", h.Invoices.GetInvoices)
			invoices.POST("", h.Invoices.CreateInvoice)
			invoices.PUT("/:id", h.Invoices.UpdateInvoiceStatus)
		}

		api.GET("/guests", authed, can(models.CapGuests), h.Guests.GetGuests)

		settings := api.Group("/settings", authed, middleware.RequireRole(models.RoleOwner))
		{
			settings.GET("/hotel", h.Settings.GetHotelSettings)
			settings.PUT("/hotel", h.Settings.UpdateHotelSettings)
		}
	}

	return r
}
