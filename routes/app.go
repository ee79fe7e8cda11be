package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelops/controllers"
	"hotelops/services"
)

// New builds the services and controllers over db and returns the router.
func New(db *gorm.DB, tokens *services.TokenService, corsOrigins []string) *gin.Engine {
	authService := services.NewAuthService(db, tokens)
	staffService := services.NewStaffService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	dashboardService := services.NewDashboardService(db)
	invoiceService := services.NewInvoiceService(db)
	guestService := services.NewGuestService(db)
	hotelService := services.NewHotelService(db)

	h := Controllers{
		Auth:      controllers.NewAuthController(authService),
		Staff:     controllers.NewStaffController(staffService),
		Rooms:     controllers.NewRoomController(roomService),
		Bookings:  controllers.NewBookingController(bookingService),
		Dashboard: controllers.NewDashboardController(dashboardService),
		Invoices:  controllers.NewInvoiceController(invoiceService),
		Guests:    controllers.NewGuestController(guestService),
		Settings:  controllers.NewSettingsController(hotelService),
	}
	return SetupRouter(h, tokens, staffService, corsOrigins)
}
