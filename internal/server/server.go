package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"seatwise/config"
	"seatwise/internal/handlers"
	"seatwise/internal/middleware"
	"seatwise/internal/models"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListUpcomingEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
			eventPublic.GET("/:id/seats", handlers.ListAvailableSeats)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleOrganizer)

		venues := protected.Group("/venues")
		{
			venues.POST("", staffOnly, handlers.CreateVenue)
			venues.GET("", handlers.ListVenues)
		}

		events := protected.Group("/events")
		{
			events.POST("", staffOnly, handlers.CreateEvent)
			events.PATCH("/:id/status", staffOnly, handlers.UpdateEventStatus)
		}

		protected.POST("/bookings", handlers.BookSeats)

		orders := protected.Group("/orders")
		{
			orders.GET("", handlers.ListOrders)
			orders.POST("/:id/refund", handlers.RefundOrder)
		}

		tickets := protected.Group("/tickets")
		{
			tickets.POST("/validate", middleware.RequireRole(models.RoleEntryManager, models.RoleAdmin), handlers.ValidateTicket)
			tickets.GET("/:code/qr", handlers.GenerateTicketQR)
		}

		protected.GET("/support/requests", middleware.RequireRole(models.RoleSupport, models.RoleAdmin), handlers.ListSupportRequests)
		protected.GET("/analytics", middleware.RequireRole(models.RoleAdmin), handlers.GetAnalytics)
	}
}
