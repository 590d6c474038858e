package routes

import (
	"time"

	"meetslot/handlers"
	"meetslot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers the health check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterMeetingRoutes registers the slot resolution endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.POST("/query", hb.QueryHandler)
		api.POST("/query/:date", hb.QueryForDateHandler)
		api.POST("/precompute/:date", hb.PrecomputeHandler)
	}
}

// RegisterCalendarRoutes registers the stored-event endpoints. Writes require a token.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendars/:date")
	{
		api.GET("/events", hb.ListEventsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/events", hb.AddEventsHandler)
		protected.DELETE("/events/:eventID", hb.DeleteEventHandler)
		protected.POST("/import", hb.ImportICSHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
}
