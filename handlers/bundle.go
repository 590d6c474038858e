// File: meetslot/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Meeting endpoints
	QueryHandler        gin.HandlerFunc
	QueryForDateHandler gin.HandlerFunc
	PrecomputeHandler   gin.HandlerFunc

	// Calendar endpoints
	AddEventsHandler   gin.HandlerFunc
	ListEventsHandler  gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc
	ImportICSHandler   gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}
