package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"gonzofleet/internal/middleware"
)

// SetupRouter wires middleware and every route group onto one engine.
func SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AuthRoutes(r)
	DriverRoutes(r)
	ApplicationRoutes(r)
	PaymentRoutes(r)
	SmsRoutes(r)
	WebhookRoutes(r)

	return r
}
