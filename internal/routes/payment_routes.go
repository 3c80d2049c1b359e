package routes

import (
	"gonzofleet/internal/controllers"
	"gonzofleet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine) {
	payments := r.Group("/payments")
	payments.Use(middleware.RequireAuth())
	{
		payments.GET("/unrecognized", controllers.ListUnrecognizedPayments)
	}
}
