package routes

import (
	"gonzofleet/internal/controllers"
	"gonzofleet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SmsRoutes(r *gin.Engine) {
	sms := r.Group("/sms")
	sms.Use(middleware.RequireAuth())
	{
		sms.POST("/send", controllers.SendSMS)
	}
}
