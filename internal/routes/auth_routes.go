package routes

import (
	"gonzofleet/internal/controllers"
	"gonzofleet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/register", controllers.Register)
		auth.POST("/logout", controllers.Logout)
		auth.GET("/me", middleware.RequireAuth(), controllers.Me)
	}
}
