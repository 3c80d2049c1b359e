package routes

import (
	"gonzofleet/internal/controllers"
	"gonzofleet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ApplicationRoutes(r *gin.Engine) {
	applications := r.Group("/applications")
	applications.Use(middleware.RequireAuth())
	{
		applications.GET("", controllers.ListApplications)
		applications.GET("/:id", controllers.GetApplication)
		applications.PATCH("/:id", controllers.UpdateApplication)
	}
}
