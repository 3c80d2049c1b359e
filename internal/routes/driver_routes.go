package routes

import (
	"gonzofleet/internal/controllers"
	"gonzofleet/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.GET("", controllers.ListDrivers)
		drivers.POST("", controllers.CreateDriver)
		drivers.GET("/:id", controllers.GetDriver)
		drivers.PATCH("/:id", controllers.UpdateDriver)
		drivers.PATCH("/:id/billing", controllers.ToggleBilling)

		drivers.GET("/:id/aliases", controllers.ListAliases)
		drivers.POST("/:id/aliases", controllers.CreateAlias)
		drivers.DELETE("/:id/aliases/:alias_id", controllers.DeleteAlias)

		drivers.GET("/:id/ledger", controllers.GetDriverLedger)
	}
}
