package routes

import (
	"gonzofleet/internal/controllers"

	"github.com/gin-gonic/gin"
)

// WebhookRoutes are unauthenticated; the caller is the WordPress form
// plugin, which has no staff token.
func WebhookRoutes(r *gin.Engine) {
	webhook := r.Group("/webhook")
	{
		webhook.POST("/fluent-forms", controllers.FluentFormsWebhook)
	}
}
