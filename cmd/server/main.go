package main

import (
	"log"
	"net/http"

	"gonzofleet/internal/config"
	"gonzofleet/internal/controllers"
	"gonzofleet/internal/logger"
	"gonzofleet/internal/middleware"
	"gonzofleet/internal/routes"
	"gonzofleet/internal/services"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Configuration and database
	cfg := config.Load()
	config.InitDB()

	// OpenPhone client for /sms/send
	controllers.SMSClient = services.NewOpenPhoneClient(cfg)

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
