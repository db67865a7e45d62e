package main

import (
	"log"

	_ "motorcar_consultancy/docs"
	"motorcar_consultancy/internal/adapter/http/routes"
	"motorcar_consultancy/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MotorCar Consultancy API
// @version         1.0
// @description     Car-buying consultancy bookings: service selection, checkout and contact.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000

// @BasePath  /api

func main() {
	if err := routes.Run(config.Load()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}
