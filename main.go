package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Sistem-Manajemen-Gym/config"
	_ "Sistem-Manajemen-Gym/docs"
	"Sistem-Manajemen-Gym/router"
	_ "time/tzdata"
)

// @title Sistem Manajemen Gym API
// @version 1.0
// @description API untuk sistem manajemen gym: member, staf, paket membership, gaji, absensi QR, jadwal kelas, dan pengajuan member
// @termsOfService https://github.com/your-repo/terms/
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Admin
// @tag.description Admin only endpoints
//
// @tag.name Plans
// @tag.description Membership plan endpoints
//
// @tag.name Salaries
// @tag.description Staff salary endpoints
//
// @tag.name Requests
// @tag.description Member renewal and booking request endpoints
//
// @tag.name Attendances
// @tag.description QR attendance endpoints
//
// @tag.name ClassSchedules
// @tag.description Class schedule endpoints
//
// @tag.name Tasks
// @tag.description Staff task endpoints
//
// @tag.name Dashboard
// @tag.description Admin dashboard endpoints
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	app := fiber.New()

	config.SetupCORS(app)

	app.Use(logger.New())

	router.SetupRoutes(app)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
