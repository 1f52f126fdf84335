package main

import (
	"log"

	"github.com/joho/godotenv"

	"Sistem-Manajemen-Gym/config"
	"Sistem-Manajemen-Gym/repository"
	"Sistem-Manajemen-Gym/seeder"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	config.LoadConfig()
	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	planRepo := repository.NewPlanRepository()
	userRepo := repository.NewUserRepository()

	seeder.SeedPlans(planRepo)
	seeder.SeedUsers(userRepo)
}
