package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/repository"
)

func SeedUsers(userRepo *repository.UserRepository) {
	log.Println("🌱 Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rand.Seed(time.Now().UnixNano())

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	// =======================================================
	// Data untuk Admin
	// =======================================================
	adminEmail := "admin.gym@gmail.com"
	adminUser, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && adminUser != nil {
		log.Println("✅ User admin sudah ada, seeding user admin dilewati.")
	} else {
		log.Println("🔄 Menambahkan user Admin...")
		newAdmin := &models.User{
			ID:           primitive.NewObjectID(),
			Name:         "Admin Gym",
			Email:        adminEmail,
			Password:     string(hashedPassword),
			Role:         "admin",
			Position:     "Manajer Operasional",
			Address:      "Jl. Kebugaran No. 1, Jakarta",
			IsFirstLogin: true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		_, err := userRepo.CreateUser(ctx, newAdmin)
		if err != nil {
			log.Printf("❌ Gagal menyimpan user admin: %v\n", err)
		} else {
			fmt.Printf("✔ User Admin (%s) berhasil ditambahkan.\n", newAdmin.Email)
		}
	}

	// =======================================================
	// Data untuk Staf (trainer dan front desk)
	// =======================================================
	staffProfiles := []struct {
		Position              string
		HourlyRate            float64
		CommissionRatePercent float64
		FixedSalary           float64
	}{
		{"Personal Trainer", 200, 10, 5000},
		{"Personal Trainer", 175, 8, 4500},
		{"Group Class Instructor", 150, 5, 4000},
		{"Group Class Instructor", 150, 5, 4000},
		{"Front Desk", 100, 0, 3500},
		{"Front Desk", 100, 0, 3500},
	}

	firstNames := []string{"Budi", "Siti", "Agus", "Dewi", "Joko", "Sri", "Rina", "Andi", "Nur", "Hadi", "Kartika", "Eko", "Maya", "Dian", "Fajar", "Indra", "Putri", "Rizky", "Tia", "Wisnu"}
	lastNames := []string{"Santoso", "Wijaya", "Putra", "Utami", "Nugroho", "Rahayu", "Kusumo", "Handayani", "Pratama", "Saputra", "Lestari", "Setiawan", "Aditya", "Wulandari", "Maulana"}
	cities := []string{"Jakarta", "Bandung", "Surabaya", "Yogyakarta", "Semarang", "Denpasar", "Medan", "Makassar"}

	log.Println("🔄 Menambahkan user Staf...")
	for i, profile := range staffProfiles {
		email := fmt.Sprintf("staf%02d@gmail.com", i+1)
		existingUser, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existingUser != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", email)
			continue
		}

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])
		address := fmt.Sprintf("Jl. %s No. %d, %s", cities[rand.Intn(len(cities))], rand.Intn(100)+1, cities[rand.Intn(len(cities))])

		newStaf := &models.User{
			ID:                    primitive.NewObjectID(),
			Name:                  fullName,
			Email:                 email,
			Password:              string(hashedPassword),
			Role:                  "staf",
			Position:              profile.Position,
			HourlyRate:            profile.HourlyRate,
			CommissionRatePercent: profile.CommissionRatePercent,
			FixedSalary:           profile.FixedSalary,
			Address:               address,
			IsFirstLogin:          true,
			CreatedAt:             time.Now(),
			UpdatedAt:             time.Now(),
		}

		_, err = userRepo.CreateUser(ctx, newStaf)
		if err != nil {
			log.Printf("❌ Gagal menyimpan user %s: %v\n", newStaf.Name, err)
		} else {
			fmt.Printf("✔ User %s (%s) berhasil ditambahkan.\n", newStaf.Name, newStaf.Position)
		}
	}

	// =======================================================
	// Data untuk Member
	// =======================================================
	interests := []string{"Personal Training", "Group Classes", "General", "Both"}

	log.Println("🔄 Menambahkan 15 user Member...")
	for i := 1; i <= 15; i++ {
		email := fmt.Sprintf("member%02d@gmail.com", i)
		existingUser, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existingUser != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", email)
			continue
		}

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])
		address := fmt.Sprintf("Jl. %s No. %d, %s", cities[rand.Intn(len(cities))], rand.Intn(100)+1, cities[rand.Intn(len(cities))])

		newMember := &models.User{
			ID:           primitive.NewObjectID(),
			Name:         fullName,
			Email:        email,
			Password:     string(hashedPassword),
			Role:         "member",
			Interest:     interests[rand.Intn(len(interests))],
			Status:       "Pending",
			Address:      address,
			IsFirstLogin: true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		_, err = userRepo.CreateUser(ctx, newMember)
		if err != nil {
			log.Printf("❌ Gagal menyimpan user %s: %v\n", newMember.Name, err)
		} else {
			fmt.Printf("✔ User %s (member, minat %s) berhasil ditambahkan.\n", newMember.Name, newMember.Interest)
		}
	}

	log.Println("✅ Seeding user selesai.")
}
