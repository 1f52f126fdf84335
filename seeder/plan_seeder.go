package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/repository"
)

// SeedPlans mengisi katalog paket membership awal. Idempotent: paket yang
// sudah ada (berdasarkan nama) dilewati.
func SeedPlans(planRepo repository.PlanRepository) {
	log.Println("🌱 Memulai seeding paket membership...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	plans := []models.Plan{
		{
			Name:         "Membership Bulanan",
			Sessions:     30,
			ValidityDays: 30,
			Price:        250000,
			Type:         "member",
			TrainerType:  "general",
			Active:       true,
		},
		{
			Name:         "Membership 3 Bulan",
			Sessions:     90,
			ValidityDays: 90,
			Price:        675000,
			Type:         "member",
			TrainerType:  "general",
			Active:       true,
		},
		{
			Name:         "Personal Training 10 Sesi",
			Sessions:     10,
			ValidityDays: 60,
			Price:        1500000,
			Type:         "personal",
			TrainerType:  "personal",
			Active:       true,
		},
		{
			Name:         "Group Classes Bulanan",
			Sessions:     12,
			ValidityDays: 30,
			Price:        400000,
			Type:         "group",
			Active:       true,
		},
		{
			Name:         "Membership Tahunan (Lama)",
			Sessions:     365,
			ValidityDays: 365,
			Price:        2400000,
			Type:         "member",
			TrainerType:  "general",
			Active:       false,
		},
	}

	for i := range plans {
		existing, err := planRepo.FindPlanByName(ctx, plans[i].Name)
		if err != nil {
			log.Printf("❌ Gagal memeriksa paket %s: %v\n", plans[i].Name, err)
			continue
		}
		if existing != nil {
			fmt.Printf("Skipping: Paket %s sudah ada.\n", plans[i].Name)
			continue
		}

		if _, err := planRepo.CreatePlan(ctx, &plans[i]); err != nil {
			log.Printf("❌ Gagal menyimpan paket %s: %v\n", plans[i].Name, err)
		} else {
			fmt.Printf("✔ Paket %s berhasil ditambahkan.\n", plans[i].Name)
		}
	}

	log.Println("✅ Seeding paket membership selesai.")
}
