package main

import (
	"fmt"
	"log"

	util "Sistem-Manajemen-Gym/pkg/utils"
)

// Mencetak secret baru untuk PASETO_SECRET di file .env.
func main() {
	key, err := util.GenerateBase64Key(32)
	if err != nil {
		log.Fatalf("gagal membuat key: %v", err)
	}
	fmt.Printf("PASETO_SECRET=%s\n", key)
}
