package main

import (
	"log"

	"github.com/vodex-console/config"
	"github.com/vodex-console/database"
	"github.com/vodex-console/services"
)

func main() {
	log.Println("Starting admin seed...")

	config.LoadEnv()
	database.Initialize()

	if err := services.EnsureAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Admin seed completed successfully!")
}
