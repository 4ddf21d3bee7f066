package main

import (
	"log"

	"github.com/HardwareHub/HH-Backend/internal/auth"
	"github.com/HardwareHub/HH-Backend/internal/config"
	"github.com/HardwareHub/HH-Backend/internal/db"
	"github.com/HardwareHub/HH-Backend/internal/hardware"
	"github.com/HardwareHub/HH-Backend/internal/professional"
	"github.com/HardwareHub/HH-Backend/internal/seeds"
)

func main() {
	config.Load()
	db.Connect()

	auth.Init()
	hardware.Init()
	professional.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
