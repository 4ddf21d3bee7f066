package hardware

import (
	"log"

	"github.com/HardwareHub/HH-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "catalog"); err != nil {
		log.Fatal("Failed to ensure schema catalog: ", err)
	}

	if err := db.DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("Failed to enable uuid-ossp extension: ", err)
	}

	if err := db.DB.AutoMigrate(&Hardware{}); err != nil {
		log.Fatal("Failed to auto-migrate catalog tables: ", err)
	}
}
