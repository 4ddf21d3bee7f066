package seeds

import (
	"errors"
	"fmt"
	"log"

	"github.com/HardwareHub/HH-Backend/internal/db"
	"github.com/HardwareHub/HH-Backend/internal/professional"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func years(v int) *int { return &v }

var sampleProfessionals = []professional.Professional{
	{
		Skill:           "Plumbing",
		Specialties:     pq.StringArray{"pipe fitting", "drainage", "water heaters"},
		ExperienceYears: years(12),
		HourlyRate:      float(1200.00),
		Bio:             "Licensed plumber serving the Kathmandu valley",
		Rating:          4.8,
		IsAvailable:     true,
	},
	{
		Skill:           "Electrical",
		Specialties:     pq.StringArray{"wiring", "panel upgrades", "solar installs"},
		ExperienceYears: years(8),
		HourlyRate:      float(1500.00),
		Bio:             "Residential and light commercial electrical work",
		Rating:          4.6,
		IsAvailable:     true,
	},
	{
		Skill:           "Carpentry",
		Specialties:     pq.StringArray{"framing", "cabinetry", "furniture repair"},
		ExperienceYears: years(15),
		HourlyRate:      float(1000.00),
		Bio:             "Custom woodwork and on-site carpentry",
		Rating:          4.9,
		IsAvailable:     true,
	},
	{
		Skill:           "Painting",
		Specialties:     pq.StringArray{"interior", "exterior", "spray finishing"},
		ExperienceYears: years(6),
		HourlyRate:      float(800.00),
		Bio:             "Fast, clean residential painting crew",
		Rating:          4.3,
		IsAvailable:     true,
	},
}

func SeedProfessionals() error {
	seeded := 0
	for _, pro := range sampleProfessionals {
		var existing professional.Professional
		err := db.DB.First(&existing, "skill = ? AND bio = ?", pro.Skill, pro.Bio).Error

		if err == nil {
			log.Printf("⚠️ Professional exists, skipping: %s", pro.Skill)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("DB error on professional %s: %w", pro.Skill, err)
		}

		if err := db.DB.Create(&pro).Error; err != nil {
			return fmt.Errorf("failed to create professional %s: %w", pro.Skill, err)
		}
		seeded++
	}

	log.Printf("✅ Seeded %d professionals", seeded)
	return nil
}
