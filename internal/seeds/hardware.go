package seeds

import (
	"errors"
	"fmt"
	"log"

	"github.com/HardwareHub/HH-Backend/internal/db"
	"github.com/HardwareHub/HH-Backend/internal/hardware"
	"gorm.io/gorm"
)

func float(v float64) *float64 { return &v }

// Sample catalog with Nepali Rupee prices. A nil rental price means the item
// is buy-only.
var sampleHardware = []hardware.Hardware{
	{
		Name:              "Electric Drill",
		Category:          "Power Tools",
		Description:       "Professional 18V cordless drill with lithium battery",
		Price:             11500.00,
		RentalPricePerDay: float(1800.00),
		StockQuantity:     10,
		ImageURL:          "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Circular Saw",
		Category:          "Power Tools",
		Description:       "Heavy duty 7-1/4 inch circular saw",
		Price:             16500.00,
		RentalPricePerDay: float(2500.00),
		StockQuantity:     8,
		ImageURL:          "https://images.unsplash.com/photo-1513467655676-561b7d489a88?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Hammer",
		Category:          "Hand Tools",
		Description:       "Steel claw hammer with rubber grip",
		Price:             2500.00,
		RentalPricePerDay: float(350.00),
		StockQuantity:     25,
		ImageURL:          "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Wrench Set",
		Category:          "Hand Tools",
		Description:       "Complete metric and SAE wrench set",
		Price:             6300.00,
		RentalPricePerDay: float(950.00),
		StockQuantity:     15,
		ImageURL:          "https://images.unsplash.com/photo-1585569695919-db237e7cc455?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Extension Ladder 20ft",
		Category:          "Equipment",
		Description:       "Aluminum extension ladder, 250 lb capacity",
		Price:             25500.00,
		RentalPricePerDay: float(3800.00),
		StockQuantity:     5,
		ImageURL:          "https://images.unsplash.com/photo-1658261696674-c547f50a7f11?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Impact Driver",
		Category:          "Power Tools",
		Description:       "High-torque impact driver with quick-change chuck",
		Price:             12700.00,
		RentalPricePerDay: float(2200.00),
		StockQuantity:     12,
		ImageURL:          "https://images.unsplash.com/photo-1592054286113-649ba108e968?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Tape Measure 25ft",
		Category:          "Hand Tools",
		Description:       "Retractable measuring tape with magnetic tip",
		Price:             1600.00,
		RentalPricePerDay: float(250.00),
		StockQuantity:     30,
		ImageURL:          "https://images.unsplash.com/photo-1559647746-9b2f216d2dc3?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Angle Grinder",
		Category:          "Power Tools",
		Description:       "4.5-inch angle grinder for cutting and grinding",
		Price:             10200.00,
		RentalPricePerDay: float(1500.00),
		StockQuantity:     7,
		ImageURL:          "https://images.unsplash.com/photo-1734888369502-3e01d4c0a46e?w=500",
		IsAvailable:       true,
	},
	{
		Name:          "Tool Box",
		Category:      "Storage",
		Description:   "Heavy-duty rolling tool chest with 7 drawers",
		Price:         38200.00,
		StockQuantity: 4,
		ImageURL:      "https://images.unsplash.com/photo-1615746363486-92cd8c5e0a90?w=500",
		IsAvailable:   true,
	},
	{
		Name:          "Safety Goggles",
		Category:      "Safety Gear",
		Description:   "Impact-resistant safety glasses with anti-fog coating",
		Price:         1200.00,
		StockQuantity: 50,
		ImageURL:      "https://images.unsplash.com/photo-1606196285832-d14967816606?w=500",
		IsAvailable:   true,
	},
	{
		Name:              "Jigsaw",
		Category:          "Power Tools",
		Description:       "Variable speed jigsaw for precise cutting",
		Price:             8900.00,
		RentalPricePerDay: float(1400.00),
		StockQuantity:     9,
		ImageURL:          "https://images.pexels.com/photos/8447895/pexels-photo-8447895.jpeg?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Paint Sprayer",
		Category:          "Painting Equipment",
		Description:       "High-volume low-pressure paint sprayer",
		Price:             15800.00,
		RentalPricePerDay: float(2800.00),
		StockQuantity:     6,
		ImageURL:          "https://plus.unsplash.com/premium_photo-1663047450953-2251c9d5f2b0?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Nail Gun",
		Category:          "Power Tools",
		Description:       "Pneumatic framing nail gun",
		Price:             14200.00,
		RentalPricePerDay: float(2400.00),
		StockQuantity:     8,
		ImageURL:          "https://plus.unsplash.com/premium_photo-1679251457487-20872e51855b?w=500",
		IsAvailable:       true,
	},
	{
		Name:              "Screwdriver Set",
		Category:          "Hand Tools",
		Description:       "20-piece precision screwdriver set",
		Price:             2800.00,
		RentalPricePerDay: float(400.00),
		StockQuantity:     20,
		ImageURL:          "https://images.pexels.com/photos/19144413/pexels-photo-19144413.jpeg?w=500",
		IsAvailable:       true,
	},
	{
		Name:          "Work Gloves",
		Category:      "Safety Equipment",
		Description:   "Leather palm work gloves (1 pair)",
		Price:         850.00,
		StockQuantity: 100,
		ImageURL:      "https://images.unsplash.com/photo-1582586131076-6c308a437385?w=500",
		IsAvailable:   true,
	},
}

func SeedHardware() error {
	seeded := 0
	for _, item := range sampleHardware {
		var existing hardware.Hardware
		err := db.DB.First(&existing, "name = ?", item.Name).Error

		if err == nil {
			log.Printf("⚠️ Hardware exists, skipping: %s", item.Name)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("DB error on hardware %s: %w", item.Name, err)
		}

		if err := db.DB.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create hardware %s: %w", item.Name, err)
		}
		seeded++
	}

	log.Printf("✅ Seeded %d hardware items", seeded)
	return nil
}
