package hardware

import (
	"time"

	"github.com/google/uuid"
)

// Hardware is a catalog item. It can always be bought outright; when
// RentalPricePerDay is set it can also be rented by the day.
type Hardware struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Category          string    `gorm:"not null;index" json:"category"`
	Description       string    `json:"description,omitempty"`
	Price             float64   `gorm:"not null" json:"price"`
	RentalPricePerDay *float64  `json:"rental_price_per_day,omitempty"`
	StockQuantity     int       `gorm:"default:0" json:"stock_quantity"`
	ImageURL          string    `json:"image_url,omitempty"`
	IsAvailable       bool      `gorm:"default:true" json:"is_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Hardware) TableName() string { return "catalog.hardware" }
