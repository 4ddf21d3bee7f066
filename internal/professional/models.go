package professional

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Professional is a directory entry for a service provider. UserID optionally
// links the entry to a registered account; it is a weak reference resolved by
// lookup, never preloaded.
type Professional struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID          *string        `gorm:"index" json:"user_id,omitempty"`
	Skill           string         `gorm:"not null;index" json:"skill"`
	Specialties     pq.StringArray `gorm:"type:text[]" json:"specialties,omitempty"`
	ExperienceYears *int           `json:"experience_years,omitempty"`
	HourlyRate      *float64       `json:"hourly_rate,omitempty"`
	Bio             string         `json:"bio,omitempty"`
	Rating          float64        `gorm:"default:0" json:"rating"`
	IsAvailable     bool           `gorm:"default:true" json:"is_available"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Professional) TableName() string { return "directory.professionals" }
