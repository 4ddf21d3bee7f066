package professional

import (
	"encoding/json"
	"net/http"

	"github.com/HardwareHub/HH-Backend/internal/db"
	"github.com/HardwareHub/HH-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

func ListProfessionals(w http.ResponseWriter, r *http.Request) {
	var professionals []Professional
	if err := db.DB.Order("created_at DESC").Find(&professionals).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch professionals")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"count":   len(professionals),
		"data":    professionals,
	})
}

func GetProfessional(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var professional Professional
	if err := db.DB.First(&professional, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Professional not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"data":    professional,
	})
}

// GetProfessionalsBySkill filters by partial skill match ("plumb" matches
// "Plumbing") or an exact specialty tag, highest rated first.
func GetProfessionalsBySkill(w http.ResponseWriter, r *http.Request) {
	skill := chi.URLParam(r, "skill")
	pattern := "%" + skill + "%"

	var professionals []Professional
	err := db.DB.
		Where("skill ILIKE ? OR ? = ANY(specialties)", pattern, skill).
		Order("rating DESC").
		Find(&professionals).Error
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch professionals")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"count":   len(professionals),
		"data":    professionals,
	})
}

func CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID          *string  `json:"user_id"`
		Skill           string   `json:"skill"`
		Specialties     []string `json:"specialties"`
		ExperienceYears *int     `json:"experience_years"`
		HourlyRate      *float64 `json:"hourly_rate"`
		Bio             string   `json:"bio"`
		IsAvailable     *bool    `json:"is_available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Skill == "" {
		utils.RespondError(w, http.StatusBadRequest, "Skill is required")
		return
	}

	professional := Professional{
		UserID:          req.UserID,
		Skill:           req.Skill,
		Specialties:     pq.StringArray(req.Specialties),
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Bio:             req.Bio,
		IsAvailable:     true,
	}
	if req.IsAvailable != nil {
		professional.IsAvailable = *req.IsAvailable
	}

	if err := db.DB.Create(&professional).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create professional")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, utils.Envelope{
		"success": true,
		"message": "Professional added successfully",
		"data":    professional,
	})
}

func DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var professional Professional
	if err := db.DB.First(&professional, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Professional not found")
		return
	}

	if err := db.DB.Delete(&professional).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete professional")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "Professional deleted",
	})
}
