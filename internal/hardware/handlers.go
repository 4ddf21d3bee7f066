package hardware

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/HardwareHub/HH-Backend/internal/db"
	"github.com/HardwareHub/HH-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListHardware returns catalog items, newest first, with optional filters.
func ListHardware(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Model(&Hardware{})
	params := r.URL.Query()

	if category := params.Get("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := params.Get("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if params.Get("available") == "true" {
		query = query.Where("is_available = ?", true)
	}
	if minStr := params.Get("min_price"); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid min_price format")
			return
		}
		query = query.Where("price >= ?", min)
	}
	if maxStr := params.Get("max_price"); maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid max_price format")
			return
		}
		query = query.Where("price <= ?", max)
	}

	var items []Hardware
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch hardware")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

func GetHardware(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var item Hardware
	if err := db.DB.First(&item, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Hardware not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"data":    item,
	})
}

func CreateHardware(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name              string   `json:"name"`
		Category          string   `json:"category"`
		Description       string   `json:"description"`
		Price             *float64 `json:"price"`
		RentalPricePerDay *float64 `json:"rental_price_per_day"`
		StockQuantity     int      `json:"stock_quantity"`
		ImageURL          string   `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Name == "" || req.Category == "" || req.Price == nil {
		utils.RespondError(w, http.StatusBadRequest, "Name, category, and price are required")
		return
	}

	item := Hardware{
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		Price:             *req.Price,
		RentalPricePerDay: req.RentalPricePerDay,
		StockQuantity:     req.StockQuantity,
		ImageURL:          req.ImageURL,
		IsAvailable:       true,
	}
	if err := db.DB.Create(&item).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create hardware")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, utils.Envelope{
		"success": true,
		"message": "Hardware created",
		"data":    item,
	})
}

// updatableColumns whitelists what a PUT may touch.
var updatableColumns = map[string]bool{
	"name":                 true,
	"category":             true,
	"description":          true,
	"price":                true,
	"rental_price_per_day": true,
	"stock_quantity":       true,
	"image_url":            true,
	"is_available":         true,
}

func UpdateHardware(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var item Hardware
	if err := db.DB.First(&item, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Hardware not found")
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	updates := map[string]any{}
	for column, value := range body {
		if updatableColumns[column] {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "No updatable fields provided")
		return
	}

	if err := db.DB.Model(&item).Updates(updates).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update hardware")
		return
	}

	if err := db.DB.First(&item, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch updated hardware")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "Hardware updated",
		"data":    item,
	})
}

func DeleteHardware(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var item Hardware
	if err := db.DB.First(&item, "id = ?", id).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Hardware not found")
		return
	}

	if err := db.DB.Delete(&item).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete hardware")
		return
	}

	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"message": "Hardware deleted",
	})
}
