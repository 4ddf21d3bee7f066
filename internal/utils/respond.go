package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the common response shape: {"success": bool, "message": ...}.
type Envelope map[string]any

func RespondJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Envelope{"success": false, "message": message})
}
