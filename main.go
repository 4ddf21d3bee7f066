package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/HardwareHub/HH-Backend/internal/auth"
	"github.com/HardwareHub/HH-Backend/internal/config"
	"github.com/HardwareHub/HH-Backend/internal/db"
	"github.com/HardwareHub/HH-Backend/internal/hardware"
	"github.com/HardwareHub/HH-Backend/internal/middleware"
	"github.com/HardwareHub/HH-Backend/internal/professional"
	"github.com/HardwareHub/HH-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, utils.Envelope{
		"success":   true,
		"message":   "Hardware Hub API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func main() {
	config.Load()
	db.Connect()

	auth.Init()
	hardware.Init()
	professional.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/api/health", HealthHandler)
	r.Mount("/api/auth", auth.SetupRoutes())
	r.Mount("/api/hardware", hardware.SetupRoutes())
	r.Mount("/api/professionals", professional.SetupRoutes())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Route not found")
	})

	fmt.Println("Server listening on port :" + config.App.Port + "...")
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.App.Port, r))
}
