// backend/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/astrodash/nasa-dashboard/backend/config"
	"github.com/astrodash/nasa-dashboard/backend/database"
	"github.com/astrodash/nasa-dashboard/backend/handlers"
	"github.com/astrodash/nasa-dashboard/backend/services"
)

func main() {
	log.Println("Starting NASA Missions Dashboard backend...")

	configPath := "backend/config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "config/config.yaml"
		if _, errFallback := os.Stat(configPath); os.IsNotExist(errFallback) {
			log.Fatalf("Config file not found at default paths. Error: %v", errFallback)
		}
	}

	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, DB path: %s",
		config.AppConfig.Server.Port, config.AppConfig.Database.Path)

	if err := database.InitDB(config.AppConfig.Database.Path); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer database.CloseDB()

	// Lazily populate the store before serving. A failed build is a
	// warning, not a crash: the query endpoints answer from whatever is
	// already stored.
	if err := services.EnsureDatabase(""); err != nil {
		log.Printf("WARN: could not ensure database is populated: %v", err)
	}

	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := database.DB.Ping(); err != nil {
			http.Error(w, `{"status": "error", "message": "database connection error"}`, http.StatusInternalServerError)
			log.Printf("Health check failed: DB ping error: %v", err)
			return
		}
		fmt.Fprintln(w, `{"status": "ok", "message": "missions dashboard backend is healthy"}`)
	})

	http.HandleFunc("/api/missions", handlers.MissionsHandler)
	http.HandleFunc("/api/missions/summary", handlers.MissionSummaryHandler)
	http.HandleFunc("/api/missions/aggregates", handlers.MissionAggregatesHandler)
	http.HandleFunc("/api/nasa/apod/latest", handlers.LatestApodHandler)
	http.HandleFunc("/api/nasa/neo/hazardous", handlers.HazardousNeoHandler)
	http.HandleFunc("/api/admin/reload", handlers.ReloadMissionsHandler)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
