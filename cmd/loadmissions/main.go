// backend/cmd/loadmissions/main.go
//
// Companion command-line form of the loader: ensures the missions
// database is populated without starting the API server.
//
//	loadmissions [--csv <path-or-url>] [--db <path>] [--force]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/astrodash/nasa-dashboard/backend/config"
	"github.com/astrodash/nasa-dashboard/backend/database"
	"github.com/astrodash/nasa-dashboard/backend/services"
)

func main() {
	csvSource := flag.String("csv", "", "Path or URL of the missions CSV (overrides configured sources)")
	dbPath := flag.String("db", "", "Output SQLite DB path (overrides configured path)")
	force := flag.Bool("force", false, "Rebuild even if the database is already populated")
	configPath := flag.String("config", "", "Path to config.yaml")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = "backend/config/config.yaml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = "config/config.yaml"
		}
	}

	if err := config.LoadConfig(path); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	target := config.AppConfig.Database.Path
	if *dbPath != "" {
		target = *dbPath
	}

	if err := database.InitDB(target); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer database.CloseDB()

	var err error
	if *force {
		err = services.ForceReload(*csvSource)
	} else {
		err = services.EnsureDatabase(*csvSource)
	}
	if err != nil {
		log.Fatalf("Load failed: %v", err)
	}

	log.Printf("Done. Database ready at: %s", target)
}
