// backend/database/mission_store.go
package database

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/astrodash/nasa-dashboard/backend/models"
)

//go:embed schema.sql
var schemaSQL string

// MissionsPopulated reports whether the missions table exists and holds at
// least one row. This is the coarse idempotence guard for the load
// pipeline: it deliberately does not look at the source file.
func MissionsPopulated() (bool, error) {
	if DB == nil {
		return false, fmt.Errorf("database connection is not initialized")
	}

	var name string
	err := DB.Get(&name, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'missions'")
	if err != nil {
		// No table yet; a fresh file lands here.
		return false, nil
	}

	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM missions"); err != nil {
		return false, fmt.Errorf("failed to count mission rows: %w", err)
	}
	return count > 0, nil
}

// RecreateSchema runs the embedded schema script, destroying any existing
// mission rows. Callers are expected to have decided deliberately that a
// rebuild should happen; the destructive step is always logged.
func RecreateSchema() error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	log.Println("Database: recreating missions schema (existing mission rows are discarded).")
	if _, err := DB.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute missions schema: %w", err)
	}
	return nil
}

// InsertMissions appends the normalized mission records in one transaction.
// Any failure rolls the whole batch back; there is no partial commit.
func InsertMissions(missions []models.Mission) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if len(missions) == 0 {
		log.Println("Database: no mission rows provided to insert.")
		return nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for missions: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(`
		INSERT INTO missions (
			mission_id, mission_name, launch_date, launch_year,
			mission_type, target_type, target_name, launch_vehicle,
			distance_ly, duration_years, cost_billion_usd, scientific_yield,
			crew_size, success_pct, fuel_consumption_tons, payload_weight_tons
		) VALUES (
			:mission_id, :mission_name, :launch_date, :launch_year,
			:mission_type, :target_type, :target_name, :launch_vehicle,
			:distance_ly, :duration_years, :cost_billion_usd, :scientific_yield,
			:crew_size, :success_pct, :fuel_consumption_tons, :payload_weight_tons
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare mission insert statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range missions {
		if _, err := stmt.Exec(m); err != nil {
			return fmt.Errorf("failed to insert mission %q: %w", m.MissionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mission insert: %w", err)
	}

	log.Printf("Database: inserted %d mission rows.", len(missions))
	return nil
}

// CountMissions returns the number of rows in the missions table.
func CountMissions() (int, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM missions"); err != nil {
		return 0, fmt.Errorf("failed to count mission rows: %w", err)
	}
	return count, nil
}
