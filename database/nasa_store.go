// backend/database/nasa_store.go
package database

import (
	"fmt"
	"log"

	"github.com/astrodash/nasa-dashboard/backend/models"
)

// Auxiliary NASA tables are additive: created only if absent, never
// dropped by a reload. Rows are keyed by their natural identity (APOD by
// date, NEO by date+name, exoplanets by name, imagery by location) and
// upserted, so repeated loads refresh rather than duplicate.
var nasaTableDDL = []string{
	`CREATE TABLE IF NOT EXISTS apod (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		date        TEXT NOT NULL UNIQUE,
		title       TEXT,
		explanation TEXT,
		url         TEXT,
		media_type  TEXT,
		source      TEXT,
		fetched_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS neo (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		date         TEXT NOT NULL,
		name         TEXT NOT NULL,
		diameter_km  REAL,
		hazardous    BOOLEAN,
		velocity_kms REAL,
		source       TEXT,
		fetched_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (date, name)
	)`,
	`CREATE TABLE IF NOT EXISTS exoplanet (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           TEXT NOT NULL UNIQUE,
		planet_count   INTEGER,
		radius_earth   REAL,
		mass_earth     REAL,
		distance_pc    REAL,
		discovery_year INTEGER,
		source         TEXT,
		fetched_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS earth_imagery (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		location   TEXT NOT NULL UNIQUE,
		latitude   REAL,
		longitude  REAL,
		url        TEXT,
		source     TEXT,
		fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// CreateNasaTables ensures the four auxiliary tables exist. Safe to call
// on every load.
func CreateNasaTables() error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	for _, ddl := range nasaTableDDL {
		if _, err := DB.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create NASA auxiliary table: %w", err)
		}
	}
	return nil
}

// SaveApodEntries upserts APOD rows keyed by date.
func SaveApodEntries(entries []models.ApodEntry) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if len(entries) == 0 {
		log.Println("Database: no APOD entries to save.")
		return nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for APOD entries: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO apod (date, title, explanation, url, media_type, source)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			title = excluded.title,
			explanation = excluded.explanation,
			url = excluded.url,
			media_type = excluded.media_type,
			source = excluded.source,
			fetched_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare APOD upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Date, e.Title, e.Explanation, e.URL, e.MediaType, e.Source); err != nil {
			return fmt.Errorf("failed to upsert APOD entry for %s: %w", e.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit APOD entries: %w", err)
	}
	log.Printf("Database: stored %d APOD entries.", len(entries))
	return nil
}

// SaveNeoEntries upserts near-earth-object rows keyed by date and name.
func SaveNeoEntries(entries []models.NeoEntry) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if len(entries) == 0 {
		log.Println("Database: no NEO entries to save.")
		return nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for NEO entries: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO neo (date, name, diameter_km, hazardous, velocity_kms, source)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (date, name) DO UPDATE SET
			diameter_km = excluded.diameter_km,
			hazardous = excluded.hazardous,
			velocity_kms = excluded.velocity_kms,
			source = excluded.source,
			fetched_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare NEO upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Date, e.Name, e.DiameterKm, e.Hazardous, e.VelocityKms, e.Source); err != nil {
			return fmt.Errorf("failed to upsert NEO entry %q on %s: %w", e.Name, e.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit NEO entries: %w", err)
	}
	log.Printf("Database: stored %d NEO entries.", len(entries))
	return nil
}

// SaveExoplanets upserts exoplanet rows keyed by planet name.
func SaveExoplanets(planets []models.Exoplanet) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if len(planets) == 0 {
		log.Println("Database: no exoplanet entries to save.")
		return nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for exoplanet entries: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO exoplanet (name, planet_count, radius_earth, mass_earth, distance_pc, discovery_year, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			planet_count = excluded.planet_count,
			radius_earth = excluded.radius_earth,
			mass_earth = excluded.mass_earth,
			distance_pc = excluded.distance_pc,
			discovery_year = excluded.discovery_year,
			source = excluded.source,
			fetched_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare exoplanet upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range planets {
		if _, err := stmt.Exec(p.Name, p.PlanetCount, p.RadiusEarth, p.MassEarth, p.DistancePc, p.DiscoveryYear, p.Source); err != nil {
			return fmt.Errorf("failed to upsert exoplanet %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit exoplanet entries: %w", err)
	}
	log.Printf("Database: stored %d exoplanet entries.", len(planets))
	return nil
}

// SaveEarthImagery upserts imagery-availability rows keyed by location.
func SaveEarthImagery(entries []models.EarthImagery) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if len(entries) == 0 {
		log.Println("Database: no Earth imagery entries to save.")
		return nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for Earth imagery entries: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`
		INSERT INTO earth_imagery (location, latitude, longitude, url, source)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (location) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			url = excluded.url,
			source = excluded.source,
			fetched_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare Earth imagery upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Location, e.Latitude, e.Longitude, e.URL, e.Source); err != nil {
			return fmt.Errorf("failed to upsert Earth imagery for %q: %w", e.Location, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit Earth imagery entries: %w", err)
	}
	log.Printf("Database: stored %d Earth imagery entries.", len(entries))
	return nil
}

// CountRows returns the row count of one of the auxiliary tables.
func CountRows(table string) (int, error) {
	if DB == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}
	switch table {
	case "apod", "neo", "exoplanet", "earth_imagery":
	default:
		return 0, fmt.Errorf("unknown auxiliary table: %s", table)
	}
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
