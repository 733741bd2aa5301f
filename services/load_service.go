// backend/services/load_service.go
package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/astrodash/nasa-dashboard/backend/config"
	"github.com/astrodash/nasa-dashboard/backend/database"
	"github.com/astrodash/nasa-dashboard/backend/loader"
	"github.com/astrodash/nasa-dashboard/backend/nasa"
)

// missionSourceName keys the source_versions bookkeeping row for the
// missions CSV.
const missionSourceName = "space_missions_csv"

// EnsureDatabase guarantees the store is schema-correct and populated.
// When the missions table already holds rows the whole call is a logged
// no-op; nothing is fetched and no schema runs. Otherwise it performs the
// full build: read and normalize the CSV, recreate the missions schema,
// insert the rows, then fetch and store the four NASA datasets.
//
// csvSource may be empty, in which case the configured fallbacks apply.
func EnsureDatabase(csvSource string) error {
	populated, err := database.MissionsPopulated()
	if err != nil {
		log.Printf("WARN Service: could not check database state: %v", err)
	}
	if populated {
		count, _ := database.CountMissions()
		log.Printf("Service: database already populated with %d mission rows. Skipping load.", count)
		return nil
	}

	return rebuild(csvSource, false)
}

// ForceReload skips the idempotence guard and rebuilds the missions table
// unconditionally, logging whether the source dataset changed since the
// last recorded load.
func ForceReload(csvSource string) error {
	return rebuild(csvSource, true)
}

func rebuild(csvSource string, forced bool) error {
	data, location, err := loader.ReadSource(csvSource)
	if err != nil {
		return fmt.Errorf("failed to read missions CSV: %w", err)
	}

	missions, err := loader.LoadMissions(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to normalize missions CSV from %s: %w", location, err)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if forced {
		// Best effort: on a fresh database there is no version table yet.
		prior, err := database.GetSourceVersion(missionSourceName)
		switch {
		case err != nil:
			log.Printf("Service: no prior source version available: %v", err)
		case prior == nil:
			log.Printf("Service: forced reload with no previously recorded source version.")
		case prior.SHA256 == hash:
			log.Printf("Service: forced reload; source %s is unchanged since %s.", location, prior.LoadedAt)
		default:
			log.Printf("Service: forced reload; source %s changed since %s (was sha256 %.12s..., now %.12s...).",
				location, prior.LoadedAt, prior.SHA256, hash)
		}
	}

	if err := database.RecreateSchema(); err != nil {
		return err
	}
	if err := database.InsertMissions(missions); err != nil {
		return err
	}
	if err := database.RecordSourceVersion(missionSourceName, location, hash, len(missions)); err != nil {
		return err
	}

	if err := storeNasaData(); err != nil {
		return err
	}

	count, err := database.CountMissions()
	if err != nil {
		return err
	}
	log.Printf("Service: load complete, %d mission rows stored.", count)
	return nil
}

// storeNasaData runs the four auxiliary fetches. Each one fails
// independently: an error is logged and that dataset contributes nothing,
// the other three still land. Only storage failures abort.
func storeNasaData() error {
	if err := database.CreateNasaTables(); err != nil {
		return err
	}

	client := nasa.NewClient(config.AppConfig.NASA)
	log.Println("[NASA] Fetching NASA API data...")

	apodEntries, err := client.FetchAPOD(config.AppConfig.NASA.APODDays)
	if err != nil {
		log.Printf("[NASA] Error fetching APOD data: %v", err)
		apodEntries = nil
	}

	neoEntries, err := client.FetchNeoFeed(config.AppConfig.NASA.NeoDaysAhead)
	if err != nil {
		log.Printf("[NASA] Failed to fetch NEO data: %v", err)
		neoEntries = nil
	}

	exoplanets, err := client.FetchExoplanets(config.AppConfig.NASA.ExoplanetLimit)
	if err != nil {
		log.Printf("[NASA] Failed to fetch exoplanet data: %v", err)
		exoplanets = nil
	}

	earthEntries, err := client.CheckEarthImagery()
	if err != nil {
		log.Printf("[NASA] Failed to fetch Earth imagery data: %v", err)
		earthEntries = nil
	}

	if err := database.SaveApodEntries(apodEntries); err != nil {
		return err
	}
	if err := database.SaveNeoEntries(neoEntries); err != nil {
		return err
	}
	if err := database.SaveExoplanets(exoplanets); err != nil {
		return err
	}
	if err := database.SaveEarthImagery(earthEntries); err != nil {
		return err
	}

	log.Printf("[NASA] Stored %d APOD, %d NEO, %d exoplanet, %d Earth imagery records.",
		len(apodEntries), len(neoEntries), len(exoplanets), len(earthEntries))
	return nil
}
