// backend/database/source_version_store.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/astrodash/nasa-dashboard/backend/models"
)

// RecordSourceVersion upserts the bookkeeping row for a loaded data
// source: where it came from, the sha256 of its raw bytes, and how many
// rows it produced. A forced reload consults this to report whether the
// dataset actually changed.
func RecordSourceVersion(sourceName, location, sha256 string, rowCount int) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	_, err := DB.Exec(`
		INSERT INTO source_versions (source_name, location, sha256, row_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (source_name) DO UPDATE SET
			location = excluded.location,
			sha256 = excluded.sha256,
			row_count = excluded.row_count,
			loaded_at = CURRENT_TIMESTAMP
	`, sourceName, location, sha256, rowCount)
	if err != nil {
		return fmt.Errorf("failed to record source version for %s: %w", sourceName, err)
	}

	log.Printf("Database: recorded source version for %s (%d rows, sha256 %.12s...).", sourceName, rowCount, sha256)
	return nil
}

// GetSourceVersion returns the recorded version for a source, or nil when
// none has been recorded yet.
func GetSourceVersion(sourceName string) (*models.SourceVersion, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var v models.SourceVersion
	err := DB.Get(&v, `
		SELECT id, source_name, location, sha256, row_count, loaded_at
		FROM source_versions
		WHERE source_name = ?
	`, sourceName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query source version for %s: %w", sourceName, err)
	}
	return &v, nil
}
