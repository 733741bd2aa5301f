// backend/database/dashboard_store.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/astrodash/nasa-dashboard/backend/models"
)

const missionColumns = `
	mission_id, mission_name, launch_date, launch_year,
	mission_type, target_type, target_name, launch_vehicle,
	distance_ly, duration_years, cost_billion_usd, scientific_yield,
	crew_size, success_pct, fuel_consumption_tons, payload_weight_tons`

// GetMissions returns mission rows matching the dashboard filter.
func GetMissions(filter models.MissionFilter) ([]models.Mission, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var clauses []string
	var args []interface{}

	if len(filter.MissionTypes) > 0 {
		clauses = append(clauses, "mission_type IN (?)")
		args = append(args, filter.MissionTypes)
	}
	if len(filter.TargetTypes) > 0 {
		clauses = append(clauses, "target_type IN (?)")
		args = append(args, filter.TargetTypes)
	}
	if len(filter.LaunchVehicles) > 0 {
		clauses = append(clauses, "launch_vehicle IN (?)")
		args = append(args, filter.LaunchVehicles)
	}
	if filter.YearMin != nil {
		clauses = append(clauses, "launch_year >= ?")
		args = append(args, *filter.YearMin)
	}
	if filter.YearMax != nil {
		clauses = append(clauses, "launch_year <= ?")
		args = append(args, *filter.YearMax)
	}

	query := "SELECT" + missionColumns + " FROM missions"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY launch_date"

	query, expanded, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build mission filter query: %w", err)
	}

	var missions []models.Mission
	if err := DB.Select(&missions, DB.Rebind(query), expanded...); err != nil {
		return nil, fmt.Errorf("failed to query missions: %w", err)
	}
	return missions, nil
}

// GetMissionSummary computes the dashboard KPI values.
func GetMissionSummary() (*models.MissionSummary, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var summary models.MissionSummary
	err := DB.QueryRow(`
		SELECT COUNT(*), AVG(cost_billion_usd), AVG(success_pct),
		       MIN(launch_year), MAX(launch_year)
		FROM missions
	`).Scan(
		&summary.TotalMissions,
		&summary.AvgCostBillionUSD,
		&summary.AvgSuccessPct,
		&summary.EarliestLaunchYear,
		&summary.LatestLaunchYear,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mission summary: %w", err)
	}

	var vehicle string
	err = DB.Get(&vehicle, `
		SELECT launch_vehicle FROM missions
		WHERE launch_vehicle IS NOT NULL
		GROUP BY launch_vehicle
		ORDER BY COUNT(*) DESC, launch_vehicle
		LIMIT 1
	`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to find most common launch vehicle: %w", err)
	}
	summary.MostCommonVehicle = vehicle

	return &summary, nil
}

// GetMissionAggregates bundles the chart datasets in one call.
func GetMissionAggregates(topN int) (*models.MissionAggregates, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	if topN <= 0 {
		topN = 5
	}

	agg := &models.MissionAggregates{}

	err := DB.Select(&agg.ByTargetType, `
		SELECT target_type AS label, COUNT(*) AS count
		FROM missions
		WHERE target_type IS NOT NULL
		GROUP BY target_type
		ORDER BY count DESC, label
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate missions by target type: %w", err)
	}

	err = DB.Select(&agg.SuccessByType, `
		SELECT mission_type, AVG(success_pct) AS avg_success_pct
		FROM missions
		WHERE mission_type IS NOT NULL
		GROUP BY mission_type
		ORDER BY mission_type
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate success rate by mission type: %w", err)
	}

	err = DB.Select(&agg.ByLaunchYear, `
		SELECT CAST(launch_year AS TEXT) AS label, COUNT(*) AS count
		FROM missions
		WHERE launch_year IS NOT NULL
		GROUP BY launch_year
		ORDER BY launch_year
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate missions by launch year: %w", err)
	}

	err = DB.Select(&agg.TopExpensive, `
		SELECT`+missionColumns+`
		FROM missions
		WHERE cost_billion_usd IS NOT NULL
		ORDER BY cost_billion_usd DESC
		LIMIT ?
	`, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to query most expensive missions: %w", err)
	}

	return agg, nil
}

// GetLatestApod returns the most recent APOD entry, or nil when the table
// is empty.
func GetLatestApod() (*models.ApodEntry, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var entry models.ApodEntry
	err := DB.Get(&entry, `
		SELECT id, date, title, explanation, url, media_type, source, fetched_at
		FROM apod
		ORDER BY date DESC
		LIMIT 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest APOD entry: %w", err)
	}
	return &entry, nil
}

// GetHazardousNeos lists the stored near-earth objects flagged as
// potentially hazardous, soonest approach first.
func GetHazardousNeos() ([]models.NeoEntry, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var entries []models.NeoEntry
	err := DB.Select(&entries, `
		SELECT id, date, name, diameter_km, hazardous, velocity_kms, source, fetched_at
		FROM neo
		WHERE hazardous = 1
		ORDER BY date, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hazardous NEO entries: %w", err)
	}
	return entries, nil
}
