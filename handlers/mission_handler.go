// backend/handlers/mission_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/astrodash/nasa-dashboard/backend/database"
	"github.com/astrodash/nasa-dashboard/backend/models"
)

// MissionsHandler serves the filtered mission listing.
// GET /api/missions?mission_type=...&target_type=...&vehicle=...&year_min=...&year_max=...
// The list parameters repeat for multiple selections.
func MissionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	missions, err := database.GetMissions(filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to query missions: %v", err))
		return
	}
	if missions == nil {
		missions = []models.Mission{}
	}

	respondWithJSON(w, http.StatusOK, missions)
}

// MissionSummaryHandler serves the KPI values.
// GET /api/missions/summary
func MissionSummaryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	summary, err := database.GetMissionSummary()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to compute mission summary: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

// MissionAggregatesHandler serves the chart datasets.
// GET /api/missions/aggregates?top=5
func MissionAggregatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	topN := 5
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid 'top' parameter: must be a positive integer")
			return
		}
		topN = n
	}

	agg, err := database.GetMissionAggregates(topN)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to compute mission aggregates: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, agg)
}

func filterFromQuery(r *http.Request) (models.MissionFilter, error) {
	q := r.URL.Query()

	filter := models.MissionFilter{
		MissionTypes:   q["mission_type"],
		TargetTypes:    q["target_type"],
		LaunchVehicles: q["vehicle"],
	}

	if raw := q.Get("year_min"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid 'year_min' parameter: %s", raw)
		}
		filter.YearMin = &year
	}
	if raw := q.Get("year_max"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid 'year_max' parameter: %s", raw)
		}
		filter.YearMax = &year
	}

	return filter, nil
}
