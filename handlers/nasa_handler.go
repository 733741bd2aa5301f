// backend/handlers/nasa_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/astrodash/nasa-dashboard/backend/database"
	"github.com/astrodash/nasa-dashboard/backend/models"
)

// LatestApodHandler serves the most recently stored Astronomy Picture of
// the Day entry.
// GET /api/nasa/apod/latest
func LatestApodHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	entry, err := database.GetLatestApod()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to query APOD entry: %v", err))
		return
	}
	if entry == nil {
		respondWithError(w, http.StatusNotFound, "No APOD entries stored yet")
		return
	}

	respondWithJSON(w, http.StatusOK, entry)
}

// HazardousNeoHandler lists the stored potentially hazardous near-earth
// objects.
// GET /api/nasa/neo/hazardous
func HazardousNeoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	entries, err := database.GetHazardousNeos()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to query hazardous NEO entries: %v", err))
		return
	}
	if entries == nil {
		entries = []models.NeoEntry{}
	}

	respondWithJSON(w, http.StatusOK, entries)
}
