// backend/handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/astrodash/nasa-dashboard/backend/services"
)

// ReloadMissionsHandler forces a full rebuild of the missions table,
// bypassing the populated-database guard. The optional csv query parameter
// overrides the configured dataset location for this one reload.
// POST /api/admin/reload[?csv=<path-or-url>]
func ReloadMissionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	csvSource := r.URL.Query().Get("csv")

	if err := services.ForceReload(csvSource); err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to reload mission data: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Mission data reloaded successfully."})
}
