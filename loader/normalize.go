// backend/loader/normalize.go
package loader

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/astrodash/nasa-dashboard/backend/models"
)

// syntheticIDPrefix is combined with the 1-based row position, zero-padded
// to 4 digits, whenever a source row has no identifier of its own.
const syntheticIDPrefix = "MSN-"

// dateLayouts are tried in order when parsing the launch date. The first
// one is also the canonical output format.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Normalize turns raw CSV rows into fully typed mission records. Dates and
// numbers that fail to parse become nil, never an error. Empty mission ids
// are replaced with a synthesized token; a real identifier equal to a token
// synthesized in the same load aborts with an error rather than silently
// producing a duplicate.
func Normalize(raws []RawMission) ([]models.Mission, error) {
	realIDs := make(map[string]bool, len(raws))
	for _, raw := range raws {
		if id := strings.TrimSpace(raw.MissionID); id != "" {
			realIDs[id] = true
		}
	}

	missions := make([]models.Mission, 0, len(raws))
	for i, raw := range raws {
		m := models.Mission{
			MissionName:         cleanText(raw.MissionName),
			TargetType:          cleanText(raw.TargetType),
			TargetName:          cleanText(raw.TargetName),
			MissionType:         cleanText(raw.MissionType),
			LaunchVehicle:       cleanText(raw.LaunchVehicle),
			DistanceLy:          coerceFloat(raw.DistanceLy),
			DurationYears:       coerceFloat(raw.DurationYears),
			CostBillionUSD:      coerceFloat(raw.CostBillionUSD),
			ScientificYield:     coerceFloat(raw.ScientificYield),
			CrewSize:            coerceFloat(raw.CrewSize),
			SuccessPct:          coerceFloat(raw.SuccessPct),
			FuelConsumptionTons: coerceFloat(raw.FuelConsumptionTons),
			PayloadWeightTons:   coerceFloat(raw.PayloadWeightTons),
		}

		m.LaunchDate, m.LaunchYear = coerceDate(raw.LaunchDate)

		id := strings.TrimSpace(raw.MissionID)
		if id == "" {
			id = fmt.Sprintf("%s%04d", syntheticIDPrefix, i+1)
			if realIDs[id] {
				return nil, fmt.Errorf("synthesized mission id %q for row %d collides with an identifier already present in the dataset", id, i+1)
			}
		}
		m.MissionID = id

		missions = append(missions, m)
	}

	return missions, nil
}

// LoadMissions parses and normalizes the missions CSV in one step.
func LoadMissions(reader io.Reader) ([]models.Mission, error) {
	raws, err := ParseMissionsCsv(reader)
	if err != nil {
		return nil, err
	}
	missions, err := Normalize(raws)
	if err != nil {
		return nil, err
	}
	log.Printf("[loader] Normalized %d mission rows.", len(missions))
	return missions, nil
}

func cleanText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func coerceFloat(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &f
}

func coerceDate(s string) (*string, *int) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		canonical := t.Format(dateLayouts[0])
		year := t.Year()
		return &canonical, &year
	}
	return nil, nil
}
