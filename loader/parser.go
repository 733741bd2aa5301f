// backend/loader/parser.go
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jszwec/csvutil"
)

// expectedColumns is the static bijective mapping from the dataset's
// human-readable headers to the machine-friendly column keys used in the
// schema. Order here fixes the order of missing-column error messages.
var expectedColumns = []struct {
	Header string
	Key    string
}{
	{"Mission ID", "mission_id"},
	{"Mission Name", "mission_name"},
	{"Launch Date", "launch_date"},
	{"Target Type", "target_type"},
	{"Target Name", "target_name"},
	{"Mission Type", "mission_type"},
	{"Distance from Earth (light-years)", "distance_ly"},
	{"Mission Duration (years)", "duration_years"},
	{"Mission Cost (billion USD)", "cost_billion_usd"},
	{"Scientific Yield (points)", "scientific_yield"},
	{"Crew Size", "crew_size"},
	{"Mission Success (%)", "success_pct"},
	{"Fuel Consumption (tons)", "fuel_consumption_tons"},
	{"Payload Weight (tons)", "payload_weight_tons"},
	{"Launch Vehicle", "launch_vehicle"},
}

// MissingColumnsError reports the expected CSV headers that were absent.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("CSV missing expected columns: %s", strings.Join(e.Columns, ", "))
}

// RawMission is one CSV row before any type coercion. Every field is kept
// as the source string; Normalize does the conversion work.
type RawMission struct {
	MissionID           string `csv:"Mission ID"`
	MissionName         string `csv:"Mission Name"`
	LaunchDate          string `csv:"Launch Date"`
	TargetType          string `csv:"Target Type"`
	TargetName          string `csv:"Target Name"`
	MissionType         string `csv:"Mission Type"`
	DistanceLy          string `csv:"Distance from Earth (light-years)"`
	DurationYears       string `csv:"Mission Duration (years)"`
	CostBillionUSD      string `csv:"Mission Cost (billion USD)"`
	ScientificYield     string `csv:"Scientific Yield (points)"`
	CrewSize            string `csv:"Crew Size"`
	SuccessPct          string `csv:"Mission Success (%)"`
	FuelConsumptionTons string `csv:"Fuel Consumption (tons)"`
	PayloadWeightTons   string `csv:"Payload Weight (tons)"`
	LaunchVehicle       string `csv:"Launch Vehicle"`
}

// ParseMissionsCsv decodes the missions CSV. The header row must contain
// every expected column; otherwise a *MissingColumnsError names exactly
// the absent ones. Extra columns are ignored.
func ParseMissionsCsv(reader io.Reader) ([]RawMission, error) {
	csvReader := csv.NewReader(reader)

	decoder, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for missions: %w", err)
	}

	if err := validateHeader(decoder.Header()); err != nil {
		return nil, err
	}

	var missions []RawMission
	for {
		var rec RawMission
		if err := decoder.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode missions CSV data: %w", err)
		}
		missions = append(missions, rec)
	}

	log.Printf("[loader] Parsed %d mission rows from CSV.", len(missions))
	return missions, nil
}

func validateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, col := range expectedColumns {
		if !present[col.Header] {
			missing = append(missing, col.Header)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
