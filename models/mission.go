// backend/models/mission.go
package models

// Mission represents one normalized row of the space missions dataset.
// Pointer fields are nullable: values that fail coercion during load are
// stored as NULL rather than aborting the pipeline.
type Mission struct {
	MissionID   string  `db:"mission_id" json:"mission_id"`
	MissionName *string `db:"mission_name" json:"mission_name"`
	LaunchDate  *string `db:"launch_date" json:"launch_date"` // canonical YYYY-MM-DD
	LaunchYear  *int    `db:"launch_year" json:"launch_year"`
	MissionType *string `db:"mission_type" json:"mission_type"`
	TargetType  *string `db:"target_type" json:"target_type"`
	TargetName  *string `db:"target_name" json:"target_name"`

	LaunchVehicle       *string  `db:"launch_vehicle" json:"launch_vehicle"`
	DistanceLy          *float64 `db:"distance_ly" json:"distance_ly"`
	DurationYears       *float64 `db:"duration_years" json:"duration_years"`
	CostBillionUSD      *float64 `db:"cost_billion_usd" json:"cost_billion_usd"`
	ScientificYield     *float64 `db:"scientific_yield" json:"scientific_yield"`
	CrewSize            *float64 `db:"crew_size" json:"crew_size"`
	SuccessPct          *float64 `db:"success_pct" json:"success_pct"`
	FuelConsumptionTons *float64 `db:"fuel_consumption_tons" json:"fuel_consumption_tons"`
	PayloadWeightTons   *float64 `db:"payload_weight_tons" json:"payload_weight_tons"`
}

// SourceVersion records what was last loaded into the missions table so a
// forced reload can tell whether the underlying dataset actually changed.
type SourceVersion struct {
	ID         int64  `db:"id" json:"id"`
	SourceName string `db:"source_name" json:"source_name"`
	Location   string `db:"location" json:"location"`
	SHA256     string `db:"sha256" json:"sha256"`
	RowCount   int    `db:"row_count" json:"row_count"`
	LoadedAt   string `db:"loaded_at" json:"loaded_at"`
}
