// backend/models/api_models.go
package models

// MissionFilter narrows the mission listing the way the dashboard's
// sidebar filters do. Empty slices and nil bounds mean "no restriction".
type MissionFilter struct {
	MissionTypes   []string
	TargetTypes    []string
	LaunchVehicles []string
	YearMin        *int
	YearMax        *int
}

// MissionSummary carries the dashboard KPI values.
type MissionSummary struct {
	TotalMissions      int      `json:"total_missions"`
	AvgCostBillionUSD  *float64 `json:"avg_cost_billion_usd"`
	AvgSuccessPct      *float64 `json:"avg_success_pct"`
	MostCommonVehicle  string   `json:"most_common_vehicle"`
	EarliestLaunchYear *int     `json:"earliest_launch_year"`
	LatestLaunchYear   *int     `json:"latest_launch_year"`
}

// CountByLabel is a generic label/count pair used by the chart endpoints
// (missions per target type, missions per launch year, ...).
type CountByLabel struct {
	Label string `db:"label" json:"label"`
	Count int    `db:"count" json:"count"`
}

// SuccessByType is the average success percentage per mission type.
type SuccessByType struct {
	MissionType   string   `db:"mission_type" json:"mission_type"`
	AvgSuccessPct *float64 `db:"avg_success_pct" json:"avg_success_pct"`
}

// MissionAggregates bundles everything the chart panels need in one response.
type MissionAggregates struct {
	ByTargetType  []CountByLabel  `json:"by_target_type"`
	SuccessByType []SuccessByType `json:"success_by_mission_type"`
	ByLaunchYear  []CountByLabel  `json:"by_launch_year"`
	TopExpensive  []Mission       `json:"top_expensive"`
}
