// backend/models/nasa.go
package models

// Source tag literals written alongside every auxiliary row.
const (
	SourceAPOD         = "APOD"
	SourceNEO          = "NEO"
	SourceExoplanet    = "Exoplanet Archive"
	SourceEarthImagery = "Earth Imagery"
)

// ApodEntry is one Astronomy Picture of the Day record.
type ApodEntry struct {
	ID          int64  `db:"id" json:"id"`
	Date        string `db:"date" json:"date"`
	Title       string `db:"title" json:"title"`
	Explanation string `db:"explanation" json:"explanation"`
	URL         string `db:"url" json:"url"`
	MediaType   string `db:"media_type" json:"media_type"`
	Source      string `db:"source" json:"source"`
	FetchedAt   string `db:"fetched_at" json:"fetched_at,omitempty"`
}

// NeoEntry is one near-earth object flattened out of the feed's
// date-keyed grouping.
type NeoEntry struct {
	ID          int64    `db:"id" json:"id"`
	Date        string   `db:"date" json:"date"`
	Name        string   `db:"name" json:"name"`
	DiameterKm  *float64 `db:"diameter_km" json:"diameter_km"`
	Hazardous   bool     `db:"hazardous" json:"hazardous"`
	VelocityKms *float64 `db:"velocity_kms" json:"velocity_kms"`
	Source      string   `db:"source" json:"source"`
	FetchedAt   string   `db:"fetched_at" json:"fetched_at,omitempty"`
}

// Exoplanet is one row of the Exoplanet Archive query result.
type Exoplanet struct {
	ID            int64    `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	PlanetCount   *int     `db:"planet_count" json:"planet_count"`
	RadiusEarth   *float64 `db:"radius_earth" json:"radius_earth"`
	MassEarth     *float64 `db:"mass_earth" json:"mass_earth"`
	DistancePc    *float64 `db:"distance_pc" json:"distance_pc"`
	DiscoveryYear *int     `db:"discovery_year" json:"discovery_year"`
	Source        string   `db:"source" json:"source"`
	FetchedAt     string   `db:"fetched_at" json:"fetched_at,omitempty"`
}

// EarthImagery records that imagery is available for one of the probed
// locations, along with the URL that answered the probe.
type EarthImagery struct {
	ID        int64   `db:"id" json:"id"`
	Location  string  `db:"location" json:"location"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	URL       string  `db:"url" json:"url"`
	Source    string  `db:"source" json:"source"`
	FetchedAt string  `db:"fetched_at" json:"fetched_at,omitempty"`
}
