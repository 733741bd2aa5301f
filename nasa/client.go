// backend/nasa/client.go
package nasa

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/astrodash/nasa-dashboard/backend/config"
	"github.com/astrodash/nasa-dashboard/backend/models"
	"github.com/astrodash/nasa-dashboard/backend/utils"
)

// explanationLimit caps the stored APOD description length, in characters.
const explanationLimit = 500

// earthLocations are the fixed coordinates probed for imagery availability.
var earthLocations = []struct {
	Name string
	Lon  float64
	Lat  float64
}{
	{"New York City", -74.0060, 40.7128},
	{"Tokyo", 139.6917, 35.6895},
	{"London", -0.1278, 51.5074},
	{"Sydney", 151.2093, -33.8688},
}

// Client talks to the NASA public APIs. Every call shares one API key and
// one short timeout; there is no retry, a failed call is reported as an
// error and the caller decides how much of the pipeline survives.
type Client struct {
	apiKey          string
	apodURL         string
	neoFeedURL      string
	exoplanetURL    string
	earthImageryURL string
	httpClient      *http.Client
}

// NewClient builds a Client from the NASA section of the configuration.
func NewClient(cfg config.NASAConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:          cfg.APIKey,
		apodURL:         cfg.APODURL,
		neoFeedURL:      cfg.NeoFeedURL,
		exoplanetURL:    cfg.ExoplanetURL,
		earthImageryURL: cfg.EarthImageryURL,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

type apodResponse struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	MediaType   string `json:"media_type"`
}

// FetchAPOD fetches the Astronomy Picture of the Day for the trailing
// window of days, today included. A day that answers non-200 is skipped;
// a transport failure aborts the whole fetch.
func (c *Client) FetchAPOD(days int) ([]models.ApodEntry, error) {
	var entries []models.ApodEntry

	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")

		params := url.Values{}
		params.Set("api_key", c.apiKey)
		params.Set("date", date)

		resp, err := c.httpClient.Get(c.apodURL + "?" + params.Encode())
		if err != nil {
			return nil, fmt.Errorf("APOD request for %s failed: %w", date, err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Printf("[NASA] APOD for %s answered status %d, skipping.", date, resp.StatusCode)
			continue
		}

		var data apodResponse
		err = json.NewDecoder(resp.Body).Decode(&data)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode APOD response for %s: %w", date, err)
		}

		entries = append(entries, models.ApodEntry{
			Date:        data.Date,
			Title:       data.Title,
			Explanation: utils.Truncate(data.Explanation, explanationLimit),
			URL:         data.URL,
			MediaType:   data.MediaType,
			Source:      models.SourceAPOD,
		})
		log.Printf("[NASA] APOD fetched for %s: %s", date, data.Title)
	}

	return entries, nil
}

type neoFeedResponse struct {
	NearEarthObjects map[string][]neoObject `json:"near_earth_objects"`
}

type neoObject struct {
	Name              string `json:"name"`
	EstimatedDiameter struct {
		Kilometers struct {
			EstimatedDiameterMax *float64 `json:"estimated_diameter_max"`
		} `json:"kilometers"`
	} `json:"estimated_diameter"`
	IsPotentiallyHazardousAsteroid bool `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData              []struct {
		RelativeVelocity struct {
			KilometersPerSecond string `json:"kilometers_per_second"`
		} `json:"relative_velocity"`
	} `json:"close_approach_data"`
}

// FetchNeoFeed fetches near-earth objects for the forward-looking window
// and flattens the feed's date-keyed grouping into one entry per object.
func (c *Client) FetchNeoFeed(daysAhead int) ([]models.NeoEntry, error) {
	startDate := time.Now().Format("2006-01-02")
	endDate := time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	params.Set("detailed", "false")

	resp, err := c.httpClient.Get(c.neoFeedURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("NEO feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NEO feed answered status %d", resp.StatusCode)
	}

	var data neoFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode NEO feed response: %w", err)
	}

	dates := make([]string, 0, len(data.NearEarthObjects))
	for date := range data.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var entries []models.NeoEntry
	for _, date := range dates {
		for _, obj := range data.NearEarthObjects[date] {
			entry := models.NeoEntry{
				Date:       date,
				Name:       obj.Name,
				DiameterKm: obj.EstimatedDiameter.Kilometers.EstimatedDiameterMax,
				Hazardous:  obj.IsPotentiallyHazardousAsteroid,
				Source:     models.SourceNEO,
			}
			if len(obj.CloseApproachData) > 0 {
				// The feed reports velocity as a decimal string.
				if v, err := strconv.ParseFloat(obj.CloseApproachData[0].RelativeVelocity.KilometersPerSecond, 64); err == nil {
					entry.VelocityKms = &v
				}
			}
			entries = append(entries, entry)
		}
	}

	log.Printf("[NASA] NEO data fetched: %d objects found", len(entries))
	return entries, nil
}

type exoplanetRow struct {
	PlName   *string  `json:"pl_name"`
	SyPnum   *int     `json:"sy_pnum"`
	PlRade   *float64 `json:"pl_rade"`
	PlBmasse *float64 `json:"pl_bmasse"`
	SyDist   *float64 `json:"sy_dist"`
	DiscYear *int     `json:"disc_year"`
}

// FetchExoplanets queries the Exoplanet Archive TAP endpoint for the most
// recently discovered planets, capped at limit rows.
func (c *Client) FetchExoplanets(limit int) ([]models.Exoplanet, error) {
	query := fmt.Sprintf(
		"SELECT pl_name, sy_pnum, pl_rade, pl_bmasse, sy_dist, disc_year FROM ps WHERE pl_name IS NOT NULL ORDER BY disc_year DESC LIMIT %d",
		limit,
	)

	params := url.Values{}
	params.Set("query", query)
	params.Set("format", "json")

	resp, err := c.httpClient.Get(c.exoplanetURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("exoplanet query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exoplanet query answered status %d", resp.StatusCode)
	}

	var rows []exoplanetRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode exoplanet response: %w", err)
	}

	var planets []models.Exoplanet
	for _, row := range rows {
		if row.PlName == nil {
			continue
		}
		planets = append(planets, models.Exoplanet{
			Name:          *row.PlName,
			PlanetCount:   row.SyPnum,
			RadiusEarth:   row.PlRade,
			MassEarth:     row.PlBmasse,
			DistancePc:    row.SyDist,
			DiscoveryYear: row.DiscYear,
			Source:        models.SourceExoplanet,
		})
	}

	log.Printf("[NASA] Exoplanet data fetched: %d planets found", len(planets))
	return planets, nil
}

// CheckEarthImagery probes imagery availability for the fixed location
// list with header-only requests. A 200 answer records the probed URL; any
// other status just means no imagery for that location.
func (c *Client) CheckEarthImagery() ([]models.EarthImagery, error) {
	var entries []models.EarthImagery

	for _, loc := range earthLocations {
		params := url.Values{}
		params.Set("lon", strconv.FormatFloat(loc.Lon, 'f', 4, 64))
		params.Set("lat", strconv.FormatFloat(loc.Lat, 'f', 4, 64))
		params.Set("dim", "0.15")
		params.Set("api_key", c.apiKey)

		probeURL := c.earthImageryURL + "?" + params.Encode()
		resp, err := c.httpClient.Head(probeURL)
		if err != nil {
			return nil, fmt.Errorf("earth imagery probe for %s failed: %w", loc.Name, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			continue
		}

		entries = append(entries, models.EarthImagery{
			Location:  loc.Name,
			Latitude:  loc.Lat,
			Longitude: loc.Lon,
			URL:       probeURL,
			Source:    models.SourceEarthImagery,
		})
		log.Printf("[NASA] Earth imagery available for %s", loc.Name)
	}

	return entries, nil
}
