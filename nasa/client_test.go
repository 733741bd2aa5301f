package nasa

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodash/nasa-dashboard/backend/config"
	"github.com/astrodash/nasa-dashboard/backend/models"
)

func testClient(apod, neo, exoplanet, earth string) *Client {
	return NewClient(config.NASAConfig{
		APIKey:          "test-key",
		APODURL:         apod,
		NeoFeedURL:      neo,
		ExoplanetURL:    exoplanet,
		EarthImageryURL: earth,
		RequestTimeout:  5 * time.Second,
	})
}

func TestFetchAPOD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		date := r.URL.Query().Get("date")
		fmt.Fprintf(w, `{"date":%q,"title":"Title for %s","explanation":%q,"url":"https://apod.example/img.jpg","media_type":"image"}`,
			date, date, strings.Repeat("x", 600))
	}))
	defer server.Close()

	client := testClient(server.URL, "", "", "")
	entries, err := client.FetchAPOD(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, entries[0].Date)
	assert.Equal(t, models.SourceAPOD, entries[0].Source)
	assert.Equal(t, "image", entries[0].MediaType)
	assert.Len(t, entries[0].Explanation, 500, "explanation must be truncated to 500 characters")
}

func TestFetchAPODSkipsNon200Days(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server.URL, "", "", "")
	entries, err := client.FetchAPOD(2)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchNeoFeedFlattensDateGroups(t *testing.T) {
	body := `{
		"near_earth_objects": {
			"2026-09-02": [
				{
					"name": "(2026 QX1)",
					"estimated_diameter": {"kilometers": {"estimated_diameter_max": 0.42}},
					"is_potentially_hazardous_asteroid": true,
					"close_approach_data": [{"relative_velocity": {"kilometers_per_second": "12.75"}}]
				}
			],
			"2026-09-01": [
				{
					"name": "433 Eros",
					"estimated_diameter": {"kilometers": {"estimated_diameter_max": 16.84}},
					"is_potentially_hazardous_asteroid": false,
					"close_approach_data": []
				}
			]
		}
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "false", r.URL.Query().Get("detailed"))
		require.NotEmpty(t, r.URL.Query().Get("start_date"))
		require.NotEmpty(t, r.URL.Query().Get("end_date"))
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	client := testClient("", server.URL, "", "")
	entries, err := client.FetchNeoFeed(7)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Dates are emitted in sorted order.
	assert.Equal(t, "2026-09-01", entries[0].Date)
	assert.Equal(t, "433 Eros", entries[0].Name)
	assert.False(t, entries[0].Hazardous)
	assert.Nil(t, entries[0].VelocityKms, "no close approach data means no velocity")

	assert.Equal(t, "(2026 QX1)", entries[1].Name)
	assert.True(t, entries[1].Hazardous)
	require.NotNil(t, entries[1].DiameterKm)
	assert.Equal(t, 0.42, *entries[1].DiameterKm)
	require.NotNil(t, entries[1].VelocityKms)
	assert.Equal(t, 12.75, *entries[1].VelocityKms)
}

func TestFetchNeoFeedErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient("", server.URL, "", "")
	_, err := client.FetchNeoFeed(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchExoplanets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "json", r.URL.Query().Get("format"))
		query := r.URL.Query().Get("query")
		require.Contains(t, query, "ORDER BY disc_year DESC")
		require.Contains(t, query, "LIMIT 50")
		fmt.Fprint(w, `[
			{"pl_name":"Kepler-22 b","sy_pnum":1,"pl_rade":2.38,"pl_bmasse":9.1,"sy_dist":190.0,"disc_year":2011},
			{"pl_name":null,"sy_pnum":2,"pl_rade":null,"pl_bmasse":null,"sy_dist":null,"disc_year":2020},
			{"pl_name":"TRAPPIST-1 e","sy_pnum":7,"pl_rade":0.92,"pl_bmasse":0.69,"sy_dist":12.43,"disc_year":2017}
		]`)
	}))
	defer server.Close()

	client := testClient("", "", server.URL, "")
	planets, err := client.FetchExoplanets(50)
	require.NoError(t, err)
	require.Len(t, planets, 2, "rows with a null name are dropped")

	assert.Equal(t, "Kepler-22 b", planets[0].Name)
	require.NotNil(t, planets[0].PlanetCount)
	assert.Equal(t, 1, *planets[0].PlanetCount)
	require.NotNil(t, planets[0].DiscoveryYear)
	assert.Equal(t, 2011, *planets[0].DiscoveryYear)
	assert.Equal(t, models.SourceExoplanet, planets[0].Source)
}

func TestFetchExoplanetsMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"a list"}`)
	}))
	defer server.Close()

	client := testClient("", "", server.URL, "")
	_, err := client.FetchExoplanets(50)
	require.Error(t, err)
}

func TestCheckEarthImagery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodHead, r.Method)
		require.Equal(t, "0.15", r.URL.Query().Get("dim"))
		// Pretend Tokyo has no imagery.
		if r.URL.Query().Get("lat") == "35.6895" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient("", "", "", server.URL)
	entries, err := client.CheckEarthImagery()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Location)
		assert.Contains(t, e.URL, server.URL)
		assert.Equal(t, models.SourceEarthImagery, e.Source)
	}
	assert.Equal(t, []string{"New York City", "London", "Sydney"}, names)
}
