// backend/loader/reader.go
package loader

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/astrodash/nasa-dashboard/backend/config"
)

// ReadSource resolves and reads the missions CSV, returning the raw bytes
// and the location they actually came from.
//
// Resolution order: the explicit source (path or http(s) URL) if given,
// then the configured local path, then the configured remote URL. An
// explicit local path that does not exist is an error wrapping
// os.ErrNotExist so callers can distinguish "not found" from read failures.
func ReadSource(explicit string) ([]byte, string, error) {
	if explicit != "" {
		if isURL(explicit) {
			log.Printf("[loader] Reading CSV from URL: %s", explicit)
			data, err := fetchCSV(explicit)
			return data, explicit, err
		}
		log.Printf("[loader] Reading local CSV: %s", explicit)
		if _, err := os.Stat(explicit); os.IsNotExist(err) {
			return nil, explicit, fmt.Errorf("CSV file not found at %s: %w", explicit, os.ErrNotExist)
		}
		data, err := os.ReadFile(explicit)
		if err != nil {
			return nil, explicit, fmt.Errorf("failed to read CSV file %s: %w", explicit, err)
		}
		return data, explicit, nil
	}

	localPath := config.AppConfig.CSVSource.LocalPath
	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			log.Printf("[loader] Reading local CSV (default): %s", localPath)
			data, err := os.ReadFile(localPath)
			if err != nil {
				return nil, localPath, fmt.Errorf("failed to read CSV file %s: %w", localPath, err)
			}
			return data, localPath, nil
		}
	}

	remoteURL := config.AppConfig.CSVSource.RemoteURL
	if remoteURL == "" {
		return nil, "", fmt.Errorf("no CSV source available: no explicit source, local default missing, and no remote URL configured")
	}
	log.Printf("[loader] Local CSV not found. Downloading from default URL: %s", remoteURL)
	data, err := fetchCSV(remoteURL)
	return data, remoteURL, err
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func fetchCSV(url string) ([]byte, error) {
	client := http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download CSV from %s: received status code %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV response body from %s: %w", url, err)
	}
	return data, nil
}
