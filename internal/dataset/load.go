package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/archiviz/universe/internal/logger"
)

// rawRecord mirrors the JSON emitted by the embedding script. Coordinates are
// decoded as float64 so non-finite values can be detected before narrowing.
type rawRecord struct {
	ID             int     `json:"id"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Z              float64 `json:"z"`
	Type           string  `json:"type"`
	Filename       string  `json:"filename"`
	Description    string  `json:"description"`
	Path           string  `json:"path"`
	IsArchitecture bool    `json:"is_architecture"`
}

// Load reads the coordinate dataset from a local path or http(s) URL and
// returns the parsed records. Remote fetches are cache-busted so a stale
// deploy is never served. Errors are returned for the caller to log; the
// viewer continues with an empty dataset.
func Load(source string) ([]Record, error) {
	data, err := fetch(source)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadStats reads the statistics summary. A missing or broken artifact is an
// error the caller downgrades to "no badges".
func LoadStats(source string) (*Stats, error) {
	data, err := fetch(source)
	if err != nil {
		return nil, err
	}
	var stats Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parsing statistics: %w", err)
	}
	return &stats, nil
}

// Parse decodes and sanitizes the coordinate dataset.
func Parse(data []byte) ([]Record, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	records := make([]Record, 0, len(raw))
	seen := make(map[int]bool, len(raw))
	for _, r := range raw {
		// The pipeline has been observed to emit duplicate entries; first
		// occurrence wins so IDs stay unique.
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true

		cat := ParseCategory(r.Type)
		if cat == CategoryOther && r.Type != string(CategoryOther) && r.Type != "" {
			logger.Debug("unknown category, using fallback",
				zap.Int("id", r.ID),
				zap.String("type", r.Type),
			)
		}

		records = append(records, Record{
			ID:             r.ID,
			X:              finite(r.X),
			Y:              finite(r.Y),
			Z:              finite(r.Z),
			Type:           cat,
			Filename:       r.Filename,
			Description:    r.Description,
			Path:           r.Path,
			IsArchitecture: r.IsArchitecture,
		})
	}

	return records, nil
}

// finite narrows a coordinate to float32, clamping NaN and infinities to 0.
func finite(v float64) float32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return float32(v)
}

func fetch(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchHTTP(source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}

func fetchHTTP(rawURL string) ([]byte, error) {
	busted, err := CacheBust(rawURL, time.Now())
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(busted)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %s", rawURL, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// CacheBust appends a timestamp query parameter so intermediate caches never
// serve a dataset from a previous deploy.
func CacheBust(rawURL string, now time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing url %s: %w", rawURL, err)
	}
	q := u.Query()
	q.Set("t", fmt.Sprintf("%d", now.UnixNano()))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
