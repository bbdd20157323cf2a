package zones

import (
	"encoding/json"
	"fmt"
	"os"

	"skywatch-service/internal/domain/entity"
)

// DefaultZones returns the built-in airport approach zones used when no
// zone file is configured.
func DefaultZones() []entity.Zone {
	return []entity.Zone{
		{
			Name:        "Frankfurt Approach",
			AirportName: "Frankfurt Airport",
			AirportCode: "FRA",
			CenterLat:   50.0379,
			CenterLon:   8.5622,
			RadiusM:     10000,
		},
		{
			Name:        "Munich Approach",
			AirportName: "Munich Airport",
			AirportCode: "MUC",
			CenterLat:   48.3538,
			CenterLon:   11.7861,
			RadiusM:     10000,
		},
		{
			Name:        "Berlin Approach",
			AirportName: "Berlin Brandenburg Airport",
			AirportCode: "BER",
			CenterLat:   52.3667,
			CenterLon:   13.5033,
			RadiusM:     10000,
		},
		{
			Name:        "Hamburg Approach",
			AirportName: "Hamburg Airport",
			AirportCode: "HAM",
			CenterLat:   53.6304,
			CenterLon:   9.9882,
			RadiusM:     8000,
		},
	}
}

// LoadFromFile reads a zone set from a JSON file
func LoadFromFile(path string) ([]entity.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zone file: %w", err)
	}

	var zones []entity.Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("failed to parse zone file: %w", err)
	}
	return zones, nil
}

// Load returns the zones from path, or the default set when path is empty
func Load(path string) ([]entity.Zone, error) {
	if path == "" {
		return DefaultZones(), nil
	}
	return LoadFromFile(path)
}
