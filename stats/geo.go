package stats

import (
	"cmp"
	"maps"
	"slices"
)

// RecognizedCountries is the number of countries coverage is measured against.
const RecognizedCountries = 195

// Coordinates is a point on the map.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Marker is one country pin on the world map.
type Marker struct {
	Country string      `json:"country"`
	Count   int         `json:"count"`
	Coords  Coordinates `json:"coordinates"`
}

// CoverageSummary reports how many distinct countries a collection spans.
type CoverageSummary struct {
	Countries int     `json:"countries"`
	Share     float64 `json:"share"` // percent of RecognizedCountries
}

// Coverage summarizes the country table.
func Coverage(byCountry FrequencyTable) CoverageSummary {
	n := 0
	for _, count := range byCountry {
		if count > 0 {
			n++
		}
	}
	return CoverageSummary{
		Countries: n,
		Share:     float64(n) / RecognizedCountries * 100,
	}
}

// Countries returns every country with known coordinates, sorted by name.
func Countries() []string {
	return slices.Sorted(maps.Keys(capitals))
}

// LookupCoordinates returns the capital coordinates of a country by its English name.
func LookupCoordinates(country string) (Coordinates, bool) {
	c, ok := capitals[country]
	return c, ok
}

// Markers returns a marker for every country with known coordinates,
// by count descending then name. Unknown countries are left off the map.
func Markers(byCountry FrequencyTable) []Marker {
	markers := make([]Marker, 0, len(byCountry))
	for country, count := range byCountry {
		coords, ok := LookupCoordinates(country)
		if !ok || count == 0 {
			continue
		}
		markers = append(markers, Marker{Country: country, Count: count, Coords: coords})
	}
	slices.SortFunc(markers, func(a, b Marker) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Country, b.Country)
	})
	return markers
}
