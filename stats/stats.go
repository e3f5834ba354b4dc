package stats

import (
	"strings"

	"github.com/poiesic/capdex/core"
)

// Percentage range labels, in chart order.
const (
	RangeZero   = "0%"
	RangeUpTo4  = "0-4%"
	Range4To5   = "4-5%"
	Range5To6   = "5-6%"
	Range6To7   = "6-7%"
	RangeAbove7 = ">7%"
)

// PercentageRanges lists every range label in ascending order.
var PercentageRanges = []string{RangeZero, RangeUpTo4, Range4To5, Range5To6, Range6To7, RangeAbove7}

// PercentageRange maps an alcohol percentage to its range label.
// Bounds are inclusive on the upper end.
func PercentageRange(p float64) string {
	switch {
	case p == 0:
		return RangeZero
	case p <= 4:
		return RangeUpTo4
	case p <= 5:
		return Range4To5
	case p <= 6:
		return Range5To6
	case p <= 7:
		return Range6To7
	default:
		return RangeAbove7
	}
}

// Stats holds the frequency tables for a collection.
type Stats struct {
	Total             int            `json:"total"`
	ByCountry         FrequencyTable `json:"byCountry"`
	ByPercentageRange FrequencyTable `json:"byPercentageRange"`
	ByYear            FrequencyTable `json:"byYear"`
	ByType            FrequencyTable `json:"byType"`
	ByBrewery         FrequencyTable `json:"byBrewery"`
	ByColor           FrequencyTable `json:"byColor"`

	// Unparsed counts non-empty percentages that could not be parsed.
	Unparsed int `json:"unparsedPercentages"`
}

func newStats() Stats {
	s := Stats{
		ByCountry:         FrequencyTable{},
		ByPercentageRange: make(FrequencyTable, len(PercentageRanges)),
		ByYear:            FrequencyTable{},
		ByType:            FrequencyTable{},
		ByBrewery:         FrequencyTable{},
		ByColor:           FrequencyTable{},
	}
	for _, label := range PercentageRanges {
		s.ByPercentageRange[label] = 0
	}
	return s
}

// Compute builds every frequency table in one pass over entries.
// Values are counted as entered; surrounding whitespace is ignored.
// A percentage that does not parse is skipped and tallied in Unparsed.
func Compute(entries []core.CatalogEntry) Stats {
	s := newStats()
	s.Total = len(entries)

	for i := range entries {
		e := &entries[i]
		addIfSet(s.ByCountry, e.Country)
		addIfSet(s.ByYear, e.ProductionYear)
		addIfSet(s.ByType, e.Type)
		addIfSet(s.ByBrewery, e.Brewery)
		addIfSet(s.ByColor, e.Color)

		if strings.TrimSpace(e.AlcoholPercentage) == "" {
			continue
		}
		p, err := core.ParsePercentage(e.AlcoholPercentage)
		if err != nil {
			s.Unparsed++
			continue
		}
		s.ByPercentageRange.Add(PercentageRange(float64(p)))
	}

	return s
}

func addIfSet(t FrequencyTable, value string) {
	if v := strings.TrimSpace(value); v != "" {
		t.Add(v)
	}
}
