package importer

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/poiesic/capdex/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// flexibleID accepts ids written as JSON strings or numbers.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n jsoniter.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// record is one element of an import file. It carries both the capdex
// field names and the ones used by the mobile app.
type record struct {
	ID        flexibleID `json:"id"`
	CreatedAt string     `json:"createdAt"`

	ImageRef string `json:"imageRef"`
	URI      string `json:"uri"`

	Name              string `json:"name"`
	Brewery           string `json:"brewery"`
	AlcoholPercentage string `json:"alcoholPercentage"`
	Percentage        string `json:"percentage"`
	Color             string `json:"color"`
	ProductionYear    string `json:"productionYear"`
	Year              string `json:"year"`
	Country           string `json:"country"`
	Type              string `json:"type"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// entry converts the record. Missing ids are left empty for the caller
// to assign. A missing creation time is recovered from a millisecond epoch
// id when possible, otherwise fallback is used.
func (r *record) entry(fallback time.Time) core.CatalogEntry {
	e := core.CatalogEntry{
		ID:        strings.TrimSpace(string(r.ID)),
		ImageRef:  firstNonEmpty(r.ImageRef, r.URI),
		CreatedAt: strings.TrimSpace(r.CreatedAt),
		Annotation: core.Annotation{
			Name:              r.Name,
			Brewery:           r.Brewery,
			AlcoholPercentage: firstNonEmpty(r.AlcoholPercentage, r.Percentage),
			Color:             r.Color,
			ProductionYear:    firstNonEmpty(r.ProductionYear, r.Year),
			Country:           r.Country,
			Type:              r.Type,
		},
	}

	if e.CreatedAt == "" {
		ts := fallback
		if ms, err := strconv.ParseInt(e.ID, 10, 64); err == nil && ms > 0 {
			ts = time.UnixMilli(ms)
		}
		e.CreatedAt = core.FormatTimestamp(ts)
	} else if ts, err := core.ParseTimestamp(e.CreatedAt); err == nil {
		e.CreatedAt = core.FormatTimestamp(ts)
	}

	return e
}

// decode reads a JSON array of records.
func decode(data []byte) ([]record, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
