package core

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of CatalogEntry.CreatedAt.
// Millisecond precision, always UTC, so values sort lexically.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// BeerTypes lists the types offered by the type picker.
var BeerTypes = []string{
	"Lager",
	"Pilsner",
	"Pszeniczne",
	"Ciemne",
	"Porter",
	"Smakowe",
	"Inne",
	"Bezalkoholowe",
	"IPA",
	"Kraftowe",
}

// Annotation holds the user-editable attributes of a cap.
// Numeric attributes are kept as entered; see ParsePercentage and ParseYear.
type Annotation struct {
	Name              string `json:"name"`
	Brewery           string `json:"brewery"`
	AlcoholPercentage string `json:"alcoholPercentage"`
	Color             string `json:"color"`
	ProductionYear    string `json:"productionYear"`
	Country           string `json:"country"`
	Type              string `json:"type"`
}

// Draft is everything needed to create a new CatalogEntry.
type Draft struct {
	ImageRef string `json:"imageRef" validate:"required"`
	Annotation
}

// CatalogEntry is one cataloged cap.
// ID, ImageRef and CreatedAt never change after creation.
type CatalogEntry struct {
	ID        string `json:"id" validate:"required"`
	ImageRef  string `json:"imageRef" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"timestamp"`
	Annotation
}

// WithAnnotation returns a copy of the entry with all editable attributes replaced.
func (e CatalogEntry) WithAnnotation(a Annotation) CatalogEntry {
	e.Annotation = a
	return e
}

// Created parses CreatedAt.
func (e CatalogEntry) Created() (time.Time, error) {
	return ParseTimestamp(e.CreatedAt)
}

// FormatTimestamp formats t the way CreatedAt is stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a CreatedAt value. Plain RFC 3339 is accepted too.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, s)
	if err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
}

// Thumbnail is a downscaled JPEG rendition of an entry's photo.
type Thumbnail struct {
	EntryID string
	Digest  Digest // digest of the source photo the thumbnail was made from
	Width   int
	Height  int
	JPEG    []byte
}
