package core

import (
	"errors"
	"testing"
	"time"
)

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		input   string
		want    Percentage
		wantErr error
	}{
		{"0", 0, nil},
		{"5.2", 5.2, nil},
		{" 4.5 ", 4.5, nil},
		{"5,6", 5.6, nil},
		{"6%", 6, nil},
		{"", 0, ErrEmptyValue},
		{"   ", 0, ErrEmptyValue},
		{"strong", 0, ErrInvalidNumber},
		{"-1", -1, nil},
		{"NaN", 0, ErrInvalidNumber},
		{"Inf", 0, ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePercentage(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePercentage(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePercentage(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePercentage(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	got, err := ParseYear(" 1998 ")
	if err != nil || got != 1998 {
		t.Errorf("ParseYear() = %v, %v; want 1998, nil", got, err)
	}

	if _, err := ParseYear(""); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("ParseYear(\"\") error = %v, want %v", err, ErrEmptyValue)
	}

	if _, err := ParseYear("199x"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("ParseYear(\"199x\") error = %v, want %v", err, ErrInvalidNumber)
	}
}

func TestDigestOf(t *testing.T) {
	a := DigestOf([]byte("photo bytes"))
	b := DigestOf([]byte("photo bytes"))
	c := DigestOf([]byte("other bytes"))

	if a != b {
		t.Errorf("DigestOf() produced different digests for same content: %d vs %d", a, b)
	}
	if a == c {
		t.Errorf("DigestOf() produced same digest for different content")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 9, 18, 4, 5, 123_000_000, time.FixedZone("CET", 3600))

	formatted := FormatTimestamp(ts)
	if formatted != "2024-03-09T17:04:05.123Z" {
		t.Fatalf("FormatTimestamp() = %q", formatted)
	}

	parsed, err := ParseTimestamp(formatted)
	if err != nil {
		t.Fatalf("ParseTimestamp() error = %v", err)
	}
	if !parsed.Equal(ts) {
		t.Errorf("ParseTimestamp() = %v, want %v", parsed, ts)
	}
}

func TestCatalogEntry_WithAnnotation(t *testing.T) {
	entry := CatalogEntry{
		ID:         "1",
		ImageRef:   "caps/1.jpg",
		CreatedAt:  "2024-05-01T12:30:00.000Z",
		Annotation: Annotation{Name: "Old", Brewery: "Old Brewery"},
	}

	updated := entry.WithAnnotation(Annotation{Name: "New"})

	if updated.ID != entry.ID || updated.ImageRef != entry.ImageRef || updated.CreatedAt != entry.CreatedAt {
		t.Errorf("WithAnnotation() changed immutable fields: %+v", updated)
	}
	if updated.Name != "New" || updated.Brewery != "" {
		t.Errorf("WithAnnotation() did not fully replace annotation: %+v", updated.Annotation)
	}
	if entry.Name != "Old" {
		t.Errorf("WithAnnotation() mutated receiver")
	}
}
