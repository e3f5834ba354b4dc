package search

import (
	"log/slog"
	"testing"

	"github.com/poiesic/capdex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func entry(id, name, brewery, color, country string) core.CatalogEntry {
	return core.CatalogEntry{
		ID:        id,
		ImageRef:  "caps/" + id + ".jpg",
		CreatedAt: "2024-01-01T00:00:00.000Z",
		Annotation: core.Annotation{
			Name:    name,
			Brewery: brewery,
			Color:   color,
			Country: country,
		},
	}
}

func ids(entries []core.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func fixture() []core.CatalogEntry {
	return []core.CatalogEntry{
		entry("1", "Tyskie", "Kompania Piwowarska", "gold", "Poland"),
		entry("2", "Beck's", "Brauerei Beck", "green", "Germany"),
		entry("3", "Zywiec", "Grupa Żywiec", "red", "Poland"),
		entry("4", "amber", "", "", ""),
		entry("5", "Łomża", "Van Pur", "white", "Poland"),
		entry("6", "Lech", "Kompania Piwowarska", "green", "Poland"),
	}
}

func TestNewSearcher(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := NewSearcher()
		require.NoError(t, err)
		assert.Equal(t, language.Und, s.Language())
	})

	t.Run("with language", func(t *testing.T) {
		s, err := NewSearcher(WithLanguage(language.Polish))
		require.NoError(t, err)
		assert.Equal(t, language.Polish, s.Language())
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		s, err := NewSearcher(WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("with custom logger", func(t *testing.T) {
		s, err := NewSearcher(WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"", SortNone},
		{"none", SortNone},
		{"name", SortName},
		{"Brewery", SortBrewery},
		{" name ", SortName},
	}
	for _, tt := range tests {
		got, err := ParseSortKey(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSortKey("country")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestFilterSort_EmptyQueryNoSortIsIdentity(t *testing.T) {
	entries := fixture()
	got := FilterSort(entries, "", SortNone)
	assert.Equal(t, entries, got)
}

func TestFilterSort_CaseInsensitive(t *testing.T) {
	got := FilterSort(fixture(), "poland", SortNone)
	assert.Equal(t, []string{"1", "3", "5", "6"}, ids(got))

	got = FilterSort(fixture(), "POL", SortNone)
	assert.Equal(t, []string{"1", "3", "5", "6"}, ids(got))
}

func TestFilterSort_MatchesAnyField(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name", "tysk", []string{"1"}},
		{"brewery", "piwowarska", []string{"1", "6"}},
		{"color", "GREEN", []string{"2", "6"}},
		{"country", "germ", []string{"2"}},
		{"non-ascii", "żywiec", []string{"3"}},
		{"non-ascii uppercase", "ŁOM", []string{"5"}},
		{"no match", "guinness", []string{}},
		{"single space", " ", []string{"1", "2", "3", "5", "6"}},
		{"whitespace only", "   ", []string{}},
		{"trailing space", "tyskie ", []string{}},
		{"inner space", "VAN P", []string{"5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSort(fixture(), tt.query, SortNone)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterSort_IgnoresTypeAndYear(t *testing.T) {
	e := entry("1", "", "", "", "")
	e.Type = "Porter"
	e.ProductionYear = "2019"

	assert.Empty(t, FilterSort([]core.CatalogEntry{e}, "porter", SortNone))
	assert.Empty(t, FilterSort([]core.CatalogEntry{e}, "2019", SortNone))
}

func TestFilterSort_SortByName(t *testing.T) {
	got := FilterSort(fixture(), "", SortName)
	// Collation ignores case and places Ł next to L rather than after Z.
	assert.Equal(t, []string{"4", "2", "6", "5", "1", "3"}, ids(got))
}

func TestFilterSort_SortByBrewery(t *testing.T) {
	got := FilterSort(fixture(), "", SortBrewery)
	// Missing brewery sorts first; equal breweries keep input order.
	assert.Equal(t, []string{"4", "2", "3", "1", "6", "5"}, ids(got))
}

func TestFilterSort_StableOnTies(t *testing.T) {
	entries := []core.CatalogEntry{
		entry("a", "alpha", "", "", ""),
		entry("b", "Alpha", "", "", ""),
		entry("c", "ALPHA", "", "", ""),
	}
	got := FilterSort(entries, "", SortName)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestFilterSort_FilterThenSort(t *testing.T) {
	got := FilterSort(fixture(), "poland", SortName)
	assert.Equal(t, []string{"6", "5", "1", "3"}, ids(got))
}

func TestFilterSort_DoesNotMutateInput(t *testing.T) {
	entries := fixture()
	before := append([]core.CatalogEntry(nil), entries...)

	got := FilterSort(entries, "", SortName)
	require.Len(t, got, len(entries))
	got[0].Name = "changed"

	assert.Equal(t, before, entries)
}

func TestFilterSort_Deterministic(t *testing.T) {
	first := FilterSort(fixture(), "o", SortBrewery)
	for range 5 {
		assert.Equal(t, first, FilterSort(fixture(), "o", SortBrewery))
	}
}

func TestFilterSort_NilInput(t *testing.T) {
	got := FilterSort(nil, "x", SortName)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearcher_PolishCollation(t *testing.T) {
	s, err := NewSearcher(WithLanguage(language.Polish))
	require.NoError(t, err)

	entries := []core.CatalogEntry{
		entry("z", "Zubr", "", "", ""),
		entry("l2", "Łomża", "", "", ""),
		entry("l1", "Lech", "", "", ""),
	}
	got := s.FilterSort(entries, "", SortName)
	assert.Equal(t, []string{"l1", "l2", "z"}, ids(got))
}
