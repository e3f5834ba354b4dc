package search

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/capdex/core"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the field entries are ordered by.
type SortKey string

const (
	// SortNone keeps the input order.
	SortNone SortKey = "none"
	// SortName orders by name.
	SortName SortKey = "name"
	// SortBrewery orders by brewery.
	SortBrewery SortKey = "brewery"
)

// SortKeys lists every accepted sort key.
var SortKeys = []SortKey{SortNone, SortName, SortBrewery}

// ParseSortKey parses a sort key. The empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case "", SortNone:
		return SortNone, nil
	case SortName, SortBrewery:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

// Searcher filters and sorts catalog entries.
// A Searcher is safe for concurrent use.
type Searcher struct {
	language language.Tag
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithLanguage sets the collation language used when sorting.
// Default is language.Und, the root collation order.
func WithLanguage(tag language.Tag) Option {
	return func(s *Searcher) error {
		s.language = tag
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	s := &Searcher{
		language: language.Und,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Language returns the collation language.
func (s *Searcher) Language() language.Tag {
	return s.language
}

// FilterSort returns the entries matching query, ordered by key.
// The result is a new slice; entries is never modified.
func (s *Searcher) FilterSort(entries []core.CatalogEntry, query string, key SortKey) []core.CatalogEntry {
	needle := normalizeQuery(query)

	results := make([]core.CatalogEntry, 0, len(entries))
	for i := range entries {
		if matches(&entries[i], needle) {
			results = append(results, entries[i])
		}
	}

	s.logger.Debug("entries filtered", "query", query, "sort", string(key), "matched", len(results), "total", len(entries))

	field := sortField(key)
	if field == nil {
		return results
	}

	// Collators keep internal buffers, so each call gets its own.
	col := collate.New(s.language, collate.IgnoreCase)
	slices.SortStableFunc(results, func(a, b core.CatalogEntry) int {
		return col.CompareString(field(&a), field(&b))
	})

	return results
}

func sortField(key SortKey) func(*core.CatalogEntry) string {
	switch key {
	case SortName:
		return func(e *core.CatalogEntry) string { return e.Name }
	case SortBrewery:
		return func(e *core.CatalogEntry) string { return e.Brewery }
	default:
		return nil
	}
}

var defaultSearcher = &Searcher{language: language.Und, logger: slog.Default()}

// FilterSort filters and sorts entries using the root collation order.
func FilterSort(entries []core.CatalogEntry, query string, key SortKey) []core.CatalogEntry {
	return defaultSearcher.FilterSort(entries, query, key)
}
