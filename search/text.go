package search

import (
	"strings"

	"github.com/poiesic/capdex/core"
)

// searchableFields returns the fields a query is matched against.
func searchableFields(e *core.CatalogEntry) [4]string {
	return [4]string{e.Name, e.Brewery, e.Color, e.Country}
}

// normalizeQuery lowercases the query. Whitespace is significant; only the
// empty query matches everything.
func normalizeQuery(query string) string {
	return strings.ToLower(query)
}

// matches reports whether the lowercased query occurs in any searchable field.
func matches(e *core.CatalogEntry, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range searchableFields(e) {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
