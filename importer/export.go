package importer

import (
	"io"

	"github.com/poiesic/capdex/core"
)

// Export writes entries as an indented JSON array that Run can read back.
func Export(w io.Writer, entries []core.CatalogEntry) error {
	if entries == nil {
		entries = []core.CatalogEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
