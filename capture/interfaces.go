package capture

import (
	"context"

	"github.com/poiesic/capdex/core"
)

// Camera captures photos.
type Camera interface {
	// Capture takes a photo of the current frame and returns an opaque
	// reference to it, typically a file path.
	// Returns an error if the device fails to capture.
	Capture(ctx context.Context) (string, error)
}

// Picker presents a list of choices.
type Picker interface {
	// Pick presents options and returns the chosen label.
	// ok is false when the user dismissed the list without choosing.
	Pick(ctx context.Context, options []string) (choice string, ok bool, err error)
}

// Creator turns a draft into a persisted catalog entry.
// *catalog.Catalog implements Creator.
type Creator interface {
	Create(ctx context.Context, draft core.Draft) (core.CatalogEntry, error)
}
