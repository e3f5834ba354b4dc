package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/storage"
)

// State describes what the catalog knows about durable storage.
type State int

const (
	// Unloaded means the collection has not been read yet.
	Unloaded State = iota
	// Loaded means the in-memory collection mirrors the last successful load or save.
	Loaded
	// LoadFailed means the last Refresh failed; the collection may be stale or empty.
	LoadFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load-failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Catalog provides create, read, update and delete over the collection.
type Catalog struct {
	store   storage.Collection
	entries []core.CatalogEntry
	state   State
	lastErr error
	now     func() time.Time
	newID   func() (string, error)
	logger  *slog.Logger
	mu      sync.RWMutex
}

// Option configures a Catalog.
type Option func(*Catalog) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		c.now = now
		return nil
	}
}

// WithIDGenerator sets the function used to assign entry ids.
// Default is a time-ordered UUIDv7.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(c *Catalog) error {
		if newID == nil {
			return fmt.Errorf("id generator cannot be nil")
		}
		c.newID = newID
		return nil
	}
}

// New creates a catalog over store. Nothing is read until the first
// Refresh or mutation.
func New(store storage.Collection, opts ...Option) (*Catalog, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	c := &Catalog{
		store:   store,
		entries: []core.CatalogEntry{},
		state:   Unloaded,
		now:     time.Now,
		newID:   newUUID,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.logger = c.logger.With("component", "catalog")

	return c, nil
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Refresh reads the collection from storage and replaces the in-memory copy.
// On failure the previous collection is kept, the state becomes LoadFailed
// and the storage error is returned.
func (c *Catalog) Refresh(ctx context.Context) ([]core.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.refreshLocked(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(c.entries), nil
}

func (c *Catalog) refreshLocked(ctx context.Context) error {
	entries, err := c.store.LoadAll(ctx)
	if err != nil {
		c.state = LoadFailed
		c.lastErr = err
		c.logger.Error("error loading catalog", "err", err)
		return err
	}

	c.entries = entries
	c.state = Loaded
	c.lastErr = nil
	c.logger.Debug("catalog loaded", "entries", len(entries))
	return nil
}

// ensureLoadedLocked loads the collection on first use.
// Must be called with the write lock held.
func (c *Catalog) ensureLoadedLocked(ctx context.Context) error {
	switch c.state {
	case Loaded:
		return nil
	case LoadFailed:
		return fmt.Errorf("%w: %w", ErrNotLoaded, c.lastErr)
	default:
		return c.refreshLocked(ctx)
	}
}

// State reports whether the collection was loaded successfully.
func (c *Catalog) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Err returns the error from the last failed load, if any.
func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// Entries returns a copy of the collection in insertion order.
func (c *Catalog) Entries() []core.CatalogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entries)
}

// Count returns the number of entries.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the entry with the given id.
func (c *Catalog) Get(id string) (core.CatalogEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return core.CatalogEntry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.entries[i], nil
}

func (c *Catalog) indexOf(id string) int {
	return slices.IndexFunc(c.entries, func(e core.CatalogEntry) bool {
		return e.ID == id
	})
}

// Create assigns an id and creation time to draft, appends it and saves.
func (c *Catalog) Create(ctx context.Context, draft core.Draft) (core.CatalogEntry, error) {
	if err := core.ValidateDraft(&draft); err != nil {
		return core.CatalogEntry{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(ctx); err != nil {
		return core.CatalogEntry{}, err
	}

	id, err := c.uniqueIDLocked()
	if err != nil {
		return core.CatalogEntry{}, err
	}

	entry := core.CatalogEntry{
		ID:         id,
		ImageRef:   draft.ImageRef,
		CreatedAt:  core.FormatTimestamp(c.now()),
		Annotation: draft.Annotation,
	}

	next := append(slices.Clone(c.entries), entry)
	if err := c.commitLocked(ctx, next); err != nil {
		return core.CatalogEntry{}, err
	}

	c.logger.Info("entry created", "id", entry.ID, "name", entry.Name)
	return entry, nil
}

// uniqueIDLocked draws ids until one is unused.
func (c *Catalog) uniqueIDLocked() (string, error) {
	for range 3 {
		id, err := c.newID()
		if err != nil {
			return "", fmt.Errorf("generating entry id: %w", err)
		}
		if id != "" && c.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: id generator keeps returning used ids", ErrDuplicateID)
}

// Update replaces every editable attribute of the entry with a.
// ID, ImageRef and CreatedAt are preserved.
func (c *Catalog) Update(ctx context.Context, id string, a core.Annotation) (core.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(ctx); err != nil {
		return core.CatalogEntry{}, err
	}

	i := c.indexOf(id)
	if i < 0 {
		return core.CatalogEntry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := slices.Clone(c.entries)
	next[i] = next[i].WithAnnotation(a)
	if err := c.commitLocked(ctx, next); err != nil {
		return core.CatalogEntry{}, err
	}

	c.logger.Info("entry updated", "id", id)
	return next[i], nil
}

// Delete removes the entry with the given id.
// Deleting an unknown id is a no-op and does not touch storage.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	i := c.indexOf(id)
	if i < 0 {
		c.logger.Debug("delete of unknown entry ignored", "id", id)
		return nil
	}

	next := slices.Delete(slices.Clone(c.entries), i, i+1)
	if err := c.commitLocked(ctx, next); err != nil {
		return err
	}

	c.logger.Info("entry deleted", "id", id)
	return nil
}

// Import appends existing entries, keeping their ids and creation times.
// Every entry must validate and no id may already be present.
// The batch is saved with a single write.
func (c *Catalog) Import(ctx context.Context, entries ...core.CatalogEntry) ([]core.CatalogEntry, error) {
	for i := range entries {
		if err := core.ValidateEntry(&entries[i]); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(c.entries)+len(entries))
	for _, e := range c.entries {
		seen[e.ID] = true
	}
	for _, e := range entries {
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true
	}

	if len(entries) == 0 {
		return []core.CatalogEntry{}, nil
	}

	next := append(slices.Clone(c.entries), entries...)
	if err := c.commitLocked(ctx, next); err != nil {
		return nil, err
	}

	c.logger.Info("entries imported", "entries", len(entries))
	return slices.Clone(entries), nil
}

// commitLocked saves next and, only on success, makes it the in-memory collection.
func (c *Catalog) commitLocked(ctx context.Context, next []core.CatalogEntry) error {
	if err := c.store.SaveAll(ctx, next); err != nil {
		c.logger.Error("error saving catalog, changes rolled back", "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	c.entries = next
	return nil
}
