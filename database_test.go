package capdex

import (
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/poiesic/capdex/capture/mock"
	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/config"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/ingestion"
	"github.com/poiesic/capdex/search"
	"github.com/poiesic/capdex/storage"
	"github.com/poiesic/capdex/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T, opts ...config.Option) *Database {
	t.Helper()
	cfg := config.NewConfig(append([]config.Option{config.WithInMemory(true)}, opts...)...)
	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func writePhoto(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cap.png")
	require.NoError(t, imaging.Save(imaging.New(w, h, color.White), path))
	return path
}

func TestOpen(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		db := openMemory(t)
		assert.NotNil(t, db.Catalog())
		assert.NotNil(t, db.Pipeline())
		assert.NotNil(t, db.Thumbnails())
		assert.NotNil(t, db.Searcher())
		assert.Equal(t, catalog.Loaded, db.State())
		assert.NoError(t, db.LoadError())
	})

	t.Run("invalid config", func(t *testing.T) {
		db, err := Open(config.NewConfig(config.WithThumbnailQuality(0)))
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		db, err := Open(config.NewConfig(config.WithDBPath(tmpFile)))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_PersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "caps")
	cfg := config.NewConfig(config.WithDBPath(dir))
	ctx := context.Background()

	db, err := Open(cfg)
	require.NoError(t, err)
	created, err := db.Create(ctx, core.Draft{ImageRef: writePhoto(t, 20, 20), Annotation: core.Annotation{Name: "Tyskie"}})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// The thumbnail queued on create was finished before Close
	thumb, err := db.Thumbnails().GetThumbnail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, thumb.Width)
}

func TestDatabase_CorruptCollection(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "caps")
	ctx := context.Background()

	backend, err := badger.OpenBackend(dir, false)
	require.NoError(t, err)
	kv, err := badger.NewKV(backend)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, storage.CollectionKey, "{not a list"))
	require.NoError(t, backend.Close())

	db, err := Open(config.NewConfig(config.WithDBPath(dir)))
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, catalog.LoadFailed, db.State())
	assert.ErrorIs(t, db.LoadError(), storage.ErrStorageRead)

	_, err = db.Stats()
	assert.ErrorIs(t, err, catalog.ErrNotLoaded)
	_, err = db.Search("", search.SortNone)
	assert.ErrorIs(t, err, catalog.ErrNotLoaded)
	_, err = db.Entries()
	assert.ErrorIs(t, err, catalog.ErrNotLoaded)

	// Storage must not be overwritten from an unknown state
	_, err = db.Create(ctx, core.Draft{ImageRef: "x.jpg"})
	assert.ErrorIs(t, err, catalog.ErrNotLoaded)
	require.NoError(t, db.Close())

	backend, err = badger.OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()
	kv, err = badger.NewKV(backend)
	require.NoError(t, err)
	raw, err := kv.Get(ctx, storage.CollectionKey)
	require.NoError(t, err)
	assert.Equal(t, "{not a list", raw)
}

func TestDatabase_SearchAndStats(t *testing.T) {
	db := openMemory(t, config.WithLanguage("pl"))
	ctx := context.Background()

	for _, a := range []core.Annotation{
		{Name: "Żubr", Country: "Poland", AlcoholPercentage: "6"},
		{Name: "Lech", Country: "Poland", AlcoholPercentage: "5.2"},
		{Name: "Beck's", Country: "Germany", AlcoholPercentage: "4.9"},
	} {
		_, err := db.Create(ctx, core.Draft{ImageRef: "mem://" + a.Name, Annotation: a})
		require.NoError(t, err)
	}

	results, err := db.Search("POLAND", search.SortName)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Lech", results[0].Name)
	assert.Equal(t, "Żubr", results[1].Name)

	s, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ByCountry["Poland"])
	assert.Equal(t, 1, s.ByCountry["Germany"])
	assert.Equal(t, 2, s.ByPercentageRange["5-6%"])
	assert.Equal(t, 1, s.ByPercentageRange["4-5%"])
}

func TestDatabase_DeleteEntryDropsThumbnail(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	entry, err := db.Create(ctx, core.Draft{ImageRef: writePhoto(t, 30, 10)})
	require.NoError(t, err)
	db.Pipeline().Wait()

	_, err = db.Thumbnails().GetThumbnail(ctx, entry.ID)
	require.NoError(t, err)

	require.NoError(t, db.DeleteEntry(ctx, entry.ID))
	_, err = db.Get(entry.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	_, err = db.Thumbnails().GetThumbnail(ctx, entry.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, db.DeleteEntry(ctx, entry.ID))
}

func TestDatabase_DeleteEntryWaitsForQueuedThumbnail(t *testing.T) {
	release := make(chan struct{})
	opener := func(ctx context.Context, ref string) (io.ReadCloser, error) {
		<-release
		return ingestion.OpenFile(ctx, ref)
	}

	db, err := Open(config.NewConfig(config.WithInMemory(true)), WithImageOpener(opener))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()

	entry, err := db.Create(ctx, core.Draft{ImageRef: writePhoto(t, 30, 10)})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- db.DeleteEntry(ctx, entry.ID) }()

	time.Sleep(50 * time.Millisecond)
	close(release)
	require.NoError(t, <-done)

	db.Pipeline().Wait()
	_, err = db.Thumbnails().GetThumbnail(ctx, entry.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDatabase_ThumbnailOnDemand(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	path := writePhoto(t, 500, 250)
	entries, err := db.Catalog().Import(ctx, core.CatalogEntry{
		ID: "legacy", ImageRef: path, CreatedAt: "2024-01-01T00:00:00.000Z",
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	thumb, err := db.Thumbnail(ctx, "legacy")
	require.NoError(t, err)
	assert.Equal(t, 256, thumb.Width)
	assert.Equal(t, 128, thumb.Height)

	_, err = db.Thumbnail(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDatabase_CaptureWorkflow(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	camera := mock.NewMockCamera(writePhoto(t, 40, 40))
	w, err := db.NewCaptureWorkflow(camera, mock.NewMockPicker("Poland"))
	require.NoError(t, err)

	_, err = w.Capture(ctx)
	require.NoError(t, err)
	_, _, err = w.PickCountry(ctx, []string{"Poland"})
	require.NoError(t, err)
	entry, err := w.Commit(ctx)
	require.NoError(t, err)

	db.Pipeline().Wait()
	_, err = db.Thumbnails().GetThumbnail(ctx, entry.ID)
	assert.NoError(t, err)

	got, err := db.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poland", got.Country)
}

func TestDatabase_Importer(t *testing.T) {
	db := openMemory(t)

	im, err := db.NewImporter()
	require.NoError(t, err)

	report, err := im.Run(context.Background(), strings.NewReader(`[{"id": "1", "uri": "mem://1", "year": "1999"}]`))
	require.NoError(t, err)
	require.Len(t, report.Imported, 1)

	got, err := db.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "1999", got.ProductionYear)
}
