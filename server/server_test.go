package server

import (
	"bytes"
	"context"
	"image/color"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/poiesic/capdex"
	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/config"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/search"
	"github.com/poiesic/capdex/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (*Server, *capdex.Database) {
	t.Helper()
	db, err := capdex.Open(config.NewConfig(config.WithInMemory(true)))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := New(db)
	require.NoError(t, err)
	return s, db
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func seed(t *testing.T, db *capdex.Database, drafts ...core.Draft) []core.CatalogEntry {
	t.Helper()
	var out []core.CatalogEntry
	for _, d := range drafts {
		e, err := db.Create(context.Background(), d)
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestCreateAndGet(t *testing.T) {
	s, _ := setupServer(t)

	rec := do(t, s, http.MethodPost, "/entries", `{"imageRef": "mem://1", "name": "Tyskie", "country": "Poland", "alcoholPercentage": "5,2"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[core.CatalogEntry](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Tyskie", created.Name)
	assert.Equal(t, "5,2", created.AlcoholPercentage)
	assert.Equal(t, "/entries/"+created.ID, rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = do(t, s, http.MethodGet, "/entries/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[core.CatalogEntry](t, rec))
}

func TestCreate_BadInput(t *testing.T) {
	s, _ := setupServer(t)

	rec := do(t, s, http.MethodPost, "/entries", `{"name": "no photo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Error, "image")

	rec = do(t, s, http.MethodPost, "/entries", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEntries(t *testing.T) {
	s, db := setupServer(t)
	seed(t, db,
		core.Draft{ImageRef: "mem://1", Annotation: core.Annotation{Name: "Tyskie", Country: "Poland"}},
		core.Draft{ImageRef: "mem://2", Annotation: core.Annotation{Name: "Beck's", Country: "Germany"}},
		core.Draft{ImageRef: "mem://3", Annotation: core.Annotation{Name: "Lech", Country: "Poland"}},
	)

	rec := do(t, s, http.MethodGet, "/entries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]core.CatalogEntry](t, rec), 3)

	rec = do(t, s, http.MethodGet, "/entries?q=poland&sort=name", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]core.CatalogEntry](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "Lech", entries[0].Name)
	assert.Equal(t, "Tyskie", entries[1].Name)

	rec = do(t, s, http.MethodGet, "/entries?q=guinness", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = do(t, s, http.MethodGet, "/entries?sort=country", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEntry(t *testing.T) {
	s, db := setupServer(t)
	created := seed(t, db, core.Draft{ImageRef: "mem://1", Annotation: core.Annotation{Name: "Tyskie", Color: "gold"}})[0]

	rec := do(t, s, http.MethodPut, "/entries/"+created.ID, `{"name": "Tyskie Gronie", "type": "Lager"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[core.CatalogEntry](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.ImageRef, updated.ImageRef)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, core.Annotation{Name: "Tyskie Gronie", Type: "Lager"}, updated.Annotation)

	rec = do(t, s, http.MethodPut, "/entries/missing", `{"name": "x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPut, "/entries/"+created.ID, `[1, 2]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEntry(t *testing.T) {
	s, db := setupServer(t)
	created := seed(t, db, core.Draft{ImageRef: "mem://1"})[0]

	rec := do(t, s, http.MethodDelete, "/entries/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/entries/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Idempotent
	rec = do(t, s, http.MethodDelete, "/entries/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestThumbnail(t *testing.T) {
	s, db := setupServer(t)

	path := filepath.Join(t.TempDir(), "cap.png")
	require.NoError(t, imaging.Save(imaging.New(64, 32, color.White), path))
	created := seed(t, db, core.Draft{ImageRef: path})[0]

	rec := do(t, s, http.MethodGet, "/entries/"+created.ID+"/thumbnail", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))

	img, err := imaging.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	rec = do(t, s, http.MethodGet, "/entries/missing/thumbnail", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	s, db := setupServer(t)
	seed(t, db,
		core.Draft{ImageRef: "mem://1", Annotation: core.Annotation{Country: "Poland", AlcoholPercentage: "5.5"}},
		core.Draft{ImageRef: "mem://2", Annotation: core.Annotation{Country: "Poland", AlcoholPercentage: "0"}},
		core.Draft{ImageRef: "mem://3", Annotation: core.Annotation{Country: "Germany"}},
	)

	rec := do(t, s, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[statsResponse](t, rec)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, stats.FrequencyTable{"Poland": 2, "Germany": 1}, resp.ByCountry)
	assert.Equal(t, 2, resp.Coverage.Countries)
	require.Len(t, resp.PercentageRanges, 6)
	assert.Equal(t, stats.Bucket{Key: "0%", Count: 1}, resp.PercentageRanges[0])
	assert.Equal(t, stats.Bucket{Key: "5-6%", Count: 1}, resp.PercentageRanges[3])

	rec = do(t, s, http.MethodGet, "/stats/markers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	markers := decodeBody[[]stats.Marker](t, rec)
	require.Len(t, markers, 2)
	assert.Equal(t, "Poland", markers[0].Country)
}

func TestHealthAndRefresh(t *testing.T) {
	s, db := setupServer(t)
	seed(t, db, core.Draft{ImageRef: "mem://1"})

	rec := do(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[healthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "loaded", health.Catalog)

	rec = do(t, s, http.MethodPost, "/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[refreshResponse](t, rec).Entries)
}

// failedService reports a catalog that could not be loaded.
type failedService struct {
	Service
}

func (failedService) State() catalog.State { return catalog.LoadFailed }
func (failedService) LoadError() error     { return catalog.ErrNotLoaded }
func (failedService) Stats() (stats.Stats, error) {
	return stats.Stats{}, catalog.ErrNotLoaded
}
func (failedService) Search(string, search.SortKey) ([]core.CatalogEntry, error) {
	return nil, catalog.ErrNotLoaded
}

func TestLoadFailureIsNotEmpty(t *testing.T) {
	s, err := New(failedService{})
	require.NoError(t, err)

	rec := do(t, s, http.MethodGet, "/entries", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, s, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "load-failed", decodeBody[healthResponse](t, rec).Catalog)
}

func TestPanicHandler(t *testing.T) {
	s, err := New(failedService{})
	require.NoError(t, err)

	// The embedded nil Service panics on Get
	rec := do(t, s, http.MethodGet, "/entries/x", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS(t *testing.T) {
	_, db := setupServer(t)
	s, err := New(db, WithCORS("https://caps.example"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://caps.example")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, "https://caps.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusFor(catalog.ErrDuplicateID))
	assert.Equal(t, http.StatusInternalServerError, statusFor(catalog.ErrPersist))
}
