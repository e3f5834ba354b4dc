package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/capdex/capture/mock"
	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/storage"
	"github.com/poiesic/capdex/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	drafts []core.Draft
	err    error
}

func (f *fakeCreator) Create(_ context.Context, d core.Draft) (core.CatalogEntry, error) {
	f.drafts = append(f.drafts, d)
	if f.err != nil {
		return core.CatalogEntry{}, f.err
	}
	return core.CatalogEntry{
		ID:         "id-1",
		ImageRef:   d.ImageRef,
		CreatedAt:  "2024-01-01T00:00:00.000Z",
		Annotation: d.Annotation,
	}, nil
}

func TestNewWorkflow(t *testing.T) {
	camera := mock.NewMockCamera()
	creator := &fakeCreator{}

	t.Run("valid configuration", func(t *testing.T) {
		w, err := NewWorkflow(camera, creator)
		require.NoError(t, err)
		assert.Equal(t, Framing, w.State())
	})

	t.Run("nil camera", func(t *testing.T) {
		_, err := NewWorkflow(nil, creator)
		assert.Equal(t, ErrCameraRequired, err)
	})

	t.Run("nil creator", func(t *testing.T) {
		_, err := NewWorkflow(camera, nil)
		assert.Equal(t, ErrCreatorRequired, err)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		w, err := NewWorkflow(camera, creator, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, w)
	})
}

func TestCapture(t *testing.T) {
	w, err := NewWorkflow(mock.NewMockCamera("caps/1.jpg"), &fakeCreator{})
	require.NoError(t, err)

	ref, err := w.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "caps/1.jpg", ref)
	assert.Equal(t, Annotating, w.State())
	assert.Equal(t, core.Draft{ImageRef: "caps/1.jpg"}, w.Draft())

	_, err = w.Capture(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCapture_Failures(t *testing.T) {
	tests := []struct {
		name string
		fn   func(context.Context) (string, error)
	}{
		{"camera error", func(context.Context) (string, error) { return "", errors.New("lens cap on") }},
		{"no image", func(context.Context) (string, error) { return "", nil }},
		{"blank image", func(context.Context) (string, error) { return "  ", nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := mock.NewMockCamera().WithCaptureFunc(tt.fn)
			w, err := NewWorkflow(camera, &fakeCreator{})
			require.NoError(t, err)

			_, err = w.Capture(context.Background())
			assert.ErrorIs(t, err, ErrCapture)
			assert.Equal(t, Framing, w.State())
			assert.Equal(t, 1, camera.CallCount())
		})
	}
}

func TestAnnotateAndSetField(t *testing.T) {
	w, err := NewWorkflow(mock.NewMockCamera(), &fakeCreator{})
	require.NoError(t, err)

	assert.ErrorIs(t, w.Annotate(core.Annotation{Name: "x"}), ErrInvalidTransition)
	assert.ErrorIs(t, w.SetField(FieldName, "x"), ErrInvalidTransition)

	_, err = w.Capture(context.Background())
	require.NoError(t, err)

	require.NoError(t, w.Annotate(core.Annotation{Name: "Tyskie", Brewery: "KP"}))
	require.NoError(t, w.SetField(FieldAlcoholPercentage, "5,2"))
	require.NoError(t, w.SetField(FieldProductionYear, "2021"))
	require.NoError(t, w.SetField(FieldColor, "gold"))

	assert.Equal(t, core.Annotation{
		Name:              "Tyskie",
		Brewery:           "KP",
		AlcoholPercentage: "5,2",
		Color:             "gold",
		ProductionYear:    "2021",
	}, w.Draft().Annotation)

	assert.ErrorIs(t, w.SetField(Field("abv"), "5"), ErrUnknownField)
}

func TestParseField(t *testing.T) {
	f, err := ParseField("Brewery")
	require.NoError(t, err)
	assert.Equal(t, FieldBrewery, f)

	f, err = ParseField("alcoholpercentage")
	require.NoError(t, err)
	assert.Equal(t, FieldAlcoholPercentage, f)

	_, err = ParseField("abv")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldSet(t *testing.T) {
	var a core.Annotation
	for _, f := range Fields {
		require.NoError(t, f.Set(&a, string(f)))
	}
	assert.Equal(t, core.Annotation{
		Name:              "name",
		Brewery:           "brewery",
		AlcoholPercentage: "alcoholPercentage",
		Color:             "color",
		ProductionYear:    "productionYear",
		Country:           "country",
		Type:              "type",
	}, a)

	assert.ErrorIs(t, Field("abv").Set(&a, "5"), ErrUnknownField)
}

func TestPickCountry(t *testing.T) {
	var during State
	var w *Workflow
	picker := mock.NewMockPicker().WithPickFunc(func(_ context.Context, options []string) (string, bool, error) {
		during = w.State()
		return options[1], true, nil
	})

	w, err := NewWorkflow(mock.NewMockCamera(), &fakeCreator{}, WithPicker(picker))
	require.NoError(t, err)
	_, err = w.Capture(context.Background())
	require.NoError(t, err)

	choice, ok, err := w.PickCountry(context.Background(), []string{"Germany", "Poland"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Poland", choice)
	assert.Equal(t, PickingCountry, during)
	assert.Equal(t, Annotating, w.State())
	assert.Equal(t, "Poland", w.Draft().Country)
}

func TestPickType(t *testing.T) {
	picker := mock.NewMockPicker("Porter")
	w, err := NewWorkflow(mock.NewMockCamera(), &fakeCreator{}, WithPicker(picker))
	require.NoError(t, err)
	_, err = w.Capture(context.Background())
	require.NoError(t, err)

	_, ok, err := w.PickType(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Porter", w.Draft().Type)
	assert.Equal(t, [][]string{core.BeerTypes}, picker.Offered())
}

func TestPick_DismissedIsNoop(t *testing.T) {
	picker := mock.NewMockPicker("Lager", "")
	w, err := NewWorkflow(mock.NewMockCamera(), &fakeCreator{}, WithPicker(picker))
	require.NoError(t, err)
	_, err = w.Capture(context.Background())
	require.NoError(t, err)

	_, _, err = w.PickType(context.Background())
	require.NoError(t, err)

	_, ok, err := w.PickType(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Lager", w.Draft().Type)
	assert.Equal(t, Annotating, w.State())
}

func TestPick_ErrorRestoresAnnotating(t *testing.T) {
	picker := mock.NewMockPicker().WithPickFunc(func(context.Context, []string) (string, bool, error) {
		return "", false, errors.New("widget crashed")
	})
	w, err := NewWorkflow(mock.NewMockCamera(), &fakeCreator{}, WithPicker(picker))
	require.NoError(t, err)
	_, err = w.Capture(context.Background())
	require.NoError(t, err)

	_, _, err = w.PickCountry(context.Background(), []string{"Poland"})
	assert.Error(t, err)
	assert.Equal(t, Annotating, w.State())
}

func TestPick_InvalidStates(t *testing.T) {
	w, err := NewWorkflow(mock.NewMockCamera(), &fakeCreator{})
	require.NoError(t, err)

	_, _, err = w.PickType(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = w.Capture(context.Background())
	require.NoError(t, err)

	// No picker configured
	_, _, err = w.PickType(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, Annotating, w.State())
}

func TestPick_BlocksOtherOperations(t *testing.T) {
	var w *Workflow
	var commitErr error
	picker := mock.NewMockPicker().WithPickFunc(func(ctx context.Context, options []string) (string, bool, error) {
		_, commitErr = w.Commit(ctx)
		return "", false, nil
	})
	w, err := NewWorkflow(mock.NewMockCamera(), &fakeCreator{}, WithPicker(picker))
	require.NoError(t, err)
	_, err = w.Capture(context.Background())
	require.NoError(t, err)

	_, _, err = w.PickType(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, commitErr, ErrInvalidTransition)
}

func TestCommit(t *testing.T) {
	creator := &fakeCreator{}
	var committed []core.CatalogEntry
	w, err := NewWorkflow(mock.NewMockCamera("caps/1.jpg"), creator,
		WithOnCommit(func(e core.CatalogEntry) { committed = append(committed, e) }))
	require.NoError(t, err)

	_, err = w.Commit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = w.Capture(context.Background())
	require.NoError(t, err)
	require.NoError(t, w.SetField(FieldName, "Tyskie"))

	entry, err := w.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tyskie", entry.Name)
	assert.Equal(t, "caps/1.jpg", entry.ImageRef)

	assert.Equal(t, Framing, w.State())
	assert.Equal(t, core.Draft{}, w.Draft())
	assert.Equal(t, []core.CatalogEntry{entry}, committed)
	require.Len(t, creator.drafts, 1)
}

func TestCommit_FailureKeepsForm(t *testing.T) {
	creator := &fakeCreator{err: catalog.ErrPersist}
	called := false
	w, err := NewWorkflow(mock.NewMockCamera("caps/1.jpg"), creator,
		WithOnCommit(func(core.CatalogEntry) { called = true }))
	require.NoError(t, err)

	_, err = w.Capture(context.Background())
	require.NoError(t, err)
	require.NoError(t, w.SetField(FieldName, "Tyskie"))

	_, err = w.Commit(context.Background())
	assert.ErrorIs(t, err, catalog.ErrPersist)
	assert.Equal(t, Annotating, w.State())
	assert.Equal(t, "Tyskie", w.Draft().Name)
	assert.False(t, called)

	creator.err = nil
	_, err = w.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Framing, w.State())
}

func TestDiscard(t *testing.T) {
	creator := &fakeCreator{}
	w, err := NewWorkflow(mock.NewMockCamera(), creator)
	require.NoError(t, err)

	assert.ErrorIs(t, w.Discard(), ErrInvalidTransition)

	_, err = w.Capture(context.Background())
	require.NoError(t, err)
	require.NoError(t, w.SetField(FieldName, "mistake"))

	require.NoError(t, w.Discard())
	assert.Equal(t, Framing, w.State())
	assert.Equal(t, core.Draft{}, w.Draft())
	assert.Empty(t, creator.drafts)
}

func TestWorkflow_WithCatalog(t *testing.T) {
	kv, _, backend, err := badger.NewMemoryKV()
	require.NoError(t, err)
	defer backend.Close()

	c, err := catalog.New(storage.NewRecordStore(kv))
	require.NoError(t, err)

	w, err := NewWorkflow(mock.NewMockCamera(), c, WithPicker(mock.NewMockPicker("Poland", "Lager")))
	require.NoError(t, err)

	ctx := context.Background()
	for range 2 {
		_, err = w.Capture(ctx)
		require.NoError(t, err)
		_, _, err = w.PickCountry(ctx, []string{"Germany", "Poland"})
		require.NoError(t, err)
		_, _, err = w.PickType(ctx)
		require.NoError(t, err)
		_, err = w.Commit(ctx)
		require.NoError(t, err)
	}

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Poland", entries[0].Country)
	assert.Equal(t, "Lager", entries[0].Type)
	assert.Equal(t, "mock://photo/1", entries[0].ImageRef)
	// Script exhausted: the picker falls back to the first option
	assert.Equal(t, "Germany", entries[1].Country)
	assert.Equal(t, core.BeerTypes[0], entries[1].Type)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "framing", Framing.String())
	assert.Equal(t, "picking-type", PickingType.String())
}
