package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/capdex/core"
)

// State is a workflow state.
type State int

const (
	// Framing waits for a photo to be taken.
	Framing State = iota
	// Annotating has a photo and an editable attribute form.
	Annotating
	// PickingCountry is Annotating with the country list open.
	PickingCountry
	// PickingType is Annotating with the type list open.
	PickingType
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Framing:
		return "framing"
	case Annotating:
		return "annotating"
	case PickingCountry:
		return "picking-country"
	case PickingType:
		return "picking-type"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Field names an editable attribute.
type Field string

const (
	FieldName              Field = "name"
	FieldBrewery           Field = "brewery"
	FieldAlcoholPercentage Field = "alcoholPercentage"
	FieldColor             Field = "color"
	FieldProductionYear    Field = "productionYear"
	FieldCountry           Field = "country"
	FieldType              Field = "type"
)

// Fields lists every editable attribute in form order.
var Fields = []Field{
	FieldName, FieldBrewery, FieldAlcoholPercentage, FieldColor,
	FieldProductionYear, FieldCountry, FieldType,
}

// ParseField parses a field name, ignoring case.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) target(a *core.Annotation) *string {
	switch f {
	case FieldName:
		return &a.Name
	case FieldBrewery:
		return &a.Brewery
	case FieldAlcoholPercentage:
		return &a.AlcoholPercentage
	case FieldColor:
		return &a.Color
	case FieldProductionYear:
		return &a.ProductionYear
	case FieldCountry:
		return &a.Country
	case FieldType:
		return &a.Type
	default:
		return nil
	}
}

// Set assigns value to the attribute f names.
func (f Field) Set(a *core.Annotation, value string) error {
	target := f.target(a)
	if target == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*target = value
	return nil
}

// Workflow drives a single capture from photo to catalog entry.
// A Workflow is safe for concurrent use; operations that are not valid in
// the current state return ErrInvalidTransition.
type Workflow struct {
	camera   Camera
	picker   Picker
	creator  Creator
	onCommit func(core.CatalogEntry)
	logger   *slog.Logger

	mu    sync.Mutex
	state State
	draft core.Draft
}

// Option configures a Workflow.
type Option func(*Workflow) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workflow) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// WithPicker sets the picker used by PickCountry and PickType.
// Without one, both return ErrInvalidTransition.
func WithPicker(picker Picker) Option {
	return func(w *Workflow) error {
		w.picker = picker
		return nil
	}
}

// WithOnCommit registers a function called with every committed entry.
func WithOnCommit(fn func(core.CatalogEntry)) Option {
	return func(w *Workflow) error {
		w.onCommit = fn
		return nil
	}
}

// NewWorkflow creates a workflow in the Framing state.
func NewWorkflow(camera Camera, creator Creator, opts ...Option) (*Workflow, error) {
	if camera == nil {
		return nil, ErrCameraRequired
	}
	if creator == nil {
		return nil, ErrCreatorRequired
	}

	w := &Workflow{
		camera:  camera,
		creator: creator,
		logger:  slog.Default(),
		state:   Framing,
	}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	w.logger = w.logger.With("component", "capture")

	return w, nil
}

// State returns the current state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft returns the draft being annotated.
func (w *Workflow) Draft() core.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *Workflow) requireLocked(op string, want State) error {
	if w.state != want {
		return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, w.state)
	}
	return nil
}

// Capture takes a photo and moves to Annotating with an empty form.
// On failure the workflow stays in Framing.
func (w *Workflow) Capture(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireLocked("capture", Framing); err != nil {
		return "", err
	}

	ref, err := w.camera.Capture(ctx)
	if err != nil {
		w.logger.Error("error capturing photo", "err", err)
		return "", fmt.Errorf("%w: %w", ErrCapture, err)
	}
	if strings.TrimSpace(ref) == "" {
		w.logger.Error("camera returned no photo")
		return "", fmt.Errorf("%w: no image reference", ErrCapture)
	}

	w.draft = core.Draft{ImageRef: ref}
	w.state = Annotating
	w.logger.Debug("photo captured", "imageRef", ref)
	return ref, nil
}

// Annotate replaces every attribute on the form.
func (w *Workflow) Annotate(a core.Annotation) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireLocked("annotate", Annotating); err != nil {
		return err
	}
	w.draft.Annotation = a
	return nil
}

// SetField sets one attribute on the form.
func (w *Workflow) SetField(field Field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireLocked("set field", Annotating); err != nil {
		return err
	}
	return field.Set(&w.draft.Annotation, value)
}

// PickCountry opens the country list and sets the country if one is chosen.
func (w *Workflow) PickCountry(ctx context.Context, countries []string) (string, bool, error) {
	return w.pick(ctx, PickingCountry, FieldCountry, countries)
}

// PickType opens the beer type list and sets the type if one is chosen.
func (w *Workflow) PickType(ctx context.Context) (string, bool, error) {
	return w.pick(ctx, PickingType, FieldType, core.BeerTypes)
}

func (w *Workflow) pick(ctx context.Context, sub State, field Field, options []string) (string, bool, error) {
	w.mu.Lock()
	if err := w.requireLocked("pick "+string(field), Annotating); err != nil {
		w.mu.Unlock()
		return "", false, err
	}
	if w.picker == nil {
		w.mu.Unlock()
		return "", false, fmt.Errorf("%w: no picker configured", ErrInvalidTransition)
	}
	w.state = sub
	w.mu.Unlock()

	// The picker may block on user input, so it runs unlocked.
	choice, ok, err := w.picker.Pick(ctx, options)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = Annotating

	if err != nil {
		w.logger.Warn("picker failed", "field", field, "err", err)
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	*field.target(&w.draft.Annotation) = choice
	return choice, true, nil
}

// Commit creates the catalog entry and returns to Framing.
// If creation fails the workflow stays in Annotating with the form intact.
func (w *Workflow) Commit(ctx context.Context) (core.CatalogEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireLocked("commit", Annotating); err != nil {
		return core.CatalogEntry{}, err
	}

	entry, err := w.creator.Create(ctx, w.draft)
	if err != nil {
		w.logger.Error("error committing capture", "imageRef", w.draft.ImageRef, "err", err)
		return core.CatalogEntry{}, err
	}

	w.draft = core.Draft{}
	w.state = Framing
	w.logger.Info("capture committed", "id", entry.ID)

	if w.onCommit != nil {
		w.onCommit(entry)
	}
	return entry, nil
}

// Discard drops the photo and form and returns to Framing.
func (w *Workflow) Discard() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireLocked("discard", Annotating); err != nil {
		return err
	}
	w.logger.Debug("capture discarded", "imageRef", w.draft.ImageRef)
	w.draft = core.Draft{}
	w.state = Framing
	return nil
}
