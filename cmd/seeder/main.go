package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	jsoniter "github.com/json-iterator/go"
	"github.com/poiesic/capdex"
	"github.com/poiesic/capdex/capture"
	"github.com/poiesic/capdex/capture/mock"
	"github.com/poiesic/capdex/config"
	"github.com/poiesic/capdex/core"
)

var samples = []core.Annotation{
	{Name: "Tyskie Gronie", Brewery: "Tyskie Browary Książęce", AlcoholPercentage: "5.2", Color: "red", ProductionYear: "2021", Country: "Poland", Type: "Lager"},
	{Name: "Żywiec", Brewery: "Grupa Żywiec", AlcoholPercentage: "5,6", Color: "green", ProductionYear: "2020", Country: "Poland", Type: "Lager"},
	{Name: "Łomża Export", Brewery: "Van Pur", AlcoholPercentage: "5.7%", Color: "blue", ProductionYear: "2019", Country: "Poland", Type: "Lager"},
	{Name: "Lech Free", Brewery: "Kompania Piwowarska", AlcoholPercentage: "0", Color: "green", ProductionYear: "2022", Country: "Poland", Type: "Bezalkoholowe"},
	{Name: "Okocim Porter", Brewery: "Okocim", AlcoholPercentage: "8.1", Color: "black", ProductionYear: "2018", Country: "Poland", Type: "Porter"},
	{Name: "Beck's", Brewery: "Brauerei Beck", AlcoholPercentage: "4.9", Color: "green", ProductionYear: "2021", Country: "Germany", Type: "Pilsner"},
	{Name: "Paulaner Hefe-Weißbier", Brewery: "Paulaner", AlcoholPercentage: "5.5", Color: "blue", ProductionYear: "2020", Country: "Germany", Type: "Pszeniczne"},
	{Name: "Bitburger", Brewery: "Bitburger Brauerei", AlcoholPercentage: "4.8", Color: "gold", ProductionYear: "2017", Country: "Germany", Type: "Pilsner"},
	{Name: "Pilsner Urquell", Brewery: "Plzeňský Prazdroj", AlcoholPercentage: "4.4", Color: "gold", ProductionYear: "2021", Country: "Czech Republic", Type: "Pilsner"},
	{Name: "Budweiser Budvar", Brewery: "Budějovický Budvar", AlcoholPercentage: "5", Color: "red", ProductionYear: "2019", Country: "Czech Republic", Type: "Lager"},
	{Name: "Heineken", Brewery: "Heineken", AlcoholPercentage: "5", Color: "green", ProductionYear: "2022", Country: "Netherlands", Type: "Lager"},
	{Name: "Guinness Draught", Brewery: "St. James's Gate", AlcoholPercentage: "4.2", Color: "black", ProductionYear: "2020", Country: "Ireland", Type: "Ciemne"},
	{Name: "Duvel", Brewery: "Duvel Moortgat", AlcoholPercentage: "8.5", Color: "red", ProductionYear: "2018", Country: "Belgium", Type: "Inne"},
	{Name: "Hoegaarden Rosée", Brewery: "Hoegaarden", AlcoholPercentage: "3", Color: "pink", ProductionYear: "2021", Country: "Belgium", Type: "Smakowe"},
	{Name: "Sierra Nevada Pale Ale", Brewery: "Sierra Nevada", AlcoholPercentage: "5.6", Color: "green", ProductionYear: "2023", Country: "United States", Type: "IPA"},
	{Name: "Brewdog Punk IPA", Brewery: "BrewDog", AlcoholPercentage: "5.4", Color: "blue", ProductionYear: "2023", Country: "United Kingdom", Type: "Kraftowe"},
	{Name: "Asahi Super Dry", Brewery: "Asahi", AlcoholPercentage: "5", Color: "silver", ProductionYear: "2022", Country: "Japan", Type: "Lager"},
	{Name: "Corona Extra", Brewery: "Cervecería Modelo", AlcoholPercentage: "4.5", Color: "gold", ProductionYear: "2020", Country: "Mexico", Type: "Lager"},
}

var capColors = map[string]color.NRGBA{
	"red":    {R: 200, G: 30, B: 30, A: 255},
	"green":  {R: 20, G: 140, B: 60, A: 255},
	"blue":   {R: 30, G: 60, B: 180, A: 255},
	"black":  {R: 20, G: 20, B: 20, A: 255},
	"gold":   {R: 212, G: 175, B: 55, A: 255},
	"silver": {R: 192, G: 192, B: 192, A: 255},
	"pink":   {R: 240, G: 150, B: 180, A: 255},
}

var (
	dbPath    = flag.String("db", "./capdex_db", "database directory")
	seedFile  = flag.String("src", "", "JSON file of annotations to seed instead of the built-in samples")
	photosDir = flag.String("photos", "./seed_photos", "directory for generated cap photos")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// samplesFromFile returns an iterator over the annotations in a JSON file.
func samplesFromFile(filename string) (iter.Seq[core.Annotation], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var annotations []core.Annotation
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &annotations); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return samplesFromSlice(annotations), nil
}

// samplesFromSlice returns an iterator over a slice of annotations.
func samplesFromSlice(annotations []core.Annotation) iter.Seq[core.Annotation] {
	return func(yield func(core.Annotation) bool) {
		for _, a := range annotations {
			if !yield(a) {
				return
			}
		}
	}
}

// renderPhotos writes a plain photo for each annotation, tinted by its cap color.
func renderPhotos(dir string, source iter.Seq[core.Annotation]) ([]string, []core.Annotation, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	var paths []string
	var annotations []core.Annotation
	for a := range source {
		c, ok := capColors[strings.ToLower(a.Color)]
		if !ok {
			c = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
		}
		img := imaging.New(480, 480, color.NRGBA{R: 235, G: 230, B: 220, A: 255})
		img = imaging.OverlayCenter(img, imaging.New(360, 360, c), 1.0)

		path, err := filepath.Abs(filepath.Join(dir, fmt.Sprintf("cap-%03d.png", len(paths)+1)))
		if err != nil {
			return nil, nil, err
		}
		if err := imaging.Save(img, path); err != nil {
			return nil, nil, err
		}
		paths = append(paths, path)
		annotations = append(annotations, a)
	}
	return paths, annotations, nil
}

// seed runs every annotation through the capture workflow. The beer type is
// chosen from the type list rather than typed in.
func seed(ctx context.Context, wf *capture.Workflow, annotations []core.Annotation) (int, error) {
	n := 0
	for _, a := range annotations {
		if _, err := wf.Capture(ctx); err != nil {
			return n, err
		}
		typ := a.Type
		a.Type = ""
		if err := wf.Annotate(a); err != nil {
			return n, err
		}
		if typ != "" {
			if _, _, err := wf.PickType(ctx); err != nil {
				return n, err
			}
		}
		if _, err := wf.Commit(ctx); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func main() {
	source := samplesFromSlice(samples)
	if *seedFile != "" {
		var err error
		source, err = samplesFromFile(*seedFile)
		if err != nil {
			panic(err)
		}
	}

	paths, annotations, err := renderPhotos(*photosDir, source)
	if err != nil {
		panic(err)
	}

	db, err := capdex.Open(config.NewConfig(config.WithDBPath(*dbPath)))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	var types []string
	for _, a := range annotations {
		if a.Type != "" {
			types = append(types, a.Type)
		}
	}

	wf, err := db.NewCaptureWorkflow(mock.NewMockCamera(paths...), mock.NewMockPicker(types...))
	if err != nil {
		panic(err)
	}

	n, err := seed(context.Background(), wf, annotations)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded catalog", "db", *dbPath, "caps", n)
}
