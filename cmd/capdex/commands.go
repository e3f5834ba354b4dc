package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/poiesic/capdex/capture"
	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/importer"
	"github.com/poiesic/capdex/search"
	"github.com/poiesic/capdex/server"
	"github.com/poiesic/capdex/stats"
	"github.com/urfave/cli/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// annotationFlagFields maps annotation flags to the fields they set.
var annotationFlagFields = []struct {
	flag  string
	field capture.Field
}{
	{"name", capture.FieldName},
	{"brewery", capture.FieldBrewery},
	{"percentage", capture.FieldAlcoholPercentage},
	{"color", capture.FieldColor},
	{"year", capture.FieldProductionYear},
	{"country", capture.FieldCountry},
	{"type", capture.FieldType},
}

// applyAnnotationFlags copies every annotation flag given on the command line.
func applyAnnotationFlags(c *cli.Context, set func(capture.Field, string) error) error {
	for _, af := range annotationFlagFields {
		if !c.IsSet(af.flag) {
			continue
		}
		if err := set(af.field, c.String(af.flag)); err != nil {
			return err
		}
	}
	return nil
}

func sortKeyNames() string {
	names := make([]string, len(search.SortKeys))
	for i, k := range search.SortKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// unreadableFields names the numeric attributes that are filled in but do
// not parse. Such values are stored as typed and left out of statistics.
func unreadableFields(a core.Annotation) []string {
	var fields []string
	if strings.TrimSpace(a.AlcoholPercentage) != "" {
		if _, err := core.ParsePercentage(a.AlcoholPercentage); err != nil {
			fields = append(fields, string(capture.FieldAlcoholPercentage))
		}
	}
	if strings.TrimSpace(a.ProductionYear) != "" {
		if _, err := core.ParseYear(a.ProductionYear); err != nil {
			fields = append(fields, string(capture.FieldProductionYear))
		}
	}
	return fields
}

func warnUnreadable(a core.Annotation) {
	for _, f := range unreadableFields(a) {
		slog.Warn("value is not a number and will not be counted in statistics", "field", f)
	}
}

func requireArg(c *cli.Context, name string) (string, error) {
	arg := c.Args().First()
	if arg == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return arg, nil
}

func serveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	addr := db.Config().ListenAddr
	if c.IsSet("listen") {
		addr = c.String("listen")
	}

	srv, err := server.New(db, server.WithCORS(c.StringSlice("cors")...))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, addr)
}

func addCommand(c *cli.Context) error {
	photo, err := requireArg(c, "photo path")
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var picker capture.Picker
	if c.Bool("pick-type") || c.Bool("pick-country") {
		picker = newPromptPicker(c.App.Reader, c.App.ErrWriter)
	}

	wf, err := db.NewCaptureWorkflow(fileCamera{path: photo}, picker)
	if err != nil {
		return err
	}

	ctx := c.Context
	if _, err := wf.Capture(ctx); err != nil {
		return err
	}
	if err := applyAnnotationFlags(c, wf.SetField); err != nil {
		return err
	}
	if c.Bool("pick-type") {
		if _, _, err := wf.PickType(ctx); err != nil {
			return err
		}
	}
	if c.Bool("pick-country") {
		if _, _, err := wf.PickCountry(ctx, stats.Countries()); err != nil {
			return err
		}
	}

	warnUnreadable(wf.Draft().Annotation)
	entry, err := wf.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to add cap: %w", err)
	}
	fmt.Fprintln(c.App.Writer, entry.ID)
	return nil
}

func listCommand(c *cli.Context) error {
	key, err := search.ParseSortKey(c.String("sort"))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := db.Search(c.String("query"), key)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return importer.Export(c.App.Writer, entries)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBREWERY\tCOUNTRY\tTYPE\tABV")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Brewery, e.Country, e.Type, e.AlcoholPercentage)
	}
	return tw.Flush()
}

func showCommand(c *cli.Context) error {
	id, err := requireArg(c, "entry id")
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	entry, err := db.Get(id)
	if err != nil {
		return err
	}
	printEntry(c.App.Writer, entry)
	return nil
}

func printEntry(w io.Writer, e core.CatalogEntry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", e.ID)
	fmt.Fprintf(tw, "Image:\t%s\n", e.ImageRef)
	created := e.CreatedAt
	if t, err := e.Created(); err == nil {
		created = t.Local().Format(time.DateTime)
	}
	fmt.Fprintf(tw, "Created:\t%s\n", created)
	fmt.Fprintf(tw, "Name:\t%s\n", e.Name)
	fmt.Fprintf(tw, "Brewery:\t%s\n", e.Brewery)
	fmt.Fprintf(tw, "Alcohol:\t%s\n", e.AlcoholPercentage)
	fmt.Fprintf(tw, "Color:\t%s\n", e.Color)
	fmt.Fprintf(tw, "Year:\t%s\n", e.ProductionYear)
	fmt.Fprintf(tw, "Country:\t%s\n", e.Country)
	fmt.Fprintf(tw, "Type:\t%s\n", e.Type)
	tw.Flush()
}

func editCommand(c *cli.Context) error {
	id, err := requireArg(c, "entry id")
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	entry, err := db.Get(id)
	if err != nil {
		return err
	}

	a := entry.Annotation
	err = applyAnnotationFlags(c, func(f capture.Field, v string) error {
		return f.Set(&a, v)
	})
	if err != nil {
		return err
	}

	warnUnreadable(a)
	updated, err := db.Update(c.Context, id, a)
	if err != nil {
		return fmt.Errorf("failed to update cap: %w", err)
	}
	printEntry(c.App.Writer, updated)
	return nil
}

func deleteCommand(c *cli.Context) error {
	id, err := requireArg(c, "entry id")
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteEntry(c.Context, id); err != nil {
		return fmt.Errorf("failed to delete cap: %w", err)
	}
	return nil
}

// statsReport is the JSON form of the stats command.
type statsReport struct {
	stats.Stats
	Coverage stats.CoverageSummary `json:"coverage"`
	Markers  []stats.Marker        `json:"markers"`
}

func statsCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := db.Stats()
	if err != nil {
		return err
	}

	w := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statsReport{
			Stats:    s,
			Coverage: stats.Coverage(s.ByCountry),
			Markers:  stats.Markers(s.ByCountry),
		})
	}

	cov := stats.Coverage(s.ByCountry)
	fmt.Fprintf(w, "Caps: %d\n", s.Total)
	fmt.Fprintf(w, "Countries: %d of %d (%.1f%%)\n", cov.Countries, stats.RecognizedCountries, cov.Share)

	printTable(w, "Alcohol", s.ByPercentageRange, stats.PercentageRanges)
	if s.Unparsed > 0 {
		fmt.Fprintf(w, "  unreadable  %d\n", s.Unparsed)
	}
	printTable(w, "Country", s.ByCountry, nil)
	printTable(w, "Type", s.ByType, nil)
	printTable(w, "Brewery", s.ByBrewery, nil)
	printTable(w, "Year", s.ByYear, nil)
	printTable(w, "Color", s.ByColor, nil)
	return nil
}

// printTable prints a frequency table, in order if given and by count otherwise.
func printTable(w io.Writer, title string, table stats.FrequencyTable, order []string) {
	total := table.Total()
	if total == 0 {
		return
	}
	buckets := table.Sorted()
	if order != nil {
		buckets = table.Ordered(order)
	}
	fmt.Fprintf(w, "\n%s (%d):\n", title, total)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range buckets {
		fmt.Fprintf(tw, "  %s\t%d\n", b.Key, b.Count)
	}
	tw.Flush()
}

func thumbnailCommand(c *cli.Context) error {
	id, err := requireArg(c, "entry id")
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	thumb, err := db.Thumbnail(c.Context, id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.String("out"), thumb.JPEG, 0o644); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}
	fmt.Fprintf(c.App.ErrWriter, "%dx%d thumbnail written to %s\n", thumb.Width, thumb.Height, c.String("out"))
	return nil
}

func importCommand(c *cli.Context) error {
	src, err := requireArg(c, "input file")
	if err != nil {
		return err
	}
	if c.Int("batch-size") <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if c.Int("max-retries") <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	var r io.Reader = c.App.Reader
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	imp, err := db.NewImporter(
		importer.WithBatchSize(c.Int("batch-size")),
		importer.WithRetryPolicy(importer.RetryPolicy{
			MaxAttempts: c.Int("max-retries"),
			BaseDelay:   c.Duration("retry-delay"),
			Retryable: func(err error) bool {
				return errors.Is(err, catalog.ErrPersist)
			},
		}),
		importer.WithProgress(c.App.ErrWriter),
	)
	if err != nil {
		return err
	}

	report, err := imp.Run(c.Context, r)
	if report != nil {
		fmt.Fprintf(c.App.Writer, "Read %d, imported %d, already present %d, invalid %d\n",
			report.Read, len(report.Imported), len(report.Existing), report.Invalid)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return nil
}

func exportCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := db.Entries()
	if err != nil {
		return err
	}

	dst := c.Args().First()
	if dst == "" || dst == "-" {
		return importer.Export(c.App.Writer, entries)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := importer.Export(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func typesCommand(c *cli.Context) error {
	for _, t := range core.BeerTypes {
		fmt.Fprintln(c.App.Writer, t)
	}
	return nil
}
