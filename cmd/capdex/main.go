// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/capdex"
	"github.com/poiesic/capdex/config"
	"github.com/poiesic/capdex/importer"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "capdex",
		Usage: "Catalog of photographed bottle caps",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{config.EnvLogLevel},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides " + config.EnvDBPath + ")",
			},
			&cli.BoolFlag{
				Name:  "in-memory",
				Usage: "Keep the catalog in memory; nothing is saved",
			},
			&cli.StringFlag{
				Name:  "language",
				Usage: "BCP 47 language used to sort names (overrides " + config.EnvLanguage + ")",
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load settings from a .env file (repeatable)",
				Value: cli.NewStringSlice(".env"),
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the catalog over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Address to listen on (overrides " + config.EnvListenAddr + ")",
					},
					&cli.StringSliceFlag{
						Name:  "cors",
						Usage: "Allowed CORS origin (repeatable)",
					},
				},
			},
			{
				Name:      "add",
				Usage:     "Catalog a new cap from a photo",
				ArgsUsage: "<photo>",
				Action:    addCommand,
				Flags: append(annotationFlags(),
					&cli.BoolFlag{
						Name:  "pick-type",
						Usage: "Choose the beer type from a list",
					},
					&cli.BoolFlag{
						Name:  "pick-country",
						Usage: "Choose the country from a list",
					},
				),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List cataloged caps",
				Action:  listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Only show caps whose text fields contain this",
					},
					&cli.StringFlag{
						Name:    "sort",
						Aliases: []string{"s"},
						Usage:   "Sort order (" + sortKeyNames() + ")",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print entries as JSON",
					},
				},
			},
			{
				Name:      "show",
				Usage:     "Show one cap",
				ArgsUsage: "<id>",
				Action:    showCommand,
			},
			{
				Name:      "edit",
				Usage:     "Change the annotation of a cap",
				ArgsUsage: "<id>",
				Action:    editCommand,
				Flags:     annotationFlags(),
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Remove a cap from the catalog",
				ArgsUsage: "<id>",
				Action:    deleteCommand,
			},
			{
				Name:   "stats",
				Usage:  "Summarize the collection",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print statistics as JSON",
					},
				},
			},
			{
				Name:      "thumbnail",
				Usage:     "Write the thumbnail of a cap as JPEG",
				ArgsUsage: "<id>",
				Action:    thumbnailCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output file",
						Required: true,
					},
				},
			},
			{
				Name:      "import",
				Usage:     "Add caps from an exported JSON file",
				ArgsUsage: "<file|->",
				Action:    importCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries to write in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed writes",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: importer.DefaultRetryPolicy.BaseDelay,
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Write every cap as JSON",
				ArgsUsage: "[file]",
				Action:    exportCommand,
			},
			{
				Name:   "types",
				Usage:  "List the beer types",
				Action: typesCommand,
			},
		},
	}
}

func annotationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Beer name"},
		&cli.StringFlag{Name: "brewery", Usage: "Brewery"},
		&cli.StringFlag{Name: "percentage", Aliases: []string{"abv"}, Usage: "Alcohol percentage, e.g. 5.6"},
		&cli.StringFlag{Name: "color", Usage: "Cap color"},
		&cli.StringFlag{Name: "year", Usage: "Production year"},
		&cli.StringFlag{Name: "country", Usage: "Country of origin"},
		&cli.StringFlag{Name: "type", Usage: "Beer type (see 'capdex types')"},
	}
}

// loadConfig reads configuration from .env files and the environment,
// then applies command line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.FromEnv(c.StringSlice("env-file")...)
	if err != nil {
		return nil, err
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("in-memory") {
		cfg.InMemory = c.Bool("in-memory")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if level, err := parseLevel(cfg.LogLevel); err == nil {
		logLevel.Set(level)
	}
	return cfg, nil
}

func openDatabase(c *cli.Context) (*capdex.Database, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	db, err := capdex.Open(cfg, capdex.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// logLevel is shared by the default logger so the level can be raised or
// lowered once configuration files have been read.
var logLevel = new(slog.LevelVar)

func parseLevel(s string) (slog.Level, error) {
	levelStr := strings.ToLower(strings.TrimSpace(s))

	switch levelStr {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}
}

func setupLogger(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	logLevel.Set(level)

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	return nil
}
