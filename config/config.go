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


// Package config holds capdex runtime configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Environment variable names read by FromEnv.
const (
	EnvDBPath           = "CAPDEX_DB"
	EnvInMemory         = "CAPDEX_IN_MEMORY"
	EnvListenAddr       = "CAPDEX_LISTEN"
	EnvThumbnailSize    = "CAPDEX_THUMBNAIL_SIZE"
	EnvThumbnailQuality = "CAPDEX_THUMBNAIL_QUALITY"
	EnvPoolSize         = "CAPDEX_POOL_SIZE"
	EnvLanguage         = "CAPDEX_LANGUAGE"
	EnvLogLevel         = "CAPDEX_LOG_LEVEL"
)

// Config holds configuration for a capdex database and its services.
type Config struct {
	// DBPath is the directory of the badger database.
	// Ignored when InMemory is set.
	DBPath string

	// InMemory keeps all data in memory. Nothing survives Close.
	InMemory bool

	// ListenAddr is the address the HTTP server binds to.
	// Example: ":8080", "127.0.0.1:9000"
	ListenAddr string

	// ThumbnailSize bounds the longer side of generated thumbnails, in pixels.
	// Default: 256
	ThumbnailSize int

	// ThumbnailQuality is the JPEG quality of thumbnails, 1 to 100.
	// Default: 80
	ThumbnailQuality int

	// PoolSize is the number of thumbnail workers. Zero picks a size from the CPU count.
	PoolSize int

	// Language is the BCP 47 tag used to collate names when sorting.
	// Example: "pl", "en-US". Empty means the root collation order.
	Language string

	// LogLevel is one of debug, info, warn or error.
	LogLevel string
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithDBPath sets the database directory.
func WithDBPath(path string) Option {
	return func(c *Config) {
		c.DBPath = path
	}
}

// WithInMemory keeps the database in memory.
func WithInMemory(inMemory bool) Option {
	return func(c *Config) {
		c.InMemory = inMemory
	}
}

// WithListenAddr sets the HTTP listen address.
func WithListenAddr(addr string) Option {
	return func(c *Config) {
		c.ListenAddr = addr
	}
}

// WithThumbnailSize sets the thumbnail bound in pixels.
func WithThumbnailSize(size int) Option {
	return func(c *Config) {
		c.ThumbnailSize = size
	}
}

// WithThumbnailQuality sets the thumbnail JPEG quality.
func WithThumbnailQuality(quality int) Option {
	return func(c *Config) {
		c.ThumbnailQuality = quality
	}
}

// WithPoolSize sets the number of thumbnail workers.
func WithPoolSize(size int) Option {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithLanguage sets the collation language.
func WithLanguage(tag string) Option {
	return func(c *Config) {
		c.Language = tag
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// DefaultConfig returns a Config with sensible defaults for local use.
func DefaultConfig() *Config {
	return &Config{
		DBPath:           "capdex.db",
		ListenAddr:       ":8080",
		ThumbnailSize:    256,
		ThumbnailQuality: 80,
		LogLevel:         "info",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithDBPath("/var/lib/capdex"),
//	    WithLanguage("pl"),
//	)
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// FromEnv builds a Config from defaults, the given .env files and CAPDEX_*
// environment variables, in increasing precedence. Variables already set in
// the environment win over .env files. Missing files are skipped.
func FromEnv(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	if v, ok := os.LookupEnv(EnvDBPath); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvListenAddr); ok {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv(EnvLanguage); ok {
		cfg.Language = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvInMemory); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvInMemory, err)
		}
		cfg.InMemory = b
	}

	ints := []struct {
		name   string
		target *int
	}{
		{EnvThumbnailSize, &cfg.ThumbnailSize},
		{EnvThumbnailQuality, &cfg.ThumbnailQuality},
		{EnvPoolSize, &cfg.PoolSize},
	}
	for _, i := range ints {
		v, ok := os.LookupEnv(i.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", i.name, err)
		}
		*i.target = n
	}

	return cfg, nil
}

// Normalize ensures the configuration is in a canonical form.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Language = strings.TrimSpace(c.Language)
	c.DBPath = strings.TrimSpace(c.DBPath)
}

// LanguageTag returns the parsed collation language.
// An empty Language yields language.Und.
func (c *Config) LanguageTag() (language.Tag, error) {
	if c.Language == "" {
		return language.Und, nil
	}
	return language.Parse(c.Language)
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if !c.InMemory && c.DBPath == "" {
		return errors.New("config: DBPath is required unless InMemory is set")
	}
	if c.ThumbnailSize < 1 {
		return errors.New("config: ThumbnailSize must be positive")
	}
	if c.ThumbnailQuality < 1 || c.ThumbnailQuality > 100 {
		return errors.New("config: ThumbnailQuality must be between 1 and 100")
	}
	if c.PoolSize < 0 {
		return errors.New("config: PoolSize cannot be negative")
	}
	if _, err := c.LanguageTag(); err != nil {
		return fmt.Errorf("config: invalid Language %q: %w", c.Language, err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown LogLevel %q", c.LogLevel)
	}
	return nil
}
