// Package config reads tuning parameters for sentence segmentation from a
// TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/parasplit/segment"
	"github.com/npillmayer/parasplit/uax11"
)

// ErrInvalidConfig is returned for configurations with values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all parasplit configuration.
type Config struct {
	Segmenter SegmenterConfig `toml:"segmenter"`
}

// SegmenterConfig tunes the splitting of paragraphs.
type SegmenterConfig struct {
	// NoSpaces forces the spacing convention; unset means derive it from the locale.
	NoSpaces      *bool    `toml:"no_spaces"`
	Locale        string   `toml:"locale"`
	MinWidth      int      `toml:"min_width"`
	Abbreviations []string `toml:"abbreviations"`
	Terminators   string   `toml:"terminators"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Segmenter: SegmenterConfig{
			MinWidth: segment.DefaultMinWidth,
		},
	}
}

// Load reads config from path. If path is empty, the standard paths are
// tried, falling back to defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		for _, p := range configPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "parasplit", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "parasplit", "config.toml"))
	}

	return paths
}

// Validate checks values for being in range.
func (c Config) Validate() error {
	if c.Segmenter.MinWidth < 0 {
		return fmt.Errorf("%w: min_width must not be negative, is %d", ErrInvalidConfig, c.Segmenter.MinWidth)
	}
	for _, r := range c.Segmenter.Terminators {
		if unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return fmt.Errorf("%w: terminator %#U is not punctuation", ErrInvalidConfig, r)
		}
	}
	for _, a := range c.Segmenter.Abbreviations {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: empty abbreviation", ErrInvalidConfig)
		}
	}
	return nil
}

// WidthContext returns the UAX#11 context for the configured locale.
// Without a locale, the user's environment decides.
func (c Config) WidthContext() *uax11.Context {
	if c.Segmenter.Locale != "" {
		return uax11.ContextFromLocale(c.Segmenter.Locale)
	}
	return uax11.ContextFromEnvironment()
}

// NoInterSentenceSpaces returns the spacing convention, either as configured
// or derived from the script of the locale: Chinese and Japanese text does
// not separate sentences by spaces.
func (c Config) NoInterSentenceSpaces(ctx *uax11.Context) bool {
	if c.Segmenter.NoSpaces != nil {
		return *c.Segmenter.NoSpaces
	}
	if ctx == nil {
		return false
	}
	switch ctx.Script.String() {
	case "Hani", "Hans", "Hant", "Jpan", "Hira", "Kana":
		return true
	}
	return false
}

// Options converts the configuration to segmenter options. A configured
// locale sets the width context of the merge pass.
func (c Config) Options() []segment.Option {
	opts := []segment.Option{segment.WithMinWidth(c.Segmenter.MinWidth)}
	if c.Segmenter.Locale != "" {
		opts = append(opts, segment.WithWidthContext(c.WidthContext()))
	}
	if len(c.Segmenter.Abbreviations) > 0 {
		opts = append(opts, segment.WithAbbreviations(c.Segmenter.Abbreviations...))
	}
	if c.Segmenter.Terminators != "" {
		opts = append(opts, segment.WithTerminators([]rune(c.Segmenter.Terminators)...))
	}
	return opts
}
