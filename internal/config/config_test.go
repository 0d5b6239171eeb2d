package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/parasplit/segment"
	"github.com/npillmayer/parasplit/uax11"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Segmenter.MinWidth != segment.DefaultMinWidth {
		t.Errorf("Segmenter.MinWidth = %d", cfg.Segmenter.MinWidth)
	}
	if cfg.Segmenter.NoSpaces != nil {
		t.Error("Segmenter.NoSpaces should default to unset")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Point XDG to an empty dir so no config file is found
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Segmenter.MinWidth != segment.DefaultMinWidth {
		t.Errorf("Segmenter.MinWidth = %d", cfg.Segmenter.MinWidth)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(xdg, "parasplit")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}

	tomlContent := `[segmenter]
no_spaces = true
locale = "ja-JP"
min_width = 4
abbreviations = ["pcs", "approx."]
terminators = ";"
`
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(tomlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Segmenter.NoSpaces == nil || !*cfg.Segmenter.NoSpaces {
		t.Error("Segmenter.NoSpaces should be true")
	}
	if cfg.Segmenter.MinWidth != 4 {
		t.Errorf("Segmenter.MinWidth = %d", cfg.Segmenter.MinWidth)
	}
	if len(cfg.Segmenter.Abbreviations) != 2 {
		t.Errorf("Segmenter.Abbreviations = %v", cfg.Segmenter.Abbreviations)
	}
	if cfg.Segmenter.Terminators != ";" {
		t.Errorf("Segmenter.Terminators = %q", cfg.Segmenter.Terminators)
	}
	if n := len(cfg.Options()); n != 4 {
		t.Errorf("expected 4 options, have %d", n)
	}
}

func TestOptionsWidthContext(t *testing.T) {
	text := "∣∣∣∣. This is the second sentence."
	cfg := DefaultConfig()
	cfg.Segmenter.Locale = "en-US"
	if n := len(segment.NewParagraph(text, false, cfg.Options()...).Split()); n != 1 {
		t.Errorf("expected 1 sentence for locale en-US, have %d", n)
	}
	cfg.Segmenter.Locale = "ja-JP"
	if n := len(segment.NewParagraph(text, false, cfg.Options()...).Split()); n != 2 {
		t.Errorf("expected 2 sentences for locale ja-JP, have %d", n)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[segmenter]\nmin_width = -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, have %v", err)
	}

	if err := os.WriteFile(path, []byte("[segmenter\nmin_width = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed TOML")
	}

	cfg := DefaultConfig()
	cfg.Segmenter.Terminators = "a"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected letter terminator to be invalid, have %v", err)
	}
}

func TestNoInterSentenceSpaces(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		locale   string
		noSpaces bool
	}{
		{"en-US", false},
		{"zh-TW", true},
		{"zh-CN", true},
		{"ja-JP", true},
		{"ko-KR", false},
		{"th-TH", false},
	}
	for _, test := range tests {
		ctx := uax11.ContextFromLocale(test.locale)
		if got := cfg.NoInterSentenceSpaces(ctx); got != test.noSpaces {
			t.Errorf("NoInterSentenceSpaces(%s) = %v, want %v", test.locale, got, test.noSpaces)
		}
	}
	forced := true
	cfg.Segmenter.NoSpaces = &forced
	if !cfg.NoInterSentenceSpaces(uax11.LatinContext) {
		t.Error("configured NoSpaces should win over locale")
	}
}
