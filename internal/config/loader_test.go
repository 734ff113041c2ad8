package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("embedded default differs from Default(): (-want, +got)\n%s", diff)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  thrust: 0.8\nstars:\n  max: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Player.Thrust != 0.8 {
		t.Errorf("Thrust = %v, expected 0.8", cfg.Player.Thrust)
	}
	if cfg.Stars.Max != 10 {
		t.Errorf("Stars.Max = %d, expected 10", cfg.Stars.Max)
	}
	// Untouched values keep their defaults
	if cfg.Player.Damping != 0.95 {
		t.Errorf("Damping = %v, expected default 0.95", cfg.Player.Damping)
	}
	if cfg.Window.Title != "Gosu Tutorial Game" {
		t.Errorf("Title = %q, expected default", cfg.Window.Title)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"damping of one never slows down", "player:\n  damping: 1.0\n"},
		{"zero radius", "player:\n  collect_radius: 0\n"},
		{"spawn chance zero", "stars:\n  spawn_one_in: 0\n"},
		{"tint range inverted", "stars:\n  tint_min: 200\n  tint_max: 100\n"},
		{"tint above 255", "stars:\n  tint_max: 300\n"},
		{"zero tiles", "assets:\n  tile_w: 0\n"},
		{"loud", "audio:\n  volume: 2\n"},
		{"no window", "window:\n  width: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("player: [oops")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Stars.Max = 7

	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got.Stars.Max != 7 {
		t.Errorf("Stars.Max = %d, expected 7", got.Stars.Max)
	}
}
