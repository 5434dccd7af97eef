package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded YAML drifted from DefaultSnakeConfig()\nyaml: %+v\ngo:   %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Cols() != 30 || cfg.Board.Rows() != 20 {
		t.Errorf("board = %dx%d cells, expected 30x20", cfg.Board.Cols(), cfg.Board.Rows())
	}
	if cfg.Food.Lifetime != 7*time.Second {
		t.Errorf("lifetime = %v, expected 7s", cfg.Food.Lifetime)
	}
}

func TestLoadSnakeUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("snake:\n  initial_speed: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Snake.InitialSpeed != 8 {
		t.Errorf("initial speed = %v, expected override 8", cfg.Snake.InitialSpeed)
	}
	if cfg.Board.CellSize != 40 {
		t.Errorf("unset keys should keep defaults, cell size = %d", cfg.Board.CellSize)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "food:\n  lifetime: 3s\n  max_live: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(custom) failed: %v", err)
	}
	if cfg.Food.Lifetime != 3*time.Second || cfg.Food.MaxLive != 4 {
		t.Errorf("custom values not applied: %+v", cfg.Food)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  cell_size: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(bad)
	if err == nil || !strings.Contains(err.Error(), "multiple of cell size") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"zero cell", func(c *SnakeConfig) { c.Board.CellSize = 0 }},
		{"empty body", func(c *SnakeConfig) { c.Snake.Body = nil }},
		{"off grid body", func(c *SnakeConfig) { c.Snake.Body[0] = CellPos{X: 13, Y: 200} }},
		{"bad direction", func(c *SnakeConfig) { c.Snake.Direction = "north" }},
		{"slow start", func(c *SnakeConfig) { c.Snake.InitialSpeed = 0.5 }},
		{"spawn chance", func(c *SnakeConfig) { c.Food.SpawnChance = 1.5 }},
		{"weights overflow", func(c *SnakeConfig) { c.Food.Gold.Weight = 0.9 }},
		{"bad color", func(c *SnakeConfig) { c.Palette.SnakeHead = "purple" }},
		{"negative grow", func(c *SnakeConfig) { c.Food.Gold.Grow = -1 }},
		{"no free food color", func(c *SnakeConfig) {
			c.Food.NormalChannelMin = 255
			c.Palette.SnakeBody = "#ffffff"
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject this config")
			}
		})
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	// A single-color range is fine while that color is not reserved.
	white := DefaultSnakeConfig()
	white.Food.NormalChannelMin = 255
	if err := white.Validate(); err != nil {
		t.Errorf("white-only normal food should validate: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#6a5acd")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c.R != 106 || c.G != 90 || c.B != 205 {
		t.Errorf("ParseColor = %+v, expected (106,90,205)", c)
	}
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("invalid hex should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "lifetime: 7s") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("marshalled config does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Error("marshal/parse changed the configuration")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.snake/highscore.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".snake", "highscore.txt") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got, _ := ExpandPath("rel/path"); got != "rel/path" {
		t.Errorf("relative paths should pass through, got %q", got)
	}
}
