package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"frame_rate": "250ms",
		"pattern": "glider",
		"origin_x": -4,
		"max_generations": 10,
		"viewport": {"x0": 5, "x1": -5, "y0": 0, "y1": 3}
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if time.Duration(cfg.FrameRate) != 250*time.Millisecond {
		t.Fatalf("frame rate = %s", time.Duration(cfg.FrameRate))
	}
	if cfg.Pattern != "glider" || cfg.OriginX != -4 || cfg.MaxGenerations != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Viewport != (ViewportConfig{X0: 5, X1: -5, Y0: 0, Y1: 3}) {
		t.Fatalf("unexpected viewport %+v", cfg.Viewport)
	}
	if !cfg.ClearScreen || cfg.LogLevel != "info" {
		t.Fatalf("defaults were not kept: %+v", cfg)
	}
}

func TestLoadConfigAcceptsNanoseconds(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"frame_rate": 150000000}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if time.Duration(cfg.FrameRate) != 150*time.Millisecond {
		t.Fatalf("frame rate = %s", time.Duration(cfg.FrameRate))
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"bad json", func(t *testing.T) string { return writeConfig(t, `{`) }},
		{"bad duration", func(t *testing.T) string { return writeConfig(t, `{"frame_rate": "soon"}`) }},
		{"zero frame rate", func(t *testing.T) string { return writeConfig(t, `{"frame_rate": 0}`) }},
		{"negative generations", func(t *testing.T) string { return writeConfig(t, `{"max_generations": -1}`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path(t)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDurationRoundTrip(t *testing.T) {
	data, err := Duration(2 * time.Second).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2s"` {
		t.Fatalf("marshaled %s", data)
	}
}
