package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Duration is a time.Duration that decodes from either a Go duration string
// ("500ms") or an integer number of nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "[Duration.UnmarshalJSON] invalid string")
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] failed to parse duration: %+v", s)
		}
		*d = Duration(parsed)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] failed to parse nanoseconds: %s", data)
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds the configuration for the game
type Config struct {
	FrameRate      Duration       `json:"frame_rate"`
	MaxGenerations int            `json:"max_generations"`
	Interactive    bool           `json:"interactive"`
	ClearScreen    bool           `json:"clear_screen"`
	Pattern        string         `json:"pattern"`
	OriginX        int            `json:"origin_x"`
	OriginY        int            `json:"origin_y"`
	Cells          [][2]int       `json:"cells"`
	Viewport       ViewportConfig `json:"viewport"`
	LogLevel       string         `json:"log_level"`
}

// ViewportConfig holds the inclusive window printed in non-interactive mode
type ViewportConfig struct {
	X0 int `json:"x0"`
	X1 int `json:"x1"`
	Y0 int `json:"y0"`
	Y1 int `json:"y1"`
}

// DefaultConfig returns sensible defaults: a blinker at (1,1)..(3,1) shown in
// a 6x6 window, advanced every 500ms.
func DefaultConfig() Config {
	return Config{
		FrameRate:      Duration(500 * time.Millisecond),
		MaxGenerations: 0, // unlimited
		Interactive:    false,
		ClearScreen:    true,
		Cells:          [][2]int{{1, 1}, {2, 1}, {3, 1}},
		Viewport:       ViewportConfig{X0: 0, X1: 5, Y0: 0, Y1: 5},
		LogLevel:       "info",
	}
}

// Validate reports settings the driver cannot run with
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return errors.Errorf("[Config.Validate] frame_rate must be positive, got %s", time.Duration(c.FrameRate))
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Config.Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
