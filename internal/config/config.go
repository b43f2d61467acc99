package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the root configuration for attendctl, stored in
// ~/.attendctl/config.json. The file supports single-line // comments
// for documentation purposes.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Location LocationConfig `json:"location"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	// BaseURL is the attendance backend root, e.g. "http://localhost:8000".
	BaseURL string `json:"base_url"`
}

// LocationConfig holds geolocation settings used by check-in/check-out.
type LocationConfig struct {
	// Command is an external program printing {"latitude":..,"longitude":..}
	// to stdout (e.g. "termux-location"). Empty disables command lookup.
	Command string `json:"command"`
	// Latitude/Longitude are fixed fallback coordinates; both must be set
	// to be used. Zero values mean unset.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultBaseURL points at a local development backend.
const DefaultBaseURL = "http://localhost:8000"

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{BaseURL: DefaultBaseURL},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// attendctl configuration: ~/.attendctl/config.json
//
// Environment variables override file values:
//   ATTENDCTL_BASE_URL, ATTENDCTL_LAT, ATTENDCTL_LON, ATTENDCTL_LOCATION_CMD
// A .env file in the working directory is also honoured.
{
  "server": {
    // Attendance backend root URL.
    "base_url": "http://localhost:8000"
  },

  "location": {
    // External command printing {"latitude": .., "longitude": ..} JSON,
    // e.g. "termux-location". Leave empty to use fixed coordinates below
    // or the --lat/--lon flags.
    "command": "",

    // Fixed fallback coordinates (both required to take effect).
    "latitude": 0,
    "longitude": 0
  }
}
`

// BaseDir returns the root data directory (~/.attendctl).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".attendctl"), nil
}

func configFilePath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.attendctl/config.json, creating it with annotated defaults on
// first run, then applies environment overrides (including a .env file in the
// working directory, if present).
func Load() (Config, error) {
	// Best-effort: a missing .env file is the normal case.
	_ = godotenv.Load()

	path, err := configFilePath()
	if err != nil {
		return applyEnv(defaultConfig()), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return applyEnv(defaultConfig()), nil
	}
	if err != nil {
		return applyEnv(defaultConfig()), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return applyEnv(defaultConfig()), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = DefaultBaseURL
	}

	return applyEnv(cfg), nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("ATTENDCTL_BASE_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("ATTENDCTL_LOCATION_CMD"); v != "" {
		cfg.Location.Command = v
	}
	if v := os.Getenv("ATTENDCTL_LAT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Location.Latitude = f
		}
	}
	if v := os.Getenv("ATTENDCTL_LON"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Location.Longitude = f
		}
	}
	return cfg
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
