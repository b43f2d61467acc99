package config

import (
	"encoding/json"
	"testing"
)

func TestStripLineComments(t *testing.T) {
	cleaned := stripLineComments([]byte(configTemplate))
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		t.Fatalf("template did not parse after comment stripping: %v", err)
	}
	if cfg.Server.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.Server.BaseURL, DefaultBaseURL)
	}
}

func TestStripLineCommentsKeepsInlineSlashes(t *testing.T) {
	in := []byte("{\n  // a comment\n  \"server\": {\"base_url\": \"http://x//y\"}\n}\n")
	var cfg Config
	if err := json.Unmarshal(stripLineComments(in), &cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Server.BaseURL != "http://x//y" {
		t.Errorf("BaseURL = %q, slashes inside values must survive", cfg.Server.BaseURL)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ATTENDCTL_BASE_URL", "https://attendance.example.com")
	t.Setenv("ATTENDCTL_LOCATION_CMD", "termux-location")
	t.Setenv("ATTENDCTL_LAT", "6.5244")
	t.Setenv("ATTENDCTL_LON", "3.3792")

	cfg := applyEnv(defaultConfig())
	if cfg.Server.BaseURL != "https://attendance.example.com" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Location.Command != "termux-location" {
		t.Errorf("Command = %q", cfg.Location.Command)
	}
	if cfg.Location.Latitude != 6.5244 || cfg.Location.Longitude != 3.3792 {
		t.Errorf("coordinates = %v, %v", cfg.Location.Latitude, cfg.Location.Longitude)
	}
}

func TestApplyEnvIgnoresBadCoordinates(t *testing.T) {
	t.Setenv("ATTENDCTL_LAT", "not-a-number")
	cfg := applyEnv(defaultConfig())
	if cfg.Location.Latitude != 0 {
		t.Errorf("Latitude = %v, want untouched zero", cfg.Location.Latitude)
	}
}
