// Package geo resolves the device position for check-in and check-out.
// The backend does all geofence validation; this package only acquires
// coordinates, from an explicit flag pair, the environment/config, or an
// external location command.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrPermissionDenied is returned when no position can be acquired: the
// location command refused or is missing and no fallback coordinates are
// configured. Flows abort without any network call.
var ErrPermissionDenied = errors.New("location access denied or unavailable")

// Position is an acquired coordinate pair.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are within WGS84 bounds.
func (p Position) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// Provider acquires the current position.
type Provider interface {
	Current(ctx context.Context) (Position, error)
}

// Static always returns a fixed position (from flags or config).
type Static struct {
	Pos Position
}

func (s Static) Current(ctx context.Context) (Position, error) {
	if !s.Pos.Valid() {
		return Position{}, fmt.Errorf("coordinates out of range: %.6f, %.6f", s.Pos.Latitude, s.Pos.Longitude)
	}
	return s.Pos, nil
}

// Command runs an external program (e.g. termux-location) expected to
// print {"latitude": .., "longitude": ..} JSON on stdout.
type Command struct {
	Line string
}

func (c Command) Current(ctx context.Context) (Position, error) {
	parts := strings.Fields(c.Line)
	if len(parts) == 0 {
		return Position{}, ErrPermissionDenied
	}
	out, err := exec.CommandContext(ctx, parts[0], parts[1:]...).Output()
	if err != nil {
		// A failing or missing locator is the CLI equivalent of a denied
		// OS permission prompt.
		return Position{}, fmt.Errorf("%w: %s: %v", ErrPermissionDenied, parts[0], err)
	}
	var pos Position
	if err := json.Unmarshal(out, &pos); err != nil {
		return Position{}, fmt.Errorf("parsing %s output: %w", parts[0], err)
	}
	if !pos.Valid() {
		return Position{}, fmt.Errorf("%s returned coordinates out of range", parts[0])
	}
	return pos, nil
}

// None is the provider used when nothing is configured; it always denies.
type None struct{}

func (None) Current(ctx context.Context) (Position, error) {
	return Position{}, fmt.Errorf("%w: set --lat/--lon, ATTENDCTL_LAT/ATTENDCTL_LON, or a location command", ErrPermissionDenied)
}
