package cmd

import (
	"errors"
	"fmt"
	"testing"

	"attendctl/internal/api"
	"attendctl/internal/capture"
	"attendctl/internal/geo"
)

func TestExitCodeClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", api.Validationf("employee ID is required"), 1},
		{"auth required", api.ErrAuthRequired, 1},
		{"auth expired wrapped", fmt.Errorf("status failed: %w", api.ErrAuthExpired), 1},
		{"server error", &api.APIError{StatusCode: 400, Message: "Already checked in today"}, 1},
		{"network", fmt.Errorf("%w: connection refused", api.ErrNetworkUnavailable), 1},
		{"rejected image", fmt.Errorf("check-in failed: %w", capture.ErrInvalidImage), 1},
		{"location denied", fmt.Errorf("check-in failed: %w", geo.ErrPermissionDenied), 1},
		{"local io", errors.New("creating output file: permission denied"), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Errorf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
