package cmd

import (
	"strings"
	"testing"
)

func TestNavigationRootByRole(t *testing.T) {
	if got := navigationRoot("admin"); !strings.Contains(got, "attendctl admin") {
		t.Errorf("admin routing = %q, want the admin command set", got)
	}
	for _, role := range []string{"employee", "", "manager"} {
		got := navigationRoot(role)
		if strings.Contains(got, "admin") {
			t.Errorf("role %q routed to admin commands: %q", role, got)
		}
		if !strings.Contains(got, "check-in") {
			t.Errorf("role %q missing employee commands: %q", role, got)
		}
	}
}
