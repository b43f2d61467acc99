package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"attendctl/internal/api"
	"attendctl/internal/capture"
	"attendctl/internal/config"
	"attendctl/internal/geo"
	"attendctl/internal/session"
)

// newClient builds an API client from the stored session. When
// authenticated is true and no session exists it fails with
// ErrAuthRequired before anything touches the network; a later 401
// clears the stale session via the OnAuthExpired hook.
func newClient(authenticated bool) (*api.Client, *session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	base, err := config.BaseDir()
	if err != nil {
		return nil, nil, err
	}

	sess, err := session.Load(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		sess = nil
	}

	if !authenticated {
		return api.New(cfg.Server.BaseURL, ""), sess, nil
	}
	if sess == nil {
		return nil, nil, api.ErrAuthRequired
	}

	client := api.New(cfg.Server.BaseURL, sess.Token)
	client.OnAuthExpired = func() {
		if cerr := session.Clear(base); cerr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not clear session: %v\n", cerr)
		}
	}
	return client, sess, nil
}

// requireAdmin fails fast locally instead of round-tripping a guaranteed 403.
func requireAdmin(sess *session.Session) error {
	if !sess.Identity.IsAdmin() {
		return errors.New("this command requires the admin role")
	}
	return nil
}

// exitCode classifies err: 1 for user-facing failures (validation, auth,
// rejected images, denied location, request and network errors), 2 for
// local I/O problems.
func exitCode(err error) int {
	var verr *api.ValidationError
	if errors.As(err, &verr) || errors.Is(err, api.ErrAuthRequired) || errors.Is(err, api.ErrAuthExpired) {
		return 1
	}
	if errors.Is(err, capture.ErrInvalidImage) || errors.Is(err, geo.ErrPermissionDenied) {
		return 1
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) || errors.Is(err, api.ErrNetworkUnavailable) {
		return 1
	}
	return 2
}

// fail prints err and exits with its classification.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitCode(err))
}

// confirm prompts for destructive actions; assumeYes skips the prompt so
// the command stays scriptable.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
