// Package session persists the authenticated session (bearer token and
// cached identity) under <base>/auth/ as two JSON files.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the cached user record returned by the login endpoint.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool { return id.Role == "admin" }

// Session pairs the opaque bearer token with the identity it belongs to.
type Session struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

// ExpiresSoon reports whether the token's exp claim (if it parses as a JWT)
// falls before now+margin. The token is parsed unverified: signature
// validation is the server's job, this is only a fast local hint so the
// user is told to log in again instead of seeing a 401.
func (s *Session) ExpiresSoon(margin time.Duration) bool {
	if s == nil || s.Token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		// Opaque token: no local expiry knowledge.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().Add(margin).After(exp.Time)
}

func tokenPath(base string) string    { return filepath.Join(base, "auth", "token.json") }
func identityPath(base string) string { return filepath.Join(base, "auth", "identity.json") }

type tokenFile struct {
	Token string `json:"token"`
}

// Save persists the token and identity under base. Each file is written
// atomically (temp file + rename); there is no cross-file atomicity, the
// first failure is returned and the caller must assume a partial write.
func Save(base, token string, identity Identity) error {
	if err := writeJSON(tokenPath(base), tokenFile{Token: token}); err != nil {
		return err
	}
	return writeJSON(identityPath(base), identity)
}

// Load returns the stored session, or (nil, nil) when none is stored.
// A corrupt file is backed up with a .corrupt suffix and reported.
func Load(base string) (*Session, error) {
	var tf tokenFile
	ok, err := readJSON(tokenPath(base), &tf)
	if err != nil {
		return nil, err
	}
	if !ok || tf.Token == "" {
		return nil, nil
	}

	var id Identity
	if _, err := readJSON(identityPath(base), &id); err != nil {
		return nil, err
	}
	return &Session{Token: tf.Token, Identity: id}, nil
}

// Clear removes both stored entries. Missing files are a no-op, so repeated
// calls are safe.
func Clear(base string) error {
	for _, p := range []string{tokenPath(base), identityPath(base)} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", filepath.Base(path), err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// readJSON loads path into v, reporting ok=false when the file is absent.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return false, fmt.Errorf("corrupt session file %s (backed up to %s): %w", path, backupPath, err)
	}
	return true, nil
}
