package session_test

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"attendctl/internal/session"
)

var testIdentity = session.Identity{
	ID:    "EMP001",
	Name:  "Ada Lovelace",
	Email: "ada@example.com",
	Role:  "employee",
}

func TestLoadAbsent(t *testing.T) {
	base := t.TempDir()
	sess, err := session.Load(base)
	if err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
	if sess != nil {
		t.Fatalf("Load on empty dir = %+v, want nil", sess)
	}
}

func TestSaveAndLoad(t *testing.T) {
	base := t.TempDir()

	if err := session.Save(base, "tok-123", testIdentity); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sess, err := session.Load(base)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if sess == nil {
		t.Fatal("Load after save = nil")
	}
	if sess.Token != "tok-123" {
		t.Errorf("token = %q, want %q", sess.Token, "tok-123")
	}
	if sess.Identity != testIdentity {
		t.Errorf("identity = %+v, want %+v", sess.Identity, testIdentity)
	}
}

func TestClearIdempotent(t *testing.T) {
	base := t.TempDir()

	if err := session.Save(base, "tok-123", testIdentity); err != nil {
		t.Fatal(err)
	}
	if err := session.Clear(base); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	// Second clear on already-empty storage must be a no-op.
	if err := session.Clear(base); err != nil {
		t.Fatalf("repeated Clear: %v", err)
	}

	sess, err := session.Load(base)
	if err != nil {
		t.Fatal(err)
	}
	if sess != nil {
		t.Errorf("Load after Clear = %+v, want nil", sess)
	}
}

func TestLoadCorruptBacksUp(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "auth", "token.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := session.Load(base)
	if err == nil {
		t.Fatal("expected error for corrupt token file, got nil")
	}
	if _, err2 := os.Stat(path + ".corrupt"); os.IsNotExist(err2) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
}

// fakeJWT builds an unsigned-but-well-formed HS256 token with the given
// expiry claim.
func fakeJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	claims, err := json.Marshal(map[string]any{"employee_id": "EMP001", "exp": exp.Unix()})
	if err != nil {
		t.Fatal(err)
	}
	payload := base64.RawURLEncoding.EncodeToString(claims)
	sig := base64.RawURLEncoding.EncodeToString([]byte("sig"))
	return header + "." + payload + "." + sig
}

func TestExpiresSoon(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty token", "", true},
		{"opaque token", "not-a-jwt", false},
		{"future expiry", fakeJWT(t, time.Now().Add(24*time.Hour)), false},
		{"past expiry", fakeJWT(t, time.Now().Add(-time.Hour)), true},
		{"inside margin", fakeJWT(t, time.Now().Add(10*time.Second)), true},
	}
	for _, tt := range tests {
		sess := &session.Session{Token: tt.token}
		if got := sess.ExpiresSoon(time.Minute); got != tt.want {
			t.Errorf("%s: ExpiresSoon = %v, want %v", tt.name, got, tt.want)
		}
	}
}
