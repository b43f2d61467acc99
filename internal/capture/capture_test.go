package capture_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"attendctl/internal/capture"
)

// tinyJPEG is enough bytes to stand in for a captured image.
var tinyJPEG = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46}

func validDataURI() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(tinyJPEG)
}

func writeTempJPEG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "face.jpg")
	if err := os.WriteFile(path, tinyJPEG, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseRejectsLocally(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"missing file", "/does/not/exist.jpg"},
		{"data URI without payload", "data:image/jpeg;base64,"},
		{"data URI without comma", "data:image/jpeg;base64"},
		{"data URI bad base64", "data:image/jpeg;base64,!!!not-base64!!!"},
	}
	for _, tt := range tests {
		_, err := capture.Parse(tt.raw)
		if !errors.Is(err, capture.ErrInvalidImage) {
			t.Errorf("%s: Parse(%q) err = %v, want ErrInvalidImage", tt.name, tt.raw, err)
		}
	}
}

func TestParseEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jpg")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := capture.Parse(path); !errors.Is(err, capture.ErrInvalidImage) {
		t.Errorf("Parse(empty file) err = %v, want ErrInvalidImage", err)
	}
}

func TestParseSniffsPrefix(t *testing.T) {
	img, err := capture.Parse(validDataURI())
	if err != nil {
		t.Fatalf("Parse(data URI): %v", err)
	}
	if _, ok := img.(capture.DataURI); !ok {
		t.Errorf("Parse(data URI) = %T, want DataURI", img)
	}

	img, err = capture.Parse(writeTempJPEG(t))
	if err != nil {
		t.Fatalf("Parse(file path): %v", err)
	}
	if _, ok := img.(capture.FileRef); !ok {
		t.Errorf("Parse(file path) = %T, want FileRef", img)
	}
}

// encodeForm runs Attach through a real multipart writer and parses the
// result back so the tests see exactly what the server would.
func encodeForm(t *testing.T, img capture.Image) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := capture.Attach(w, img); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("reading form back: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func TestAttachMutuallyExclusive(t *testing.T) {
	// Data URI: text field present, file part absent.
	img, err := capture.Parse(validDataURI())
	if err != nil {
		t.Fatal(err)
	}
	form := encodeForm(t, img)
	if got := form.Value["face_image_base64"]; len(got) != 1 || got[0] != validDataURI() {
		t.Errorf("face_image_base64 = %v, want the data URI", got)
	}
	if len(form.File["face_image"]) != 0 {
		t.Error("data URI submission must not carry a file part")
	}

	// File ref: file part present, text field absent.
	img, err = capture.Parse(writeTempJPEG(t))
	if err != nil {
		t.Fatal(err)
	}
	form = encodeForm(t, img)
	files := form.File["face_image"]
	if len(files) != 1 {
		t.Fatalf("face_image parts = %d, want 1", len(files))
	}
	if files[0].Filename != "face.jpg" {
		t.Errorf("filename = %q, want %q", files[0].Filename, "face.jpg")
	}
	if ct := files[0].Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", ct)
	}
	if len(form.Value["face_image_base64"]) != 0 {
		t.Error("file submission must not carry the base64 field")
	}
}

func TestAttachNil(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := capture.Attach(w, nil); !errors.Is(err, capture.ErrInvalidImage) {
		t.Errorf("Attach(nil) err = %v, want ErrInvalidImage", err)
	}
}
