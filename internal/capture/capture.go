// Package capture models the captured face image handed to check-in,
// check-out and registration. The capture step yields either a filesystem
// reference to a JPEG or a base64 data URI; exactly one of the two is
// transmitted per submission.
package capture

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
)

// ErrInvalidImage marks a locally rejected image reference. It is raised
// before any network call is attempted.
var ErrInvalidImage = errors.New("invalid face image")

const dataURIPrefix = "data:"

// Image is a captured face image in one of exactly two representations.
// The concrete types are FileRef and DataURI; Attach encodes whichever
// case it is given, never both.
type Image interface {
	attach(w *multipart.Writer) error
}

// FileRef is a path to a captured JPEG on local storage.
type FileRef string

// DataURI is a base64 data URI produced by a capture path that never
// touches the filesystem.
type DataURI string

// Parse interprets a raw capture result. The boundary rule is prefix
// sniffing, kept for compatibility with the upstream capture step: a
// value starting with "data:" is a base64 payload, anything else is a
// file reference. Empty or malformed values are rejected here, locally.
func Parse(raw string) (Image, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty image reference", ErrInvalidImage)
	}
	if strings.HasPrefix(raw, dataURIPrefix) {
		if err := checkDataURI(raw); err != nil {
			return nil, err
		}
		return DataURI(raw), nil
	}
	info, err := os.Stat(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %v", ErrInvalidImage, raw, err)
	}
	if info.IsDir() || info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is not a usable image file", ErrInvalidImage, raw)
	}
	return FileRef(raw), nil
}

// checkDataURI verifies the payload after the comma decodes as base64.
// Image content itself is not inspected; that is the backend's job.
func checkDataURI(raw string) error {
	_, payload, found := strings.Cut(raw, ",")
	if !found || payload == "" {
		return fmt.Errorf("%w: data URI has no payload", ErrInvalidImage)
	}
	cleaned := strings.NewReplacer("\n", "", "\r", "", " ", "").Replace(payload)
	if _, err := base64.StdEncoding.DecodeString(cleaned); err != nil {
		return fmt.Errorf("%w: data URI payload is not valid base64", ErrInvalidImage)
	}
	return nil
}

// Attach appends img to the multipart form: a DataURI becomes the text
// field "face_image_base64", a FileRef becomes the binary file part
// "face_image". Exactly one of the two fields is ever written.
func Attach(w *multipart.Writer, img Image) error {
	if img == nil {
		return fmt.Errorf("%w: no image provided", ErrInvalidImage)
	}
	return img.attach(w)
}

func (d DataURI) attach(w *multipart.Writer) error {
	if err := w.WriteField("face_image_base64", string(d)); err != nil {
		return fmt.Errorf("writing base64 field: %w", err)
	}
	return nil
}

func (f FileRef) attach(w *multipart.Writer) error {
	file, err := os.Open(string(f))
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", ErrInvalidImage, string(f), err)
	}
	defer file.Close()

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="face_image"; filename="face.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating image part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying image data: %w", err)
	}
	return nil
}
