package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// encodeMultipart buffers a multipart form built by build and returns the
// body together with the writer's content type, which carries the
// generated boundary.
func encodeMultipart(build func(w *multipart.Writer) error) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
