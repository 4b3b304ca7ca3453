// Package intake validates a user-supplied scan file and produces the
// base64 payload sent to the analysis endpoint.
package intake

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// ErrNotImage is returned for files whose media type is not image/*.
// Rejection is explicit rather than silent so callers can tell the user.
var ErrNotImage = errors.New("selected file is not an image")

// Image is a validated scan ready for submission.
type Image struct {
	Data []byte
	MIME string
}

// FromFile reads and validates the image at path.
func FromFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scan file: %w", err)
	}
	img, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FromBytes validates raw file contents. The media type is sniffed from the
// leading bytes; anything outside image/* is rejected.
func FromBytes(data []byte) (*Image, error) {
	mime := sniffMIME(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w (detected %s)", ErrNotImage, mime)
	}
	return &Image{Data: data, MIME: mime}, nil
}

// Base64 returns the payload with no data-URL prefix, as the analyze
// endpoint expects.
func (i *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// DataURL returns a data URL usable for a local preview.
func (i *Image) DataURL() string {
	return "data:" + i.MIME + ";base64," + i.Base64()
}

// StripDataURL removes a data-URL prefix when present, returning the bare
// base64 payload.
func StripDataURL(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if idx := strings.IndexByte(s, ','); idx > 0 {
		return s[idx+1:]
	}
	return s
}

func sniffMIME(b []byte) string {
	// JPEG: FF D8
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	return http.DetectContentType(b)
}
