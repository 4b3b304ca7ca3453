package intake

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

// 1x1 JPEG start-of-image marker plus filler, enough for MIME sniffing.
var jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x10}, 64)...)

var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x20}, 64)...)

func TestFromBytes_Base64RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantMIME string
	}{
		{"jpeg", jpegBytes, "image/jpeg"},
		{"png", pngBytes, "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := FromBytes(tt.data)
			if err != nil {
				t.Fatalf("FromBytes: %v", err)
			}
			if img.MIME != tt.wantMIME {
				t.Errorf("MIME = %q, want %q", img.MIME, tt.wantMIME)
			}

			decoded, err := base64.StdEncoding.DecodeString(img.Base64())
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Error("base64 round trip did not preserve file contents")
			}
		})
	}
}

func TestFromBytes_RejectsNonImage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("just a text file, no scan here")},
		{"pdf", []byte("%PDF-1.4 fake document body")},
		{"html", []byte("<!DOCTYPE html><html></html>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBytes(tt.data); !errors.Is(err, ErrNotImage) {
				t.Errorf("err = %v, want ErrNotImage", err)
			}
		})
	}
}

func TestDataURL(t *testing.T) {
	img, err := FromBytes(jpegBytes)
	if err != nil {
		t.Fatal(err)
	}
	url := img.DataURL()
	if got := StripDataURL(url); got != img.Base64() {
		t.Errorf("StripDataURL(DataURL()) = %q, want bare payload", got)
	}
}

func TestStripDataURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare base64", "aGVsbG8=", "aGVsbG8="},
		{"data url", "data:image/png;base64,aGVsbG8=", "aGVsbG8="},
		{"whitespace", "  aGVsbG8=\n", "aGVsbG8="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDataURL(tt.in); got != tt.want {
				t.Errorf("StripDataURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
