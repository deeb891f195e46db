// Package storage hosts uploaded images on an S3-compatible bucket and hands
// back public URLs. Registration and menu creation send images inline as
// base64 data URIs; everything else ships plain URLs through untouched.
package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

type Uploader interface {
	// Upload stores the image under the given folder and returns its public
	// URL. Inputs that are not data URIs are returned unchanged.
	Upload(ctx context.Context, folder, image string) (string, error)
}

// Passthrough is used when no bucket is configured; images are persisted
// exactly as the client sent them.
type Passthrough struct{}

func (Passthrough) Upload(_ context.Context, _, image string) (string, error) {
	return image, nil
}

// IsDataURI reports whether the string looks like an inline base64 image.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:") && strings.Contains(s, ";base64,")
}

var extByMediaType = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// decodeDataURI splits "data:image/png;base64,..." into raw bytes and a file
// extension for the object key.
func decodeDataURI(s string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	mediaType := strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data URI: %w", err)
	}

	ext, ok := extByMediaType[mediaType]
	if !ok {
		ext = "bin"
	}
	return data, ext, nil
}
