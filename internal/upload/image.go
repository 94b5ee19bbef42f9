// Package upload stores recipe images sent inline as base64 data URIs.
package upload

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var extByMime = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsDataURI reports whether the value is an inline base64 image rather
// than an already-stored path.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, "data:image/")
}

// SaveBase64Image decodes a "data:image/...;base64,..." payload into
// root/recipes/ under a random filename and returns the relative path.
func SaveBase64Image(dataURI string, root string) (string, error) {
	header, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return "", fmt.Errorf("malformed data URI")
	}

	mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	ext, ok := extByMime[mime]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", mime)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	dir := filepath.Join(root, "recipes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return filepath.Join("recipes", name), nil
}
