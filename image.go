package selftrack

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize is the largest image LoadImage accepts, the whole aggregate
// being persisted at once.
const MaxImageSize = 2 << 20

// LoadImage reads a local image file into a data URL, ready to be stored as
// an image reference (avatar or certificate).
func LoadImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("could not read image %q: %w", path, err)
	}
	if info.Size() > MaxImageSize {
		return "", fmt.Errorf("image %q is too large: %d bytes, max is %d", path, info.Size(), MaxImageSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read image %q: %w", path, err)
	}
	return DataURL(data, mime.TypeByExtension(filepath.Ext(path)))
}

// DataURL encodes image bytes as a base64 data URL. An empty mediaType is sniffed from the content.
func DataURL(data []byte, mediaType string) (string, error) {
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("not an image: %s", mediaType)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
