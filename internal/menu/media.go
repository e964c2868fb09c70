package menu

import (
	"path/filepath"
	"strings"
)

var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MediaType returns the MIME type for an image file name.
// Unknown extensions fall back to image/jpeg.
func MediaType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	if mt, ok := mediaTypes[ext]; ok {
		return mt
	}
	return "image/jpeg"
}

// IsImage reports whether the file name has a supported image extension.
func IsImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := mediaTypes[ext]
	return ok
}
