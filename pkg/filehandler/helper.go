package filehandler

import (
	"os"
	"path/filepath"
	"strings"
)

// SupportedImageFormats is a map of file extensions to their format names
var SupportedImageFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
}

// Exists checks if a path can be stat'ed
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// HasExtension checks if the file name at the end of path carries a suffix.
// A leading dot alone (".png") names a hidden file, not an extension.
func HasExtension(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return ext != "" && ext != base
}

// FormatFromExtension returns the format name for the extension of path
func FormatFromExtension(path string) (string, bool) {
	format, ok := SupportedImageFormats[strings.ToLower(filepath.Ext(path))]
	return format, ok
}
