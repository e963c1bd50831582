// mime.go maps audio file extensions to MIME types.
package speech

import (
	"path/filepath"
	"strings"
)

// audioMIMETypes is the static extension→MIME lookup for supported uploads.
var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".webm": "audio/webm",
}

// DefaultExtension is assumed for unnamed browser recordings
// (MediaRecorder blobs usually arrive without a useful filename).
const DefaultExtension = ".webm"

// NormalizeFilename returns the filename with a usable audio extension,
// falling back to DefaultExtension, plus whether the extension was
// recognized in the first place.
func NormalizeFilename(filename string) (string, bool) {
	if filename == "" {
		return "audio" + DefaultExtension, true
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return filename + DefaultExtension, true
	}
	_, ok := audioMIMETypes[ext]
	return filename, ok
}

// MIMEType returns the MIME type for a filename's extension, or "" when the
// extension is not a supported audio format.
func MIMEType(filename string) string {
	return audioMIMETypes[strings.ToLower(filepath.Ext(filename))]
}

// SupportedExtensions lists the accepted extensions for error messages.
func SupportedExtensions() string {
	return "mp3, wav, m4a, ogg, flac, webm"
}
