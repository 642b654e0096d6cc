package storage

import "strings"

const (
	MaxImageSize int64 = 5 * 1024 * 1024
	MaxAudioSize int64 = 100 * 1024 * 1024
)

var imageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// browsers and recorders report audio under many aliases
var audioTypes = map[string]bool{
	"audio/mpeg":          true,
	"audio/mp3":           true,
	"audio/wav":           true,
	"audio/wave":          true,
	"audio/x-wav":         true,
	"audio/m4a":           true,
	"audio/x-m4a":         true,
	"audio/mp4":           true,
	"audio/mp4a-latm":     true,
	"audio/mpeg4-generic": true,
	"audio/aac":           true,
	"audio/x-aac":         true,
	"audio/ogg":           true,
	"audio/vorbis":        true,
	"audio/flac":          true,
	"audio/x-flac":        true,
	"audio/webm":          true,
	"audio/opus":          true,
	"audio/3gpp":          true,
	"audio/3gpp2":         true,
	"audio/amr":           true,
	"audio/basic":         true,
	"audio/mid":           true,
	"audio/midi":          true,
	"audio/x-midi":        true,
	"audio/wma":           true,
	"audio/x-ms-wma":      true,
}

func IsValidImageType(mimeType string) bool {
	return imageTypes[normalizeMIME(mimeType)]
}

func IsValidAudioType(mimeType string) bool {
	return audioTypes[normalizeMIME(mimeType)]
}

func IsValidImageSize(size int64) bool {
	return size >= 0 && size <= MaxImageSize
}

func IsValidAudioSize(size int64) bool {
	return size >= 0 && size <= MaxAudioSize
}

// normalizeMIME lowercases and drops parameters such as ";codecs=opus".
func normalizeMIME(mimeType string) string {
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
