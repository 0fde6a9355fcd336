// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "io/fs"

// Application defaults
const (
	DefaultPort           = "8080"
	DefaultDBPath         = "mixcrate.db"
	DefaultUploadsDir     = "uploads"
	DefaultMaxUploadBytes = 10 << 20 // 10 MiB
)

// File and directory permissions
const (
	DirPermissions  fs.FileMode = 0755
	FilePermissions fs.FileMode = 0644
)

// UploadsURLPrefix is the route prefix under which stored blobs are served
// read-only. Blob paths persisted on song rows carry this prefix.
const UploadsURLPrefix = "/uploads/"

// MIME Types
const (
	MimeTypeMP3  = "audio/mpeg"
	MimeTypeWAV  = "audio/wav"
	MimeTypeOGG  = "audio/ogg"
	MimeTypeM4A  = "audio/mp4"
	MimeTypeFLAC = "audio/flac"
	MimeTypeJPEG = "image/jpeg"
)

// AudioMimePrefix matches any declared audio content type.
const AudioMimePrefix = "audio/"

// File Extensions
const (
	ExtMP3  = ".mp3"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
	ExtM4A  = ".m4a"
	ExtFLAC = ".flac"
)

// AllowedAudioExtensions is the upload allow-list, keyed by lowercase
// extension including the leading dot.
var AllowedAudioExtensions = map[string]bool{
	ExtMP3:  true,
	ExtWAV:  true,
	ExtOGG:  true,
	ExtM4A:  true,
	ExtFLAC: true,
}

// UnknownArtist is the fallback artist when extraction yields none.
const UnknownArtist = "Unknown Artist"
