package mediacomp

import (
	"os"
	"path/filepath"
)

// mediaDir is the base directory that relative media file names resolve
// against. It starts as the process working directory.
var mediaDir, _ = os.Getwd()

// MediaPath translates a relative file name into an absolute path under
// the media directory. Absolute names pass through unchanged, and the
// empty string returns the media directory itself.
func MediaPath(name string) string {
	if name == "" {
		return mediaDir
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(mediaDir, name)
}

// SetMediaPath changes the media directory. An empty name resets it to
// the process working directory. The directory must exist; relative names
// are resolved against the current media directory first. Reports whether
// the change took effect.
func SetMediaPath(name string) bool {
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return false
		}
		mediaDir = wd
		return true
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(mediaDir, name)
	}
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		log.Warn("media path unchanged, not a directory", "path", name)
		return false
	}
	mediaDir = name
	return true
}
