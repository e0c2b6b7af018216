package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSWindows = "windows"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Default output location
const (
	DefaultImagesDirName = "images"
)

// ErrNoThumbnail is returned when none of the probed thumbnail files exist
var ErrNoThumbnail = errors.New("no thumbnail produced")

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path exists and is not a directory: %s", dirPath)
	}
	return nil
}

// DefaultImagesDir returns the images directory under the current working
// directory
func DefaultImagesDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, DefaultImagesDirName), nil
}

// OutputBasePath strips the extension from dest. yt-dlp appends its own
// extension to the -o template.
func OutputBasePath(dest string) string {
	return strings.TrimSuffix(dest, filepath.Ext(dest))
}

// ThumbnailCandidates returns the paths probed for dest, in preference order
func ThumbnailCandidates(dest string, formats []string) []string {
	base := OutputBasePath(dest)
	candidates := make([]string, 0, len(formats))
	for _, format := range formats {
		candidates = append(candidates, base+"."+strings.TrimPrefix(format, "."))
	}
	return candidates
}

// ClearThumbnail removes dest and every candidate path for it, so that after
// the next tool invocation the files on disk come from that invocation only
func ClearThumbnail(dest string, formats []string) error {
	paths := append([]string{dest}, ThumbnailCandidates(dest, formats)...)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// ReconcileThumbnail finds the file the extraction tool wrote for dest and
// makes sure it ends up at dest. Formats are probed in order and the first
// existing candidate wins. The winner is renamed to dest when its name
// differs and other candidates are removed. File content is never touched.
func ReconcileThumbnail(dest string, formats []string) (string, error) {
	var (
		winner string
		found  []string
	)

	for _, candidate := range ThumbnailCandidates(dest, formats) {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		found = append(found, candidate)
		if winner == "" {
			winner = candidate
		}
	}

	if winner == "" {
		return "", fmt.Errorf("%w for %s", ErrNoThumbnail, OutputBasePath(dest))
	}

	if winner != dest {
		if err := os.Rename(winner, dest); err != nil {
			return "", fmt.Errorf("failed to rename %s to %s: %w", filepath.Base(winner), filepath.Base(dest), err)
		}
	}

	for _, leftover := range found {
		if leftover == winner || leftover == dest {
			continue
		}
		if err := os.Remove(leftover); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to remove %s: %w", filepath.Base(leftover), err)
		}
	}

	return dest, nil
}

// FileExistsNonEmpty reports whether path is a regular file with content
func FileExistsNonEmpty(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}

// IsWindows reports whether the binary runs on Windows
func IsWindows() bool {
	return runtime.GOOS == OSWindows
}
