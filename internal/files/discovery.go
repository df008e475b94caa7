package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "campaignclean/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path string
	Name string
	Size int64
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath   string
	extensions []string
}

// NewDiscovery creates a discovery instance matching the given archive
// extensions (case-insensitive, with leading dot)
func NewDiscovery(basePath string, extensions []string) *Discovery {
	return &Discovery{basePath: basePath, extensions: extensions}
}

// FindArchives finds every archive in dir, sorted by name so repeated runs
// see the same order regardless of file system iteration order
func (d *Discovery) FindArchives(dir string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, apperrors.NewIOError("failed to read input directory", err).
			WithContext("dir", fullPath)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !d.matches(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, apperrors.NewIOError("failed to stat archive", err).
				WithContext("file", entry.Name())
		}

		files = append(files, FileInfo{
			Path: filepath.Join(fullPath, entry.Name()),
			Name: entry.Name(),
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

func (d *Discovery) matches(name string) bool {
	return HasExtension(name, d.extensions)
}

// HasExtension reports whether name ends in one of extensions, ignoring case
func HasExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
