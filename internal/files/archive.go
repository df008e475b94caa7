package files

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"

	apperrors "campaignclean/internal/errors"
)

// Member is a tabular file stored inside an archive
type Member struct {
	Archive string
	Name    string
	file    *zip.File
}

// Ext returns the member's lower-case extension, e.g. ".csv"
func (m Member) Ext() string {
	return strings.ToLower(path.Ext(m.Name))
}

// Open returns a reader over the member's decompressed content
func (m Member) Open() (io.ReadCloser, error) {
	rc, err := m.file.Open()
	if err != nil {
		return nil, apperrors.NewIOError("failed to open archive member", err).
			WithContext("archive", m.Archive).
			WithContext("member", m.Name)
	}
	return rc, nil
}

// Archive is an opened zip archive
type Archive struct {
	Path   string
	reader *zip.ReadCloser
}

// OpenArchive opens the zip archive at path
func OpenArchive(archivePath string) (*Archive, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, apperrors.NewIOError("failed to open archive", err).
			WithContext("archive", archivePath)
	}
	return &Archive{Path: archivePath, reader: r}, nil
}

// Members lists the archive's regular files whose extension is in
// extensions, in the order they are stored in the archive
func (a *Archive) Members(extensions []string) []Member {
	var members []Member
	for _, f := range a.reader.File {
		if f.FileInfo().IsDir() || !HasExtension(f.Name, extensions) {
			continue
		}
		members = append(members, Member{Archive: a.Path, Name: f.Name, file: f})
	}
	return members
}

// Close releases the archive
func (a *Archive) Close() error {
	if err := a.reader.Close(); err != nil {
		return fmt.Errorf("failed to close archive %s: %w", a.Path, err)
	}
	return nil
}
