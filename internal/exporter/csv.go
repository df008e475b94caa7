package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"campaignclean/internal/config"
	apperrors "campaignclean/internal/errors"
	"campaignclean/pkg/contracts/domain"
)

// CSVWriter writes derived tables as comma-delimited files
type CSVWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance. Relative file paths are
// resolved against the output directory.
func NewCSVWriter(paths *config.Paths, logger *slog.Logger) *CSVWriter {
	return &CSVWriter{paths: paths, logger: logger}
}

// WriteTable writes the table's header followed by its rows, replacing any
// existing file. No byte order mark is written, so identical tables always
// produce identical files.
func (w *CSVWriter) WriteTable(filePath string, table domain.Table) error {
	fullPath := w.resolvePath(filePath)

	w.logger.Info("Writing CSV file",
		slog.String("table", table.Name),
		slog.String("full_path", fullPath),
		slog.Int("record_count", table.Len()))

	if err := os.MkdirAll(filepath.Dir(fullPath), config.DirPerm); err != nil {
		return apperrors.NewIOError("failed to create output directory", err).
			WithContext("file", fullPath)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.FilePerm)
	if err != nil {
		return apperrors.NewIOError("failed to open output file", err).
			WithContext("file", fullPath)
	}

	if err := writeRecords(file, table); err != nil {
		file.Close()
		return apperrors.NewIOError("failed to write output file", err).
			WithContext("file", fullPath)
	}

	if err := file.Close(); err != nil {
		return apperrors.NewIOError("failed to close output file", err).
			WithContext("file", fullPath)
	}
	return nil
}

func writeRecords(file *os.File, table domain.Table) error {
	writer := csv.NewWriter(file)
	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return err
	}
	return writer.Error()
}

// resolvePath leaves absolute paths untouched and places relative ones in
// the output directory
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.paths == nil {
		return filePath
	}
	return w.paths.GetOutputPath(filePath)
}
