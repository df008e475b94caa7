package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains every resolved location a run touches.
// This is the single source of truth for file paths in the application.
type Paths struct {
	InputDir     string
	OutputDir    string
	ClientCSV    string
	CampaignCSV  string
	EconomicsCSV string
}

// ResolvePaths turns the configured locations into absolute paths
func ResolvePaths(cfg PathsConfig) (*Paths, error) {
	inputDir, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input dir %s: %w", cfg.InputDir, err)
	}
	outputDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output dir %s: %w", cfg.OutputDir, err)
	}

	return &Paths{
		InputDir:     inputDir,
		OutputDir:    outputDir,
		ClientCSV:    filepath.Join(outputDir, cfg.ClientFile),
		CampaignCSV:  filepath.Join(outputDir, cfg.CampaignFile),
		EconomicsCSV: filepath.Join(outputDir, cfg.EconomicsFile),
	}, nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (p *Paths) EnsureOutputDir() error {
	if err := os.MkdirAll(p.OutputDir, DirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.OutputDir, err)
	}
	slog.Debug("Ensured directory exists", slog.String("directory", p.OutputDir))
	return nil
}

// GetOutputPath returns the path for a file in the output directory
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs path resolution information for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("input", p.InputDir),
			slog.String("output", p.OutputDir),
		),
		slog.Group("output_files",
			slog.String("client", p.ClientCSV),
			slog.String("campaign", p.CampaignCSV),
			slog.String("economics", p.EconomicsCSV),
		))
}
