package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "campaignclean/internal/errors"
)

// EnvPrefix namespaces every environment override, e.g. CAMPAIGN_LOGGING_LEVEL.
const EnvPrefix = "CAMPAIGN"

// Config represents the complete application configuration
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Loader  LoaderConfig  `yaml:"loader" envconfig:"LOADER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Metrics MetricsConfig `yaml:"metrics" envconfig:"METRICS"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
}

// PathsConfig contains input and output locations
type PathsConfig struct {
	InputDir      string `yaml:"input_dir" envconfig:"INPUT_DIR" validate:"required"`
	OutputDir     string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	ClientFile    string `yaml:"client_file" envconfig:"CLIENT_FILE" validate:"required,excludesall=/\\"`
	CampaignFile  string `yaml:"campaign_file" envconfig:"CAMPAIGN_FILE" validate:"required,excludesall=/\\"`
	EconomicsFile string `yaml:"economics_file" envconfig:"ECONOMICS_FILE" validate:"required,excludesall=/\\"`
}

// LoaderConfig controls archive discovery and member parsing
type LoaderConfig struct {
	ArchiveExtensions []string `yaml:"archive_extensions" envconfig:"ARCHIVE_EXTENSIONS" validate:"required,min=1,dive,startswith=."`
	MemberExtensions  []string `yaml:"member_extensions" envconfig:"MEMBER_EXTENSIONS" validate:"required,min=1,dive,oneof=.csv .xlsx"`
	Delimiter         string   `yaml:"delimiter" envconfig:"DELIMITER" validate:"required,len=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// MetricsConfig controls the end-of-run metrics textfile
type MetricsConfig struct {
	Enabled      bool   `yaml:"enabled" envconfig:"ENABLED"`
	TextfilePath string `yaml:"textfile_path" envconfig:"TEXTFILE_PATH" validate:"required_if=Enabled true"`
}

// TracingConfig controls per-step trace export
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" envconfig:"ENABLED"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Environment string `yaml:"environment" envconfig:"ENVIRONMENT"`
}

// Default returns default configuration. The defaults reproduce the plain
// files/input -> files/output behaviour with no extra outputs.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:      DefaultInputDir,
			OutputDir:     DefaultOutputDir,
			ClientFile:    ClientFileName,
			CampaignFile:  CampaignFileName,
			EconomicsFile: EconomicsFileName,
		},
		Loader: LoaderConfig{
			ArchiveExtensions: []string{".zip"},
			MemberExtensions:  []string{".csv", ".xlsx"},
			Delimiter:         ",",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/campaignclean.log",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			Environment: "development",
		},
	}
}

// Load builds configuration from defaults, then the config file (if any),
// then environment variables. configFile may be empty, in which case the
// usual locations are searched.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configFile, err)
		}
	}

	// Only variables that are actually set override file and default values.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML settings onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

var validate = validator.New()

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return apperrors.NewValidationError(
				fmt.Sprintf("invalid %s: failed %q check (value %v)", first.Namespace(), first.Tag(), first.Value()), err).
				WithContext("field", first.Namespace())
		}
		return apperrors.NewValidationError("invalid configuration", err)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"campaignclean.yaml",
		"configs/campaignclean.yaml",
	}

	for _, location := range locations {
		if FileExists(location) {
			return location
		}
	}

	return ""
}
