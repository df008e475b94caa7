// Package config provides centralized configuration management for campaignclean.
// It handles loading configuration from multiple sources, validation, and path
// resolution for the input archives and the three output tables.
//
// # Configuration Sources
//
// Configuration is layered in the following order, later sources winning:
//
//	1. Default values (Default)
//	2. YAML file (-config flag, or campaignclean.yaml / configs/campaignclean.yaml)
//	3. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern CAMPAIGN_<SECTION>_<FIELD>:
//
//	CAMPAIGN_PATHS_INPUT_DIR=files/input
//	CAMPAIGN_LOADER_MEMBER_EXTENSIONS=.csv,.xlsx
//	CAMPAIGN_LOGGING_LEVEL=debug
//	CAMPAIGN_METRICS_ENABLED=true
//	CAMPAIGN_METRICS_TEXTFILE_PATH=/var/lib/node_exporter/campaignclean.prom
//
// # Validation
//
// Struct tags are checked with go-playground/validator at load time, so a bad
// delimiter or an unknown member extension fails before any file is read.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := config.ResolvePaths(cfg.Paths)
package config
