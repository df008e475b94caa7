package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"campaignclean/internal/config"
	apperrors "campaignclean/internal/errors"
	"campaignclean/internal/infrastructure"
	"campaignclean/internal/operations"
	"campaignclean/pkg/contracts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		slog.Error("campaignclean failed",
			slog.String("error_type", string(apperrors.TypeOf(err))),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run loads configuration, normalizes every archive in the input directory and
// writes the three derived tables. Flags override the configured directories.
func run(ctx context.Context, args []string, console io.Writer) error {
	flags := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	flags.SetOutput(console)
	inDir := flags.String("in", "", "input directory holding the .zip archives (default files/input)")
	outDir := flags.String("out", "", "output directory for client.csv, campaign.csv and economics.csv (default files/output)")
	configFile := flags.String("config", "", "optional YAML configuration file")
	showVersion := flags.Bool("version", false, "print version information and exit")
	if err := flags.Parse(args); err != nil {
		return apperrors.NewConfigError("invalid command line", err)
	}
	if *showVersion {
		fmt.Fprintln(console, contracts.Build())
		return nil
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return apperrors.NewConfigError("failed to load configuration", err)
	}
	if *inDir != "" {
		cfg.Paths.InputDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging, console)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize logger", err)
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.EnsureRunID(ctx)

	tracing, err := infrastructure.InitializeTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize tracing", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			logger.WarnContext(ctx, "Tracing shutdown failed", slog.String("error", err.Error()))
		}
	}()

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		return apperrors.NewConfigError("failed to resolve paths", err)
	}
	paths.LogPathResolution(logger)

	if err := paths.EnsureOutputDir(); err != nil {
		return apperrors.NewIOError("failed to create output directory", err).
			WithContext("dir", paths.OutputDir)
	}

	info := contracts.Build()
	logger.InfoContext(ctx, "Starting campaign data normalization",
		slog.String("version", info.Version),
		slog.String("git_commit", info.GitCommit),
		slog.String("input_dir", paths.InputDir),
		slog.String("output_dir", paths.OutputDir))

	metrics := infrastructure.NewRunMetrics()
	normalizer := operations.NewNormalizer(cfg, paths, logger, metrics, tracing.Tracer)
	_, runErr := normalizer.Run(ctx)

	if cfg.Metrics.Enabled {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			logger.WarnContext(ctx, "Failed to write metrics", slog.String("error", err.Error()))
		}
	}

	if runErr != nil {
		return fmt.Errorf("normalization failed: %w", runErr)
	}
	return nil
}
