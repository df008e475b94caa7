package dataprocessing

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"campaignclean/internal/config"
	apperrors "campaignclean/internal/errors"
	"campaignclean/internal/files"
	"campaignclean/internal/infrastructure"
	"campaignclean/pkg/contracts/domain"
)

// Loader reads every tabular member of every archive in a directory into one
// unified record set.
type Loader struct {
	cfg     config.LoaderConfig
	logger  *slog.Logger
	metrics *infrastructure.RunMetrics
}

// NewLoader creates a loader
func NewLoader(cfg config.LoaderConfig, logger *slog.Logger, metrics *infrastructure.RunMetrics) *Loader {
	return &Loader{cfg: cfg, logger: logger, metrics: metrics}
}

// Load concatenates the rows of all members, archive by archive in name order
// and member by member in archive order. The first unreadable archive or
// malformed member aborts the load.
func (l *Loader) Load(ctx context.Context, dir string) (*domain.UnifiedSet, error) {
	archives, err := files.NewDiscovery(".", l.cfg.ArchiveExtensions).FindArchives(dir)
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "Discovered input archives",
		slog.String("dir", dir),
		slog.Int("count", len(archives)))

	set := &domain.UnifiedSet{}
	for _, a := range archives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		l.logger.DebugContext(ctx, "Reading archive",
			slog.String("archive", a.Name),
			slog.Int64("size_bytes", a.Size))
		if err := l.loadArchive(ctx, a.Path, set); err != nil {
			return nil, err
		}
	}

	l.metrics.RowsLoaded.Add(float64(set.Len()))
	l.logger.InfoContext(ctx, "Available columns",
		slog.Any("columns", set.Columns),
		slog.Int("rows", set.Len()))

	return set, nil
}

func (l *Loader) loadArchive(ctx context.Context, path string, set *domain.UnifiedSet) error {
	archive, err := files.OpenArchive(path)
	if err != nil {
		return err
	}
	defer archive.Close()
	l.metrics.ArchivesRead.Inc()

	for _, member := range archive.Members(l.cfg.MemberExtensions) {
		if err := ctx.Err(); err != nil {
			return err
		}

		sheet, err := l.parseMember(member)
		if err != nil {
			return err
		}
		set.Append(sheet.Header, sheet.Rows)

		l.logger.DebugContext(ctx, "Parsed archive member",
			slog.String("archive", path),
			slog.String("member", member.Name),
			slog.Int("rows", len(sheet.Rows)))
	}
	return nil
}

func (l *Loader) parseMember(member files.Member) (*Sheet, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	format := strings.TrimPrefix(member.Ext(), ".")
	var sheet *Sheet
	switch member.Ext() {
	case ".xlsx":
		sheet, err = ParseWorkbook(member.Name, rc)
	default:
		sheet, err = ParseCSV(member.Name, rc, l.delimiter())
	}
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			appErr.WithContext("archive", member.Archive)
		}
		return nil, err
	}

	l.metrics.MembersParsed.WithLabelValues(format).Inc()
	return sheet, nil
}

func (l *Loader) delimiter() rune {
	for _, r := range l.cfg.Delimiter {
		return r
	}
	return ','
}
