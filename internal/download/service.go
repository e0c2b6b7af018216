package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-thumbnails/internal/model"
	"github.com/ytget/yt-thumbnails/internal/platform"
	"github.com/ytget/yt-thumbnails/internal/ui"
)

// Run ID prefix
const (
	RunIDPrefix = "run-"
)

// Reason recorded when the fetch succeeded but the destination is unusable
const (
	ReasonFileNotCreated = "destination missing or empty after fetch"
)

// Service runs thumbnail downloads for an ordered list of work items
type Service struct {
	resolver  ToolResolver
	fetcher   ThumbnailFetcher
	reporter  *ui.Reporter
	outputDir string
	logger    *slog.Logger
}

// NewService creates a new run service writing thumbnails into outputDir
func NewService(resolver ToolResolver, fetcher ThumbnailFetcher, reporter *ui.Reporter, outputDir string, logger *slog.Logger) *Service {
	if reporter == nil {
		reporter = ui.NewReporter(io.Discard)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		resolver:  resolver,
		fetcher:   fetcher,
		reporter:  reporter,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Run processes items one at a time, in order. The tool check happens once
// before anything else; if it fails no item is attempted and no directory
// is created. Per-item failures never stop the run. Cancelling ctx stops the
// loop before the next item.
func (s *Service) Run(ctx context.Context, items []model.WorkItem) *model.Summary {
	summary := model.NewSummary(generateRunID(), len(items))
	logger := s.logger.With("run_id", summary.RunID)

	s.reporter.Title()

	// Init
	if !s.resolver.EnsureAvailable(ctx) {
		if s.resolver.InstallSkipped() {
			s.reporter.ToolMissing(s.resolver.Tool(), s.resolver.ManualInstallHint())
		} else {
			s.reporter.ToolUnavailable(s.resolver.Tool(), s.resolver.ManualInstallHint())
		}
		summary.Abort(fmt.Errorf("%w: %s", platform.ErrToolUnavailable, s.resolver.Tool()))
		logger.Error("run aborted", "reason", summary.AbortError)
		return summary
	}

	// Prepare
	if err := platform.CreateDirectoryIfNotExists(s.outputDir); err != nil {
		s.reporter.PrepareFailed(err)
		summary.Abort(err)
		logger.Error("run aborted", "reason", summary.AbortError)
		return summary
	}

	// Iterate
	s.reporter.FetchingStarted()
	logger.Info("run started", "items", len(items), "output_dir", s.outputDir)

	for i, item := range items {
		if ctx.Err() != nil {
			summary.Interrupted = true
			logger.Warn("run interrupted", "completed", i, "items", len(items))
			break
		}
		summary.Add(s.processItem(ctx, logger, item))
	}

	// Summarize
	summary.Finish()
	s.reporter.Summary(summary, filepath.Base(s.outputDir))
	logger.Info("run finished",
		"succeeded", summary.Succeeded(),
		"download_failed", summary.CountByStatus(model.ItemStatusDownloadFailed),
		"file_not_created", summary.CountByStatus(model.ItemStatusFileNotCreated),
		"total", summary.Total(),
		"elapsed", summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))

	return summary
}

// processItem fetches one item and classifies the outcome against the file
// system state right after the fetch
func (s *Service) processItem(ctx context.Context, logger *slog.Logger, item model.WorkItem) model.ItemResult {
	dest := filepath.Join(s.outputDir, item.Filename)
	s.reporter.ItemStarted(item)

	started := time.Now()
	fetched := s.fetcher.Fetch(ctx, item.URL, dest)

	result := model.ItemResult{
		Item: item,
		Path: dest,
	}

	switch {
	case !fetched.OK():
		result.Status = model.ItemStatusDownloadFailed
		result.Reason = fetched.Reason()
	case !platform.FileExistsNonEmpty(dest):
		result.Status = model.ItemStatusFileNotCreated
		result.Reason = ReasonFileNotCreated
	default:
		result.Status = model.ItemStatusSuccess
	}
	result.Duration = time.Since(started)

	logger.Debug("item processed",
		"file", item.Filename,
		"status", result.Status,
		"reason", result.Reason,
		"duration", result.Duration.Round(time.Millisecond))

	s.reporter.ItemFinished(result)
	return result
}

// generateRunID generates a unique run ID using UUID v7 for time ordering
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
