package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/ytget/yt-thumbnails/internal/platform"
)

// yt-dlp constants for thumbnail extraction
const (
	SkipDownloadFlag      = "--skip-download"
	WriteThumbnailFlag    = "--write-thumbnail"
	ConvertThumbnailsFlag = "--convert-thumbnails"
	OutputFlag            = "-o"

	// Target format of the converted thumbnail
	DefaultThumbnailFormat = "jpg"
	// Raw format yt-dlp leaves behind when conversion does not happen
	DefaultFallbackFormat = "webp"

	DefaultFetchTimeout = 30 * time.Second
)

// Fetch failure causes
var (
	ErrTimeout  = errors.New("timed out")
	ErrCanceled = errors.New("canceled")
	ErrLaunch   = errors.New("failed to run extraction tool")
)

// FetchResult is the outcome of a single fetch
type FetchResult struct {
	Path string // destination path, set on success
	Err  error  // classified failure, nil on success
}

// OK reports whether the thumbnail was placed at the destination
func (r FetchResult) OK() bool {
	return r.Err == nil
}

// Reason returns the failure description, or an empty string on success
func (r FetchResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Fetcher runs yt-dlp in thumbnail-only mode
type Fetcher struct {
	runner   platform.CommandRunner
	tool     string
	format   string
	fallback string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewFetcher creates a fetcher invoking tool through runner
func NewFetcher(runner platform.CommandRunner, tool string, logger *slog.Logger) *Fetcher {
	if tool == "" {
		tool = platform.DefaultToolName
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fetcher{
		runner:   runner,
		tool:     tool,
		format:   DefaultThumbnailFormat,
		fallback: DefaultFallbackFormat,
		timeout:  DefaultFetchTimeout,
		logger:   logger,
	}
}

// SetTimeout sets the wall-clock limit for one tool invocation
func (f *Fetcher) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		f.timeout = timeout
	}
}

// Timeout returns the per-invocation time limit
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Formats returns the probed extensions in preference order
func (f *Fetcher) Formats() []string {
	return []string{f.format, f.fallback}
}

// BuildArgs builds the yt-dlp command arguments for url and dest
func (f *Fetcher) BuildArgs(url, dest string) []string {
	return []string{
		SkipDownloadFlag,                // No media download
		WriteThumbnailFlag,              // Thumbnail only
		ConvertThumbnailsFlag, f.format, // Target image format
		OutputFlag, platform.OutputBasePath(dest), // yt-dlp appends the extension
		url,
	}
}

// Fetch downloads the thumbnail of url to dest. It never panics or returns
// an error directly; the outcome is classified in the result. The exit
// status of the tool is not consulted, only the files it leaves behind.
// Files from earlier runs are removed first, so a failed fetch leaves no
// thumbnail at dest.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) FetchResult {
	if err := platform.ClearThumbnail(dest, f.Formats()); err != nil {
		return f.fail(url, dest, err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	out, err := f.runner.Run(ctx, f.tool, f.BuildArgs(url, dest)...)

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return f.fail(url, dest, fmt.Errorf("%w after %s", ErrTimeout, f.timeout))
	case errors.Is(ctx.Err(), context.Canceled):
		return f.fail(url, dest, ErrCanceled)
	case err != nil:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return f.fail(url, dest, fmt.Errorf("%w: %v", ErrLaunch, err))
		}
		// yt-dlp may exit non-zero after writing the thumbnail, e.g. on
		// a failed post-processing step
		f.logger.Debug("extraction tool exited with error",
			"url", url,
			"code", exitErr.ExitCode(),
			"output", lastLine(out))
	}

	path, err := platform.ReconcileThumbnail(dest, f.Formats())
	if err != nil {
		return f.fail(url, dest, err)
	}

	f.logger.Debug("thumbnail saved", "url", url, "path", path)
	return FetchResult{Path: path}
}

// fail logs the classified failure and wraps it in a result
func (f *Fetcher) fail(url, dest string, err error) FetchResult {
	f.logger.Warn("thumbnail fetch failed", "url", url, "dest", dest, "reason", err)
	return FetchResult{Err: err}
}

// lastLine returns the last non-empty line of tool output
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
