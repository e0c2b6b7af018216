package download

import (
	"context"
)

// ToolResolver makes sure the extraction tool can be run.
type ToolResolver interface {
	// EnsureAvailable checks the tool and installs it when missing
	EnsureAvailable(ctx context.Context) bool

	// Tool returns the tool name used in messages
	Tool() string

	// ManualInstallHint returns the instruction shown when the tool is unavailable
	ManualInstallHint() string

	// InstallSkipped reports whether EnsureAvailable only checks the tool
	InstallSkipped() bool
}

// ThumbnailFetcher downloads the thumbnail of one URL to a destination path.
type ThumbnailFetcher interface {
	Fetch(ctx context.Context, url, dest string) FetchResult
}
