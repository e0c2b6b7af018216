package ui

// Console-wide constants to avoid magic strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconTitle    = "🎬"
	IconFetching = "🔄"
	IconItem     = "📥"
	IconSuccess  = "✅"
	IconError    = "❌"
	IconSummary  = "✨"
)

// Text fragments
const (
	AppTitle          = "Instagram & TikTok Thumbnail Downloader"
	BannerChar        = "="
	BannerWidth       = 60
	StatusIndent      = "   "
	MsgFetching       = "Fetching thumbnails..."
	MsgSaved          = "Saved successfully"
	MsgFileNotCreated = "File not created"
	MsgDownloadFailed = "Download failed"
	MsgNextStep       = "Next: Update HTML to use local images"
	MsgFailedItems    = "Failed items:"
	MsgInstallFailed  = "Failed to install %s"
	MsgToolMissing    = "%s not found (install skipped)"
	MsgPrepareFailed  = "Failed to create output directory: %v"
	SummaryFormat     = "Downloaded %d/%d thumbnails"
	SavedToFormat     = "Thumbnails saved to %s/ folder"
)
