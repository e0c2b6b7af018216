package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, process execution, and the yt-dlp availability check
// with its on-demand user-scoped install.
