package ui

// Package ui contains the console user interface for the application. It
// renders phase banners, per-item progress and status lines, and the final
// summary. Output is human-readable and not meant to be parsed.
