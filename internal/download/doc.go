package download

// Package download implements the thumbnail pipeline built on top of the
// yt-dlp command line tool. The Fetcher runs one thumbnail-only extraction
// per URL and reconciles the output file name; the Service drives a run over
// an ordered list of work items and classifies each outcome.
