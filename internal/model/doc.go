package model

// Package model defines domain data structures used across the app: work
// items, per-item results, the ordered catalog and the run summary. Values
// are plain data with explicit status classification.
