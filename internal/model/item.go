package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// WorkItem is one source URL paired with the local filename its thumbnail
// is saved under
type WorkItem struct {
	URL      string `mapstructure:"url"`
	Filename string `mapstructure:"filename"`
}

// Validate checks that the item has a URL and a bare filename with an extension
func (w WorkItem) Validate() error {
	if strings.TrimSpace(w.URL) == "" {
		return fmt.Errorf("work item %q: empty url", w.Filename)
	}
	if !strings.HasPrefix(w.URL, "http://") && !strings.HasPrefix(w.URL, "https://") {
		return fmt.Errorf("work item %q: url must be http(s): %s", w.Filename, w.URL)
	}
	if w.Filename == "" {
		return fmt.Errorf("work item %s: empty filename", w.URL)
	}
	if filepath.Base(w.Filename) != w.Filename || strings.ContainsAny(w.Filename, `/\`) {
		return fmt.Errorf("work item %s: filename must not contain a path: %s", w.URL, w.Filename)
	}
	if filepath.Ext(w.Filename) == "" {
		return fmt.Errorf("work item %s: filename has no extension: %s", w.URL, w.Filename)
	}
	return nil
}

// ItemResult is the classified outcome of one work item
type ItemResult struct {
	Item     WorkItem
	Status   ItemStatus
	Path     string        // destination path on disk
	Reason   string        // classified failure reason, empty on success
	Duration time.Duration // wall-clock time spent on the item
}

// Summary aggregates the results of one run in item order
type Summary struct {
	RunID       string
	Planned     int // number of items the run was started with
	Results     []ItemResult
	Aborted     bool
	AbortError  string
	Interrupted bool // stopped before every item was attempted
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewSummary creates an empty summary for a run over planned items
func NewSummary(runID string, planned int) *Summary {
	return &Summary{
		RunID:     runID,
		Planned:   planned,
		Results:   make([]ItemResult, 0, planned),
		StartedAt: time.Now(),
	}
}

// Add appends a result, preserving processing order
func (s *Summary) Add(result ItemResult) {
	s.Results = append(s.Results, result)
}

// Abort marks the run as aborted before any item was attempted
func (s *Summary) Abort(err error) {
	s.Aborted = true
	if err != nil {
		s.AbortError = err.Error()
	}
	s.FinishedAt = time.Now()
}

// Finish records the end time of the run
func (s *Summary) Finish() {
	s.FinishedAt = time.Now()
}

// Succeeded returns the number of successful items
func (s *Summary) Succeeded() int {
	count := 0
	for _, r := range s.Results {
		if r.Status.IsSuccess() {
			count++
		}
	}
	return count
}

// Total returns the number of items the run was planned over
func (s *Summary) Total() int {
	return s.Planned
}

// CountByStatus returns how many results carry the given status
func (s *Summary) CountByStatus(status ItemStatus) int {
	count := 0
	for _, r := range s.Results {
		if r.Status == status {
			count++
		}
	}
	return count
}

// Failed returns the results that did not succeed, in order
func (s *Summary) Failed() []ItemResult {
	var failed []ItemResult
	for _, r := range s.Results {
		if r.Status.IsFailure() {
			failed = append(failed, r)
		}
	}
	return failed
}
