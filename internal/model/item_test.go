package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    WorkItem
		wantErr string
	}{
		{
			name: "valid item",
			item: WorkItem{URL: "https://example.com/a", Filename: "out1.jpg"},
		},
		{
			name:    "empty url",
			item:    WorkItem{URL: " ", Filename: "out1.jpg"},
			wantErr: "empty url",
		},
		{
			name:    "non http url",
			item:    WorkItem{URL: "ftp://example.com/a", Filename: "out1.jpg"},
			wantErr: "must be http(s)",
		},
		{
			name:    "empty filename",
			item:    WorkItem{URL: "https://example.com/a"},
			wantErr: "empty filename",
		},
		{
			name:    "filename with path",
			item:    WorkItem{URL: "https://example.com/a", Filename: "../out1.jpg"},
			wantErr: "must not contain a path",
		},
		{
			name:    "filename without extension",
			item:    WorkItem{URL: "https://example.com/a", Filename: "out1"},
			wantErr: "no extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSummary_Counts(t *testing.T) {
	summary := NewSummary("run-1", 3)
	summary.Add(ItemResult{Item: WorkItem{Filename: "a.jpg"}, Status: ItemStatusSuccess})
	summary.Add(ItemResult{Item: WorkItem{Filename: "b.jpg"}, Status: ItemStatusDownloadFailed, Reason: "timed out"})
	summary.Add(ItemResult{Item: WorkItem{Filename: "c.jpg"}, Status: ItemStatusFileNotCreated})
	summary.Finish()

	assert.Equal(t, 1, summary.Succeeded())
	assert.Equal(t, 3, summary.Total())
	assert.Equal(t, 1, summary.CountByStatus(ItemStatusDownloadFailed))
	assert.Equal(t, 1, summary.CountByStatus(ItemStatusFileNotCreated))
	assert.False(t, summary.FinishedAt.IsZero())

	failed := summary.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "b.jpg", failed[0].Item.Filename)
	assert.Equal(t, "c.jpg", failed[1].Item.Filename)
}

func TestSummary_Abort(t *testing.T) {
	summary := NewSummary("run-2", 11)
	summary.Abort(errors.New("yt-dlp unavailable"))

	assert.True(t, summary.Aborted)
	assert.Equal(t, "yt-dlp unavailable", summary.AbortError)
	assert.Empty(t, summary.Results)
	assert.Equal(t, 0, summary.Succeeded())
	assert.Equal(t, 11, summary.Total())
}

func TestCatalog_Validate(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		c := NewCatalog([]WorkItem{
			{URL: "https://example.com/a", Filename: "out1.jpg"},
			{URL: "https://example.com/b", Filename: "out2.jpg"},
		})
		require.NoError(t, c.Validate())
		assert.Len(t, c.Items, 2)
	})

	t.Run("empty catalog", func(t *testing.T) {
		err := NewCatalog(nil).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("duplicate filename", func(t *testing.T) {
		c := NewCatalog([]WorkItem{
			{URL: "https://example.com/a", Filename: "out1.jpg"},
			{URL: "https://example.com/b", Filename: "out1.jpg"},
		})
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate filename out1.jpg")
	})

	t.Run("invalid item is reported by position", func(t *testing.T) {
		c := NewCatalog([]WorkItem{
			{URL: "https://example.com/a", Filename: "out1.jpg"},
			{URL: "", Filename: "out2.jpg"},
		})
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 2")
	})
}

func TestNewCatalog_CopiesItems(t *testing.T) {
	items := []WorkItem{{URL: "https://example.com/a", Filename: "out1.jpg"}}
	c := NewCatalog(items)
	items[0].Filename = "changed.jpg"

	assert.Equal(t, "out1.jpg", c.Items[0].Filename)
}
