package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemStatus_IsSuccess(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusSuccess, true},
		{ItemStatusDownloadFailed, false},
		{ItemStatusFileNotCreated, false},
		{ItemStatus(""), false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.status.IsSuccess(), "ItemStatus(%q).IsSuccess()", test.status)
	}
}

func TestItemStatus_IsFailure(t *testing.T) {
	tests := []struct {
		status   ItemStatus
		expected bool
	}{
		{ItemStatusSuccess, false},
		{ItemStatusDownloadFailed, true},
		{ItemStatusFileNotCreated, true},
		{ItemStatus(""), false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.status.IsFailure(), "ItemStatus(%q).IsFailure()", test.status)
	}
}

func TestItemStatus_String(t *testing.T) {
	assert.Equal(t, "download_failed", ItemStatusDownloadFailed.String())
}
