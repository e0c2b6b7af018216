package model

// ItemStatus represents the outcome of processing a single work item
type ItemStatus string

const (
	// ItemStatusSuccess means the thumbnail exists at the destination path
	ItemStatusSuccess ItemStatus = "success"

	// ItemStatusDownloadFailed means the tool could not be run, timed out,
	// or produced no recognizable thumbnail file
	ItemStatusDownloadFailed ItemStatus = "download_failed"

	// ItemStatusFileNotCreated means the fetch reported success but the
	// destination file is missing or empty afterwards
	ItemStatusFileNotCreated ItemStatus = "file_not_created"
)

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsSuccess returns true if the item produced its thumbnail
func (s ItemStatus) IsSuccess() bool {
	return s == ItemStatusSuccess
}

// IsFailure returns true for any of the failure classifications
func (s ItemStatus) IsFailure() bool {
	return s == ItemStatusDownloadFailed || s == ItemStatusFileNotCreated
}
