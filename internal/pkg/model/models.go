package model

import "time"

// File is one attachment as seen by the Bot API.
type File struct {
	Name         string
	Kind         string
	Size         uint64
	FileID       string
	FileUniqueID string
}

// Record is a registry entry for an inspected file.
type Record struct {
	FileUniqueID     string
	FileID           string
	Kind             string
	Type             string
	DCID             int32
	ID               int64
	AccessHash       int64
	HasFileReference bool
	SeenAt           time.Time
}
