package registry

import "time"

const filesTable = "inspected_files"

type DBFile struct {
	FileUniqueID     string    `db:"file_unique_id"`
	FileID           string    `db:"file_id"`
	Kind             string    `db:"kind"`
	FileType         string    `db:"file_type"`
	DCID             int32     `db:"dc_id"`
	ID               int64     `db:"id"`
	AccessHash       int64     `db:"access_hash"`
	HasFileReference bool      `db:"has_file_reference"`
	SeenAt           time.Time `db:"seen_at"`
}

var fileColumns = []string{
	"file_unique_id",
	"file_id",
	"kind",
	"file_type",
	"dc_id",
	"id",
	"access_hash",
	"has_file_reference",
	"seen_at",
}

func (f *DBFile) values() []any {
	return []any{f.FileUniqueID, f.FileID, f.Kind, f.FileType, f.DCID, f.ID, f.AccessHash, f.HasFileReference, f.SeenAt}
}

func (f *DBFile) pointers() []any {
	return []any{&f.FileUniqueID, &f.FileID, &f.Kind, &f.FileType, &f.DCID, &f.ID, &f.AccessHash, &f.HasFileReference, &f.SeenAt}
}
