// Package fileid encodes and decodes Bot API file_id and file_unique_id strings.
//
// A file_id is the base64url form of a zero-run compressed TL record followed by
// the [subVersion, version] trailer. A file_unique_id is the same minus the trailer
// and carries only the fields that identify the file across bots.
package fileid

// PersistentVersion is the major format version produced by current servers.
const PersistentVersion = 4

// FileID is a decoded file_id. Values are built once, either by the caller
// or by DecodeFileID, and are not mutated afterwards.
type FileID struct {
	Version    uint8
	SubVersion uint8
	DCID       int32
	Type       FileType
	ID         int64
	AccessHash int64
	// FileReference is nil when the record has none.
	FileReference []byte
	// URL is set only for web-location records, which carry nothing but
	// the URL, ID and AccessHash.
	URL string
	// Photo is set iff Type.IsPhoto() and the record is not a web location.
	Photo *PhotoInfo
}

// HasWebLocation reports whether f points at a remote URL.
func (f FileID) HasWebLocation() bool {
	return f.URL != ""
}

// HasFileReference reports whether f carries a file reference.
func (f FileID) HasFileReference() bool {
	return len(f.FileReference) > 0
}

type PhotoInfo struct {
	VolumeID int64
	LocalID  int32
	Source   PhotoSizeSource
}

// UniqueFileID is a decoded file_unique_id. Only the fields of Type are meaningful:
// UniqueWeb uses URL, UniquePhoto uses VolumeID and LocalID, UniqueDocument uses ID.
type UniqueFileID struct {
	Type     UniqueType
	URL      string
	VolumeID int64
	LocalID  int32
	ID       int64
}

// Pair holds both textual identifiers of one file.
type Pair struct {
	FileID       string
	FileUniqueID string
}
