package file

type RequestFile struct {
	Name   string
	FileID string
}

type ResponseFile struct {
	Name     string
	Path     string
	Checksum string
	FileID   string
}

type DownloadResult struct {
	Result *ResponseFile
	Index  int
	Total  int
	Err    error
}
