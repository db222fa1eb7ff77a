package file

import "github.com/go-faster/errors"

var (
	ErrFileExists        = errors.New("file already exists")
	ErrFileTooLarge      = errors.New("file is too large for the Bot API")
	ErrCalculateChecksum = errors.New("failed to calculate checksum")
)

type ErrDownloadFailed struct {
	Err error
}

func (e *ErrDownloadFailed) Error() string {
	return "failed to download file: " + e.Err.Error()
}

func (e *ErrDownloadFailed) Unwrap() error {
	return e.Err
}

type ErrPrepareFilepath struct {
	Err error
}

func (e *ErrPrepareFilepath) Error() string {
	return "failed to prepare file path: " + e.Err.Error()
}

func (e *ErrPrepareFilepath) Unwrap() error {
	return e.Err
}
