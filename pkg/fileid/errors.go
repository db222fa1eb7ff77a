package fileid

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrMalformedInput         = errors.New("malformed input")
	ErrUnknownFileType        = errors.New("unknown file type")
	ErrUnknownThumbnailSource = errors.New("unknown thumbnail source")
	ErrUnknownUniqueIDVariant = errors.New("unknown unique id variant")
	ErrBufferUnderflow        = errors.New("buffer underflow")
	ErrInvalidEncodingState   = errors.New("invalid encoding state")
)

// UnderflowError is returned when a read needs more bytes than the record holds.
type UnderflowError struct {
	Offset int
	Need   int
	Have   int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%s: need %d bytes at offset %d, have %d", ErrBufferUnderflow, e.Need, e.Offset, e.Have)
}

func (e *UnderflowError) Unwrap() error {
	return ErrBufferUnderflow
}
