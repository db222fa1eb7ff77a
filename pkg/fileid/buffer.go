package fileid

import (
	"github.com/go-faster/errors"
	"github.com/gotd/td/bin"
)

const (
	longLenMark  = 254
	longLenBytes = 4
)

// Writer builds a TL record: little-endian integers and length-prefixed,
// 4-byte aligned byte strings.
type Writer struct {
	buf bin.Buffer
}

// NewWriter returns a Writer with room for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: bin.Buffer{Buf: make([]byte, 0, size)}}
}

func (w *Writer) PutInt32(v int32) {
	w.buf.PutInt32(v)
}

func (w *Writer) PutLong(v int64) {
	w.buf.PutLong(v)
}

// PutBytes writes b with a one byte length prefix when it is at most 253 bytes
// long and with a 254 marker plus 3 length bytes otherwise, then zero-pads to
// a 4 byte boundary.
func (w *Writer) PutBytes(b []byte) {
	w.buf.PutBytes(b)
}

func (w *Writer) PutString(s string) {
	w.buf.PutString(s)
}

// Bytes returns the record written so far. The slice aliases the Writer.
func (w *Writer) Bytes() []byte {
	return w.buf.Buf
}

func (w *Writer) Len() int {
	return len(w.buf.Buf)
}

// Reader consumes a TL record sequentially. Reading past the end returns an
// *UnderflowError and leaves the cursor unchanged.
type Reader struct {
	buf  bin.Buffer
	size int
}

func NewReader(b []byte) *Reader {
	return &Reader{buf: bin.Buffer{Buf: b}, size: len(b)}
}

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.size - len(r.buf.Buf)
}

// Len is the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf.Buf)
}

func (r *Reader) need(n int) error {
	if have := len(r.buf.Buf); have < n {
		return &UnderflowError{Offset: r.Offset(), Need: n, Have: have}
	}
	return nil
}

func (r *Reader) Int32() (int32, error) {
	if err := r.need(bin.Word); err != nil {
		return 0, err
	}
	v, err := r.buf.Int32()
	if err != nil {
		return 0, errors.Wrap(err, "read int32")
	}
	return v, nil
}

func (r *Reader) Long() (int64, error) {
	if err := r.need(bin.Word * 2); err != nil {
		return 0, err
	}
	v, err := r.buf.Long()
	if err != nil {
		return 0, errors.Wrap(err, "read long")
	}
	return v, nil
}

// Bytes reads a length-prefixed byte string and skips its padding.
// The returned slice is a copy.
func (r *Reader) Bytes() ([]byte, error) {
	if err := r.need(framedLen(r.buf.Buf)); err != nil {
		return nil, err
	}
	v, err := r.buf.Bytes()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "read bytes at offset %d: %v", r.Offset(), err)
	}
	return v, nil
}

// Text reads a length-prefixed UTF-8 string.
func (r *Reader) Text() (string, error) {
	v, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// framedLen is the total size, header and padding included, of the
// length-prefixed string starting at b[0]. It only looks at as much of the
// header as is present.
func framedLen(b []byte) int {
	if len(b) == 0 {
		return 1
	}
	if b[0] != longLenMark {
		n := 1 + int(b[0])
		return n + padding(n)
	}
	if len(b) < longLenBytes {
		return longLenBytes
	}
	n := int(b[1]) | int(b[2])<<8 | int(b[3])<<16
	return longLenBytes + n + padding(n)
}

func padding(n int) int {
	return (4 - n%4) % 4
}
