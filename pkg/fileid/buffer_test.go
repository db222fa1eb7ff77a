package fileid

import (
	"bytes"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader_Integers(t *testing.T) {
	w := NewWriter(0)
	w.PutInt32(-2)
	w.PutLong(-865678915759834526)
	w.PutInt32(1 << 30)

	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, w.Bytes()[:4])
	assert.Equal(t, []byte{0x62, 0xfa, 0x96, 0xd8, 0x9c, 0x7d, 0xfc, 0xf3}, w.Bytes()[4:12])

	r := NewReader(w.Bytes())
	i, err := r.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i)

	l, err := r.Long()
	require.NoError(t, err)
	assert.Equal(t, int64(-865678915759834526), l)

	i, err = r.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(1<<30), i)
	assert.Zero(t, r.Len())
	assert.Equal(t, 16, r.Offset())
}

func TestWriterReader_LengthPrefixed(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		written int
		header  []byte
	}{
		{name: "empty", size: 0, written: 4, header: []byte{0}},
		{name: "one byte", size: 1, written: 4, header: []byte{1}},
		{name: "longest short form", size: 253, written: 256, header: []byte{253}},
		{name: "shortest long form", size: 254, written: 260, header: []byte{254, 254, 0, 0}},
		{name: "aligned long form", size: 256, written: 260, header: []byte{254, 0, 1, 0}},
		{name: "three byte length", size: 70000, written: 70004, header: []byte{254, 0x70, 0x11, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bytes.Repeat([]byte{0xab}, tt.size)

			w := NewWriter(0)
			w.PutBytes(payload)
			w.PutInt32(7)

			out := w.Bytes()
			require.Equal(t, tt.written+4, len(out))
			assert.Equal(t, tt.header, out[:len(tt.header)])
			for _, pad := range out[len(tt.header)+tt.size : tt.written] {
				assert.Zero(t, pad)
			}

			r := NewReader(out)
			got, err := r.Bytes()
			require.NoError(t, err)
			assert.Equal(t, payload, got)
			assert.Equal(t, tt.written, r.Offset())

			next, err := r.Int32()
			require.NoError(t, err)
			assert.Equal(t, int32(7), next)
		})
	}
}

func TestWriterReader_Text(t *testing.T) {
	w := NewWriter(0)
	w.PutString("https://example.com/пример.png")

	got, err := NewReader(w.Bytes()).Text()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/пример.png", got)
}

func TestReader_Underflow(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *Reader) error
		need int
	}{
		{
			name: "int32",
			data: []byte{1, 2, 3},
			read: func(r *Reader) error { _, err := r.Int32(); return err },
			need: 4,
		},
		{
			name: "long",
			data: []byte{1, 2, 3, 4, 5, 6, 7},
			read: func(r *Reader) error { _, err := r.Long(); return err },
			need: 8,
		},
		{
			name: "bytes without header",
			data: nil,
			read: func(r *Reader) error { _, err := r.Bytes(); return err },
			need: 1,
		},
		{
			name: "short bytes payload",
			data: []byte{10, 1, 2, 3, 4},
			read: func(r *Reader) error { _, err := r.Bytes(); return err },
			need: 12,
		},
		{
			name: "long bytes header",
			data: []byte{254, 1},
			read: func(r *Reader) error { _, err := r.Bytes(); return err },
			need: 4,
		},
		{
			name: "long bytes payload",
			data: []byte{254, 0, 1, 0, 1, 2},
			read: func(r *Reader) error { _, err := r.Bytes(); return err },
			need: 260,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			err := tt.read(r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBufferUnderflow))

			var underflow *UnderflowError
			require.True(t, errors.As(err, &underflow))
			assert.Equal(t, tt.need, underflow.Need)
			assert.Equal(t, len(tt.data), underflow.Have)
			assert.Zero(t, r.Offset(), "failed read must not move the cursor")
		})
	}
}
