package fileid

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRLEEncode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{name: "empty", in: nil, want: []byte{}},
		{name: "no zeros", in: []byte{1, 2, 3}, want: []byte{1, 2, 3}},
		{name: "inner run", in: []byte{1, 0, 0, 0, 5}, want: []byte{1, 0, 3, 5}},
		{name: "trailing run", in: []byte{7, 0, 0}, want: []byte{7, 0, 2}},
		{name: "leading run", in: []byte{0, 9}, want: []byte{0, 1, 9}},
		{name: "max run", in: make([]byte, 255), want: []byte{0, 255}},
		{name: "split run", in: make([]byte, 300), want: []byte{0, 255, 0, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rleEncode(tt.in))
		})
	}
}

func TestRLEDecode(t *testing.T) {
	got, err := rleDecode([]byte{1, 0, 3, 5, 0, 0, 6})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 5, 6}, got)

	_, err = rleDecode([]byte{1, 0})
	assert.True(t, errors.Is(err, ErrMalformedInput))
}

func TestRLE_RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	inputs := [][]byte{
		{},
		make([]byte, 1),
		make([]byte, 256),
		make([]byte, 1000),
		bytes.Repeat([]byte{0, 1}, 64),
	}
	for n := 0; n < 50; n++ {
		b := make([]byte, rnd.Intn(600))
		for i := range b {
			// Mostly zeros, to exercise long runs.
			if rnd.Intn(4) == 0 {
				b[i] = byte(rnd.Intn(256))
			}
		}
		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		out, err := rleDecode(rleEncode(in))
		require.NoError(t, err)
		assert.Equal(t, len(in), len(out))
		assert.True(t, bytes.Equal(in, out))
	}
}
