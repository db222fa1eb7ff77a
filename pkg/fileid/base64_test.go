package fileid

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64_RoundTrip(t *testing.T) {
	for n := 0; n < 12; n++ {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(0xf8 + i)
		}
		s := base64Encode(b)
		assert.NotContains(t, s, "=")
		assert.NotContains(t, s, "+")
		assert.NotContains(t, s, "/")

		got, err := base64Decode(s)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func TestBase64Decode(t *testing.T) {
	got, err := base64Decode("-_8")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0xff}, got)

	got, err = base64Decode("-_8=")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfb, 0xff}, got)

	for _, s := range []string{"A", "AAAAA", "AAAA*AA"} {
		_, err := base64Decode(s)
		assert.True(t, errors.Is(err, ErrMalformedInput), s)
	}
}
