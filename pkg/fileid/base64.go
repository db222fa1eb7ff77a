package fileid

import (
	"encoding/base64"
	"strings"

	"github.com/go-faster/errors"
)

func base64Encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// base64Decode accepts unpadded base64url. Inputs whose length is 1 modulo 4
// cannot come from any byte sequence and are rejected.
func base64Decode(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	if len(s)%4 == 1 {
		return nil, errors.Wrapf(ErrMalformedInput, "base64url length %d", len(s))
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "base64url: %v", err)
	}
	return b, nil
}
