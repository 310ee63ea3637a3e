package uridecode

import (
	"bytes"
	"errors"

	"github.com/indigo-web/urlround/internal/hexconv"
)

// ErrBadEscape is returned on truncated or non-hexadecimal percent sequences
var ErrBadEscape = errors.New("malformed percent-encoded sequence")

// Decode translates escaped characters into their true form. Unlike lenient
// decoders, any broken sequence fails the whole call: a partially decoded
// value is worse than no value when the result is compared against ground
// truth
func Decode(src, buff []byte) ([]byte, error) {
	for i := bytes.IndexByte(src, '%'); i != -1; i = bytes.IndexByte(src, '%') {
		if i >= len(src)-2 {
			return nil, ErrBadEscape
		}

		hi, lo := src[i+1], src[i+2]
		if !hexconv.Valid(hi) || !hexconv.Valid(lo) {
			return nil, ErrBadEscape
		}

		buff = append(buff, src[:i]...)
		buff = append(buff, hexconv.Parse(hi)<<4|hexconv.Parse(lo))
		src = src[i+3:]
	}

	if len(buff) == 0 {
		return src, nil
	}

	return append(buff, src...), nil
}

// DecodeString is Decode for strings
func DecodeString(s string) (string, error) {
	decoded, err := Decode([]byte(s), nil)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}
