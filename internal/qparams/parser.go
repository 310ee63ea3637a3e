package qparams

import (
	"errors"
	"strings"

	"github.com/indigo-web/indigo/kv"
	"github.com/indigo-web/urlround/internal/uridecode"
	"github.com/flrdv/uf"
)

var ErrBadQuery = errors.New("malformed query string")

// Parse splits a raw query string into percent-decoded pairs, stored in s.
// A key without a value is stored with an empty string. An empty key is an
// error, and so is any broken escape in either half of a pair: the caller
// treats the whole query as unreadable in that case
func Parse(data string, s *kv.Storage) error {
	for len(data) > 0 {
		var pair string
		if amp := strings.IndexByte(data, '&'); amp != -1 {
			pair, data = data[:amp], data[amp+1:]
		} else {
			pair, data = data, ""
		}

		if len(pair) == 0 {
			// tolerate a trailing or doubled ampersand
			continue
		}

		if containsIllegalSymbol(pair) {
			return ErrBadQuery
		}

		key, value := pair, ""
		if eq := strings.IndexByte(pair, '='); eq != -1 {
			key, value = pair[:eq], pair[eq+1:]
		}

		if len(key) == 0 {
			return ErrBadQuery
		}

		decodedKey, err := uridecode.Decode(uf.S2B(key), nil)
		if err != nil {
			return err
		}

		decodedValue, err := uridecode.Decode(uf.S2B(value), nil)
		if err != nil {
			return err
		}

		s.Add(uf.B2S(decodedKey), uf.B2S(decodedValue))
	}

	return nil
}

func containsIllegalSymbol(data string) bool {
	for i := 0; i < len(data); i++ {
		// exclude all non-printable characters and whitespaces
		if data[i] < 0x21 || data[i] > 0x7e {
			return true
		}
	}

	return false
}
