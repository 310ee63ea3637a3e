package uridecode

import "github.com/flrdv/uf"

const upperhex = "0123456789ABCDEF"

// unreserved per RFC 3986: these bytes never need escaping in a path segment
// or a query value. Everything else, including the segment-splitting slash and
// the percent sign itself, is escaped, so that Decode is an exact inverse
var unreserved = [256]bool{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		unreserved[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		unreserved[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		unreserved[c] = true
	}
	for _, c := range []byte{'-', '.', '_', '~'} {
		unreserved[c] = true
	}
}

// Escape percent-encodes every byte outside the unreserved set. The input is
// treated as raw bytes, so multibyte UTF-8 comes out as one escape per byte
func Escape(s string) string {
	escapes := 0
	for i := 0; i < len(s); i++ {
		if !unreserved[s[i]] {
			escapes++
		}
	}

	if escapes == 0 {
		return s
	}

	out := make([]byte, 0, len(s)+2*escapes)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved[c] {
			out = append(out, c)
			continue
		}

		out = append(out, '%', upperhex[c>>4], upperhex[c&0xf])
	}

	return uf.B2S(out)
}
