package codec

// Mode selects how path segments travel through the URL builder and matcher.
type Mode uint8

const (
	// Raw hands path segments to the builder untouched. Segments holding
	// slashes, percent signs or bytes outside printable ASCII will not
	// survive the trip, which is exactly what the demo puts on display
	Raw Mode = iota
	// PercentEncoded escapes each path segment before it enters the builder
	// and decodes the capture on the way back, compensating for the builder
	// never escaping path segments on its own
	PercentEncoded
)

func (m Mode) String() string {
	switch m {
	case PercentEncoded:
		return "percent-encoded"
	default:
		return "raw"
	}
}

// ParseMode is the inverse of Mode.String
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "raw":
		return Raw, true
	case "percent-encoded":
		return PercentEncoded, true
	default:
		return 0, false
	}
}
