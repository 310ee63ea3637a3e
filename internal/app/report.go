package app

import "github.com/indigo-web/urlround/codec"

// Match mirrors codec.RouteMatch for serialization.
type Match struct {
	Segment string `json:"segment"`
	Query   string `json:"query"`
}

// Report is one complete encode-then-decode comparison. Actual is nil when
// the decoder produced no match; that absence is the demo's whole point, so
// it travels all the way to the user instead of being treated as an error.
type Report struct {
	Mode     string `json:"mode"`
	Href     string `json:"href"`
	Expected Match  `json:"expected"`
	Actual   *Match `json:"actual"`
}

// RoundTrips reports whether the decoder recovered the ground truth exactly
func (r Report) RoundTrips() bool {
	return r.Actual != nil && *r.Actual == r.Expected
}

// Report runs the decoder over the encoder's output under the state's mode
func (s State) Report() Report {
	report := Report{
		Mode:     s.Mode.String(),
		Href:     s.Href(),
		Expected: Match{Segment: s.Path, Query: s.Query},
	}

	if match, ok := codec.Decode(s.Mode, report.Href); ok {
		report.Actual = &Match{Segment: match.Segment, Query: match.Query}
	}

	return report
}
