// Package codec builds and matches URLs of the single demo route
// /path/{segment}?query={value} under two interchangeable encoding
// strategies. Encode and Decode form a round-trip pair under
// PercentEncoded; under Raw the pair deliberately falls apart for
// structurally significant input, which is the behavior the demo exists
// to show.
package codec

import (
	"strings"

	"github.com/indigo-web/indigo/kv"
	"github.com/indigo-web/urlround/internal/pattern"
	"github.com/indigo-web/urlround/internal/qparams"
	"github.com/indigo-web/urlround/internal/uridecode"
)

// QueryKey is the only query parameter the route recognizes. Anything else
// in the query string is parsed but ignored
const QueryKey = "query"

var route = func() pattern.Template {
	tmpl, err := pattern.Parse("/path/{segment}")
	if err != nil {
		panic(err)
	}

	return tmpl
}()

// RouteMatch is a successfully parsed navigation target.
type RouteMatch struct {
	// Segment is the captured path segment.
	Segment string
	// Query is the value of the "query" parameter, empty when absent.
	Query string
}

// Encode builds the route target for the given inputs. It is total: every
// input produces a string. Under Raw the segment is inserted verbatim; the
// builder escapes nothing in the path on its own. The query value always
// goes through the standard escaping layer, the demonstrated asymmetry is
// path-only. An empty query produces no query component at all
func Encode(mode Mode, path, query string) string {
	segment := path
	if mode == PercentEncoded {
		segment = uridecode.Escape(path)
	}

	target := "/path/" + segment
	if len(query) > 0 {
		target += "?" + QueryKey + "=" + uridecode.Escape(query)
	}

	return target
}

// Decode matches target against /path/{segment}?query={value}. The boolean
// is false when the path doesn't fit the pattern, when it carries bytes a
// URL path cannot legally hold, when the query string is unreadable, or —
// under PercentEncoded — when the captured segment holds a broken escape.
// A full URL is accepted as well as a path reference; scheme and host are
// stripped before matching
func Decode(mode Mode, target string) (RouteMatch, bool) {
	target = stripOrigin(target)

	if frag := strings.IndexByte(target, '#'); frag != -1 {
		target = target[:frag]
	}

	path, rawQuery := target, ""
	if q := strings.IndexByte(target, '?'); q != -1 {
		path, rawQuery = target[:q], target[q+1:]
	}

	if !asciiPrintable(path) {
		return RouteMatch{}, false
	}

	segment, ok := route.Match(path)
	if !ok {
		return RouteMatch{}, false
	}

	if mode == PercentEncoded {
		decoded, err := uridecode.DecodeString(segment)
		if err != nil {
			return RouteMatch{}, false
		}

		segment = decoded
	}

	params := kv.New()
	if err := qparams.Parse(rawQuery, params); err != nil {
		return RouteMatch{}, false
	}

	return RouteMatch{Segment: segment, Query: params.Value(QueryKey)}, true
}

func stripOrigin(target string) string {
	scheme := strings.Index(target, "://")
	if scheme == -1 {
		return target
	}

	rest := target[scheme+len("://"):]
	slash := strings.IndexByte(rest, '/')
	if slash == -1 {
		return ""
	}

	return rest[slash:]
}

func asciiPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}

	return true
}
