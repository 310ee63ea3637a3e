// Package app is the demo shell: a tiny immutable UI state around the codec
// plus the handlers rendering it. Nothing here is stored between requests,
// the whole state is rebuilt from the URL of every event.
package app

import (
	"strings"

	"github.com/indigo-web/indigo/kv"
	"github.com/indigo-web/urlround/codec"
	"github.com/indigo-web/urlround/internal/uridecode"
)

// Carried parameter names on generated navigation links. They let the
// landing page rebuild the ground truth without any server-side session.
// The codec ignores them, so they don't perturb the demonstrated URL
const (
	carriedMode  = "m"
	carriedPath  = "wp"
	carriedQuery = "wq"
)

// State is the complete demo state: the selected mode and the two
// user-typed strings. Everything else is derived and recomputed on demand
type State struct {
	Mode  codec.Mode
	Path  string
	Query string
}

func New(mode codec.Mode, path, query string) State {
	return State{Mode: mode, Path: path, Query: query}
}

// FromParams rebuilds the state from builder form parameters. Missing or
// unknown mode falls back to Raw, the demo's starting strategy
func FromParams(params *kv.Storage) State {
	mode, _ := codec.ParseMode(params.Value("mode"))

	return New(mode, params.Value("path"), params.Value("query"))
}

// FromCarried rebuilds the state a navigation link was generated from
func FromCarried(params *kv.Storage) State {
	mode, _ := codec.ParseMode(params.Value(carriedMode))

	return New(mode, params.Value(carriedPath), params.Value(carriedQuery))
}

// Href is the URL the encoder built for the current inputs
func (s State) Href() string {
	return codec.Encode(s.Mode, s.Path, s.Query)
}

// Expected is the ground truth the decoder's output is compared against
func (s State) Expected() codec.RouteMatch {
	return codec.RouteMatch{Segment: s.Path, Query: s.Query}
}

// NavTarget is Href with the carried parameters appended, the actual anchor
// target on the builder page
func (s State) NavTarget() string {
	href := s.Href()

	sep := "?"
	if strings.ContainsRune(href, '?') {
		sep = "&"
	}

	return href + sep +
		carriedMode + "=" + uridecode.Escape(s.Mode.String()) +
		"&" + carriedPath + "=" + uridecode.Escape(s.Path) +
		"&" + carriedQuery + "=" + uridecode.Escape(s.Query)
}

// BackHref leads from a landing page back to the builder with the same
// inputs pre-filled
func (s State) BackHref() string {
	return "/?mode=" + uridecode.Escape(s.Mode.String()) +
		"&path=" + uridecode.Escape(s.Path) +
		"&query=" + uridecode.Escape(s.Query)
}

// PathSamples and QuerySamples feed the suggestion lists under the two
// inputs. Six entries each: plain text, accented text, symbols, characters
// that are structurally significant in a URL, and two non-Latin scripts
var (
	PathSamples = [6]string{
		"fruit",
		"crème brûlée",
		"~!@#$%^&*()",
		"a/b?c=d&e=f",
		"долина роз",
		"ごはん",
	}
	QuerySamples = [6]string{
		"apple",
		"è_é",
		"100%",
		"query=q/path=p",
		"беседка",
		"おでん",
	}
)
