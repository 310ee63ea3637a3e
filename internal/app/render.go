package app

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates
var templates embed.FS

var pages = template.Must(template.ParseFS(templates, "templates/*.html"))

type builderView struct {
	Path, Query     string
	RawChecked      bool
	EncodedChecked  bool
	Href, NavTarget string
	Expected        Match
	PathSamples     []string
	QuerySamples    []string
}

// RouterView is what the server's own router extracted from the navigation,
// shown next to the codec's result. A raw-mode segment with a slash in it
// lands here as Matched=false: the route fell apart before any handler ran
type RouterView struct {
	Matched bool
	Segment string
	Query   string
}

type landingView struct {
	Report     Report
	RoundTrips bool
	Router     RouterView
	Back       string
}

func renderBuilder(s State) (string, error) {
	view := builderView{
		Path:           s.Path,
		Query:          s.Query,
		RawChecked:     s.Mode.String() == "raw",
		EncodedChecked: s.Mode.String() == "percent-encoded",
		Href:           s.Href(),
		NavTarget:      s.NavTarget(),
		Expected:       Match{Segment: s.Path, Query: s.Query},
		PathSamples:    PathSamples[:],
		QuerySamples:   QuerySamples[:],
	}

	return render("builder.html", view)
}

func renderLanding(s State, router RouterView) (string, error) {
	report := s.Report()
	view := landingView{
		Report:     report,
		RoundTrips: report.RoundTrips(),
		Router:     router,
		Back:       s.BackHref(),
	}

	return render("landing.html", view)
}

func render(name string, view any) (string, error) {
	buff := strings.Builder{}
	err := pages.ExecuteTemplate(&buff, name, view)

	return buff.String(), err
}
