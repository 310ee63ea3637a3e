package app

import (
	"github.com/indigo-web/indigo/http"
	"github.com/indigo-web/indigo/http/mime"
	"github.com/indigo-web/indigo/router/inbuilt"
	"github.com/indigo-web/indigo/router/inbuilt/middleware"
	"github.com/indigo-web/urlround/codec"
	json "github.com/json-iterator/go"
)

// Router assembles the demo routes
func Router() *inbuilt.Router {
	r := inbuilt.New().
		Use(middleware.LogRequests())

	r.Get("/", Builder)
	r.Get("/path/{segment}", Landing)
	r.Catch("/path", Fallout)
	r.Get("/api/parse", ParseAPI)

	return r
}

// Builder renders the main page: inputs, mode selection, the generated link
// and the expected result. Submitting the form is just another GET of this
// page, so the whole state lives in the URL
func Builder(request *http.Request) *http.Response {
	page, err := renderBuilder(FromParams(request.Params))
	if err != nil {
		return http.Error(request, err)
	}

	return http.String(request, page)
}

// Landing renders the comparison after a navigation that the server route
// /path/{segment} matched. The codec's view is computed from the carried
// ground truth; the router's view comes straight from Vars and Params
func Landing(request *http.Request) *http.Response {
	router := RouterView{
		Matched: true,
		Segment: request.Vars.Value("segment"),
		Query:   request.Params.Value(codec.QueryKey),
	}

	page, err := renderLanding(FromCarried(request.Params), router)
	if err != nil {
		return http.Error(request, err)
	}

	return http.String(request, page)
}

// Fallout lands navigations whose segment split into several path
// components, so the dynamic route never stood a chance. Reaching this
// handler is itself the demonstration
func Fallout(request *http.Request) *http.Response {
	page, err := renderLanding(FromCarried(request.Params), RouterView{})
	if err != nil {
		return http.Error(request, err)
	}

	return http.String(request, page)
}

// ParseAPI exposes the comparison as JSON, mostly for curl sessions
func ParseAPI(request *http.Request) *http.Response {
	b, err := json.Marshal(FromParams(request.Params).Report())
	if err != nil {
		return http.Error(request, err)
	}

	return request.Respond().
		ContentType(mime.JSON).
		Bytes(b)
}
