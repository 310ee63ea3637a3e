package pattern

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPath        = errors.New("path template cannot be empty")
	ErrInvalidTemplate  = errors.New("invalid template")
	ErrMultipleCaptures = errors.New("template holds more than one capture")
)

// Template is a parsed path template: literal segments with at most one
// {capture} marker among them. Matching is purely structural, no decoding
// happens here
type Template struct {
	head    []string
	tail    []string
	capture bool
}

// Parse compiles a template of the form /lit/{name}/lit. Braces inside a
// literal segment are rejected
func Parse(tmpl string) (Template, error) {
	if len(tmpl) == 0 {
		return Template{}, ErrEmptyPath
	}

	if tmpl[0] != '/' {
		return Template{}, ErrInvalidTemplate
	}

	var t Template

	for _, part := range strings.Split(tmpl[1:], "/") {
		if len(part) >= 2 && part[0] == '{' && part[len(part)-1] == '}' {
			if t.capture {
				return Template{}, ErrMultipleCaptures
			}

			t.capture = true
			continue
		}

		if strings.ContainsAny(part, "{}") {
			return Template{}, ErrInvalidTemplate
		}

		if t.capture {
			t.tail = append(t.tail, part)
		} else {
			t.head = append(t.head, part)
		}
	}

	return t, nil
}

// Match checks path against the template and returns the raw text captured
// by the marker. The boolean is false on any structural mismatch: wrong
// literal, wrong number of segments, missing leading slash
func (t Template) Match(path string) (string, bool) {
	if len(path) == 0 || path[0] != '/' {
		return "", false
	}

	parts := strings.Split(path[1:], "/")

	want := len(t.head) + len(t.tail)
	if t.capture {
		want++
	}

	if len(parts) != want {
		return "", false
	}

	for i, lit := range t.head {
		if parts[i] != lit {
			return "", false
		}
	}

	for i, lit := range t.tail {
		if parts[len(parts)-len(t.tail)+i] != lit {
			return "", false
		}
	}

	if !t.capture {
		return "", true
	}

	return parts[len(t.head)], true
}
