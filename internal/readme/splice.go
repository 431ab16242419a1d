// Package readme splices generated content into a delimited region of a document.
package readme

import (
	"errors"
	"strings"
)

const (
	DefaultStartMarker = "<!-- GITHUB_LANGUAGE_STATS_START -->"
	DefaultEndMarker   = "<!-- GITHUB_LANGUAGE_STATS_END -->"
)

// ErrMarkerOrder is returned when the end marker appears before the start marker.
var ErrMarkerOrder = errors.New("end marker appears before start marker")

// Markers delimit the generated region of a document.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers returns the markers used for language statistics.
func DefaultMarkers() Markers {
	return Markers{Start: DefaultStartMarker, End: DefaultEndMarker}
}

// Section renders content wrapped in the markers.
func (m Markers) Section(content string) string {
	return m.Start + "\n" + content + "\n" + m.End
}

// Splice returns doc with its marked region replaced by a freshly marked
// section holding content. The region ends at the first end marker that follows
// a start marker and begins at the last start marker before it, so a stray
// marker left in the document never swallows the text around it.
// If no such pair exists, the section is appended after a blank line.
// Text outside the region is never modified.
func Splice(doc, content string, m Markers) (string, error) {
	first := strings.Index(doc, m.Start)
	if first < 0 {
		return doc + "\n\n" + m.Section(content), nil
	}
	end := strings.Index(doc[first+len(m.Start):], m.End)
	if end < 0 {
		if strings.Contains(doc, m.End) {
			return "", ErrMarkerOrder
		}
		return doc + "\n\n" + m.Section(content), nil
	}
	end += first + len(m.Start)
	start := strings.LastIndex(doc[:end], m.Start)
	return doc[:start] + m.Section(content) + doc[end+len(m.End):], nil
}
