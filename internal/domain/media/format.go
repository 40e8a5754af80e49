// Package media provides the media player capability and the adapters that
// translate it onto players with a different call shape.
package media

import (
	"errors"
	"strings"
)

// ErrUnsupportedFormat is returned by checked playback paths when the
// format tag does not map to a known Format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// IsUnsupported reports whether err is, or wraps, ErrUnsupportedFormat.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// Format identifies an audio format the adapters know how to route.
type Format int

const (
	// FormatUnknown is the zero value for unrecognised tags.
	FormatUnknown Format = iota

	// FormatMP4 is the only format the advanced player handles.
	FormatMP4
)

// formatTags maps each known Format to its canonical tag.
var formatTags = map[Format]string{
	FormatMP4: "mp4",
}

// String returns the canonical tag for the format.
func (f Format) String() string {
	if tag, ok := formatTags[f]; ok {
		return tag
	}
	return "unknown"
}

// ParseFormat converts a free-form format tag into a Format.
// Matching is case-insensitive equality; no trimming is applied.
func ParseFormat(tag string) (Format, bool) {
	for _, f := range SupportedFormats() {
		if strings.EqualFold(tag, formatTags[f]) {
			return f, true
		}
	}
	return FormatUnknown, false
}

// SupportedFormats returns the recognised formats in stable order.
func SupportedFormats() []Format {
	return []Format{FormatMP4}
}
