package media_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumarques81/stellar-mediaadapter/internal/domain/media"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		want   media.Format
		wantOK bool
	}{
		{"lowercase mp4", "mp4", media.FormatMP4, true},
		{"uppercase MP4", "MP4", media.FormatMP4, true},
		{"mixed case Mp4", "Mp4", media.FormatMP4, true},
		{"mixed case mP4", "mP4", media.FormatMP4, true},
		{"avi", "avi", media.FormatUnknown, false},
		{"mp3", "mp3", media.FormatUnknown, false},
		{"wav", "wav", media.FormatUnknown, false},
		{"empty", "", media.FormatUnknown, false},
		{"leading space", " mp4", media.FormatUnknown, false},
		{"trailing space", "mp4 ", media.FormatUnknown, false},
		{"extension with dot", ".mp4", media.FormatUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := media.ParseFormat(tt.tag)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "mp4", media.FormatMP4.String())
	assert.Equal(t, "unknown", media.FormatUnknown.String())
	assert.Equal(t, "unknown", media.Format(42).String())
}

func TestSupportedFormats(t *testing.T) {
	formats := media.SupportedFormats()
	assert.Equal(t, []media.Format{media.FormatMP4}, formats)

	for _, f := range formats {
		parsed, ok := media.ParseFormat(f.String())
		assert.True(t, ok, "canonical tag %q should parse", f.String())
		assert.Equal(t, f, parsed)
	}
}
