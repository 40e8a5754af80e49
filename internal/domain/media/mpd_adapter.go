package media

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// MPDPlayer is the subset of the MPD client the adapter needs.
type MPDPlayer interface {
	ReplaceAndPlay(uri string) error
}

var (
	_ MediaPlayer   = (*MPDAdapter)(nil)
	_ CheckedPlayer = (*MPDAdapter)(nil)
)

// MPDAdapter adapts an MPD client to the MediaPlayer interface.
// The file name is used as the MPD URI.
type MPDAdapter struct {
	client MPDPlayer
}

// NewMPDAdapter creates a new adapter.
func NewMPDAdapter(client MPDPlayer) *MPDAdapter {
	return &MPDAdapter{client: client}
}

// Play replaces the MPD queue with fileName and starts playback when the
// tag is mp4. MediaPlayer has no error return, so MPD failures are logged.
func (a *MPDAdapter) Play(audioType, fileName string) {
	if err := a.TryPlay(audioType, fileName); err != nil && !IsUnsupported(err) {
		log.Error().Err(err).Str("uri", fileName).Msg("MPD playback failed")
	}
}

// TryPlay is Play with the outcome reported.
func (a *MPDAdapter) TryPlay(audioType, fileName string) error {
	f, ok := ParseFormat(audioType)
	if !ok || f != FormatMP4 {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, audioType)
	}

	return a.client.ReplaceAndPlay(fileName)
}
