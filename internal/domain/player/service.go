// Package player provides the player service used by the CLI and transports.
package player

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/edumarques81/stellar-mediaadapter/internal/domain/media"
)

// Service handles player operations on top of a media.MediaPlayer.
type Service struct {
	player media.MediaPlayer
}

// NewService creates a new player service.
func NewService(player media.MediaPlayer) *Service {
	return &Service{
		player: player,
	}
}

// Play plays fileName when audioType is supported. Unlike the MediaPlayer
// contract, unsupported tags are reported as ErrUnsupportedFormat, and
// backend failures are returned when the player is a media.CheckedPlayer.
func (s *Service) Play(audioType, fileName string) error {
	f, ok := media.ParseFormat(audioType)
	if !ok {
		log.Debug().Str("audioType", audioType).Str("file", fileName).Msg("Unsupported format")
		return fmt.Errorf("%w: %q", media.ErrUnsupportedFormat, audioType)
	}

	log.Info().Str("format", f.String()).Str("file", fileName).Msg("Play")

	checked, ok := s.player.(media.CheckedPlayer)
	if !ok {
		s.player.Play(audioType, fileName)
		return nil
	}
	if err := checked.TryPlay(audioType, fileName); err != nil {
		return fmt.Errorf("failed to play %s: %w", fileName, err)
	}
	return nil
}

// Formats returns the supported format tags.
func (s *Service) Formats() []string {
	formats := media.SupportedFormats()
	tags := make([]string, len(formats))
	for i, f := range formats {
		tags[i] = f.String()
	}
	return tags
}
