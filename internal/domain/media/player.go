package media

import (
	"fmt"
	"io"
	"os"
)

// MediaPlayer is the capability clients call to play audio by format tag.
type MediaPlayer interface {
	Play(audioType, fileName string)
}

// CheckedPlayer is implemented by players whose backend can fail.
// TryPlay returns ErrUnsupportedFormat for unknown tags and the backend
// error when playback could not start.
type CheckedPlayer interface {
	TryPlay(audioType, fileName string) error
}

// AdvancedMediaPlayer plays mp4 files only. It has no notion of format tags.
type AdvancedMediaPlayer struct {
	out io.Writer
}

// NewAdvancedMediaPlayer creates a player that writes to standard output.
func NewAdvancedMediaPlayer() *AdvancedMediaPlayer {
	return NewAdvancedMediaPlayerTo(os.Stdout)
}

// NewAdvancedMediaPlayerTo creates a player that writes to w.
func NewAdvancedMediaPlayerTo(w io.Writer) *AdvancedMediaPlayer {
	return &AdvancedMediaPlayer{out: w}
}

// PlayMp4 plays fileName. The name is passed through unchanged.
func (p *AdvancedMediaPlayer) PlayMp4(fileName string) {
	out := p.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Playing mp4 file: %s\n", fileName)
}
