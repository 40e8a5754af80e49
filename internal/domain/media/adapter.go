package media

import "io"

var (
	_ MediaPlayer = (*MediaAdapter)(nil)
	_ MediaPlayer = (*ClassMediaAdapter)(nil)
)

// MediaAdapter adapts an AdvancedMediaPlayer to the MediaPlayer interface
// by holding a reference to it.
type MediaAdapter struct {
	advanced *AdvancedMediaPlayer
}

// NewMediaAdapter creates an adapter around a player writing to standard output.
func NewMediaAdapter() *MediaAdapter {
	return &MediaAdapter{advanced: NewAdvancedMediaPlayer()}
}

// NewMediaAdapterTo creates an adapter around a player writing to w.
func NewMediaAdapterTo(w io.Writer) *MediaAdapter {
	return &MediaAdapter{advanced: NewAdvancedMediaPlayerTo(w)}
}

// Play forwards mp4 requests to the advanced player.
// Unsupported tags are ignored without output or error.
func (a *MediaAdapter) Play(audioType, fileName string) {
	if f, ok := ParseFormat(audioType); ok && f == FormatMP4 {
		a.advanced.PlayMp4(fileName)
	}
}

// ClassMediaAdapter adapts AdvancedMediaPlayer by embedding it, so PlayMp4
// is promoted onto the adapter itself.
type ClassMediaAdapter struct {
	AdvancedMediaPlayer
}

// NewClassMediaAdapter creates an embedding adapter writing to standard output.
func NewClassMediaAdapter() *ClassMediaAdapter {
	return &ClassMediaAdapter{AdvancedMediaPlayer: *NewAdvancedMediaPlayer()}
}

// NewClassMediaAdapterTo creates an embedding adapter writing to w.
func NewClassMediaAdapterTo(w io.Writer) *ClassMediaAdapter {
	return &ClassMediaAdapter{AdvancedMediaPlayer: *NewAdvancedMediaPlayerTo(w)}
}

// Play forwards mp4 requests to the embedded player.
func (a *ClassMediaAdapter) Play(audioType, fileName string) {
	if f, ok := ParseFormat(audioType); ok && f == FormatMP4 {
		a.PlayMp4(fileName)
	}
}
