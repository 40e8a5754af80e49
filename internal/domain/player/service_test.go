package player

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumarques81/stellar-mediaadapter/internal/domain/media"
)

// MockMediaPlayer records calls made through the MediaPlayer interface.
type MockMediaPlayer struct {
	Calls [][2]string
}

func (m *MockMediaPlayer) Play(audioType, fileName string) {
	m.Calls = append(m.Calls, [2]string{audioType, fileName})
}

func TestServicePlaySupportedFormat(t *testing.T) {
	mock := &MockMediaPlayer{}
	s := NewService(mock)

	require.NoError(t, s.Play("MP4", "clip.mp4"))

	assert.Equal(t, [][2]string{{"MP4", "clip.mp4"}}, mock.Calls)
}

func TestServicePlayUnsupportedFormat(t *testing.T) {
	mock := &MockMediaPlayer{}
	s := NewService(mock)

	for _, tag := range []string{"wav", "", "avi"} {
		err := s.Play(tag, "song")
		require.Error(t, err)
		assert.True(t, errors.Is(err, media.ErrUnsupportedFormat), "tag %q", tag)
	}

	assert.Empty(t, mock.Calls)
}

func TestServiceWithMediaAdapter(t *testing.T) {
	var buf bytes.Buffer
	s := NewService(media.NewMediaAdapterTo(&buf))

	require.NoError(t, s.Play("mp4", "song.mp4"))
	assert.Error(t, s.Play("wav", "song.wav"))
	require.NoError(t, s.Play("MP4", "clip.mp4"))

	assert.Equal(t, "Playing mp4 file: song.mp4\nPlaying mp4 file: clip.mp4\n", buf.String())
}

func TestServiceFormats(t *testing.T) {
	s := NewService(&MockMediaPlayer{})

	assert.Equal(t, []string{"mp4"}, s.Formats())
}

// failingMPD is an MPD client whose playback always fails.
type failingMPD struct{}

func (failingMPD) ReplaceAndPlay(uri string) error {
	return errors.New("connection refused")
}

func TestServicePlayReturnsBackendError(t *testing.T) {
	s := NewService(media.NewMPDAdapter(failingMPD{}))

	err := s.Play("mp4", "clip.mp4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.False(t, errors.Is(err, media.ErrUnsupportedFormat))
}
