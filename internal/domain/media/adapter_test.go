package media_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumarques81/stellar-mediaadapter/internal/domain/media"
)

// variants returns both adapter flavours writing to the same buffer.
func variants(w io.Writer) map[string]media.MediaPlayer {
	return map[string]media.MediaPlayer{
		"object adapter": media.NewMediaAdapterTo(w),
		"class adapter":  media.NewClassMediaAdapterTo(w),
	}
}

func TestAdvancedMediaPlayerPlayMp4(t *testing.T) {
	var buf bytes.Buffer
	p := media.NewAdvancedMediaPlayerTo(&buf)

	p.PlayMp4("song.mp4")

	assert.Equal(t, "Playing mp4 file: song.mp4\n", buf.String())
}

func TestAdvancedMediaPlayerPassesNameThrough(t *testing.T) {
	names := []string{"", "no extension", "../../etc/passwd", "Ünïcödé 曲.mp4", "song.wav"}

	for _, name := range names {
		var buf bytes.Buffer
		media.NewAdvancedMediaPlayerTo(&buf).PlayMp4(name)
		assert.Equal(t, "Playing mp4 file: "+name+"\n", buf.String())
	}
}

func TestAdapterPlaysMatchingTags(t *testing.T) {
	for _, tag := range []string{"mp4", "MP4", "Mp4"} {
		for name := range variants(io.Discard) {
			t.Run(name+"/"+tag, func(t *testing.T) {
				var buf bytes.Buffer
				variants(&buf)[name].Play(tag, "clip.mp4")

				assert.Equal(t, "Playing mp4 file: clip.mp4\n", buf.String())
			})
		}
	}
}

func TestAdapterIgnoresUnsupportedTags(t *testing.T) {
	for _, tag := range []string{"avi", "", "mp3", "wav", "mp4a", " mp4"} {
		for name := range variants(io.Discard) {
			t.Run(name+"/"+tag, func(t *testing.T) {
				var buf bytes.Buffer
				variants(&buf)[name].Play(tag, "song."+tag)

				assert.Empty(t, buf.String())
			})
		}
	}
}

func TestAdapterScenario(t *testing.T) {
	for name := range variants(io.Discard) {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := variants(&buf)[name]

			p.Play("mp4", "song.mp4")
			p.Play("wav", "song.wav")
			p.Play("MP4", "clip.mp4")

			assert.Equal(t, "Playing mp4 file: song.mp4\nPlaying mp4 file: clip.mp4\n", buf.String())
		})
	}
}

func TestAdapterVariantsBehaveIdentically(t *testing.T) {
	calls := [][2]string{
		{"mp4", "a.mp4"},
		{"avi", "b.avi"},
		{"MP4", "c"},
		{"", "d"},
		{"mP4", ""},
	}

	var objectOut, classOut bytes.Buffer
	object := media.NewMediaAdapterTo(&objectOut)
	class := media.NewClassMediaAdapterTo(&classOut)

	for _, c := range calls {
		object.Play(c[0], c[1])
		class.Play(c[0], c[1])
	}

	assert.Equal(t, objectOut.String(), classOut.String())
	assert.Equal(t, "Playing mp4 file: a.mp4\nPlaying mp4 file: c\nPlaying mp4 file: \n", objectOut.String())
}

func TestClassAdapterPromotesPlayMp4(t *testing.T) {
	var buf bytes.Buffer
	a := media.NewClassMediaAdapterTo(&buf)

	a.PlayMp4("direct.mp4")

	assert.Equal(t, "Playing mp4 file: direct.mp4\n", buf.String())
}
