package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Kind
	}{
		{"wav", EncodeWAV(nil, 8000, 1), KindWAV},
		{"id3", []byte("ID3\x04\x00"), KindMP3},
		{"mpeg sync", []byte{0xFF, 0xFB, 0x90, 0x00}, KindMP3},
		{"flac", []byte("fLaC\x00\x00"), KindFLAC},
		{"ogg", []byte("OggS\x00\x02"), KindVorbis},
		{"riff without wave", []byte("RIFF\x00\x00\x00\x00AVI "), KindUnknown},
		{"empty", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sniff(tt.data))
		})
	}
}

func TestEncodeWAVHeader(t *testing.T) {
	pcm := PCM16([]float32{0, 0.5, -0.5, 1})
	data := EncodeWAV(pcm, 16000, 1)

	require.Len(t, data, 44+8)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, []byte{8, 0, 0, 0}, data[40:44])
}

func TestPCM16Clamps(t *testing.T) {
	pcm := PCM16([]float32{2, -2})
	assert.Equal(t, []byte{0xFF, 0x7F, 0x01, 0x80}, pcm)
}

func TestDecodeWAVRoundTrip(t *testing.T) {
	samples := make([]float32, 8000)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 0.5
		} else {
			samples[i] = -0.25
		}
	}

	clip, err := Decode(EncodeWAV(PCM16(samples), 8000, 1))
	require.NoError(t, err)

	assert.Equal(t, 8000, clip.Len())
	assert.Equal(t, time.Second, clip.Duration())
	assert.InDelta(t, 1.0, clip.Seconds(), 1e-9)

	ch := clip.Channel0()
	require.Len(t, ch, 8000)
	assert.InDelta(t, 0.5, ch[0], 1e-3)
	assert.InDelta(t, -0.25, ch[1], 1e-3)
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode([]byte("definitely not audio"))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindUnknown, de.Kind)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDecodeTruncatedWAV(t *testing.T) {
	_, err := Decode(EncodeWAV(nil, 8000, 1)[:20])

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindWAV, de.Kind)
}

func TestEmptyClip(t *testing.T) {
	var c *Clip
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, (&Clip{}).Channel0())
}
