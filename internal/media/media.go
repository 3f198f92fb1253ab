// Package media decodes audio assets into in-memory clips.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Kind is a container format recognised by its leading bytes.
type Kind int

const (
	KindUnknown Kind = iota
	KindWAV
	KindMP3
	KindFLAC
	KindVorbis
)

func (k Kind) String() string {
	switch k {
	case KindWAV:
		return "wav"
	case KindMP3:
		return "mp3"
	case KindFLAC:
		return "flac"
	case KindVorbis:
		return "vorbis"
	default:
		return "unknown"
	}
}

// ErrUnsupported is wrapped by DecodeError when the format is not recognised.
var ErrUnsupported = errors.New("unsupported audio format")

// DecodeError reports malformed or unsupported audio data.
type DecodeError struct {
	Kind Kind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Clip is a fully decoded piece of audio held in memory.
type Clip struct {
	Format beep.Format
	Buffer *beep.Buffer
}

// Len returns the number of frames in the clip.
func (c *Clip) Len() int {
	if c == nil || c.Buffer == nil {
		return 0
	}
	return c.Buffer.Len()
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	if c.Len() == 0 {
		return 0
	}
	return c.Format.SampleRate.D(c.Len())
}

// Seconds returns the clip length in seconds.
func (c *Clip) Seconds() float64 {
	return c.Duration().Seconds()
}

// Channel0 returns the samples of the first channel.
func (c *Clip) Channel0() []float64 {
	n := c.Len()
	if n == 0 {
		return nil
	}

	out := make([]float64, 0, n)
	s := c.Buffer.Streamer(0, n)
	buf := make([][2]float64, 512)
	for {
		got, ok := s.Stream(buf)
		for i := 0; i < got; i++ {
			out = append(out, buf[i][0])
		}
		if !ok || got == 0 {
			break
		}
	}
	return out
}

// Sniff detects the container format from the first bytes of data.
func Sniff(data []byte) Kind {
	switch {
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return KindWAV
	case len(data) >= 4 && string(data[0:4]) == "fLaC":
		return KindFLAC
	case len(data) >= 4 && string(data[0:4]) == "OggS":
		return KindVorbis
	case len(data) >= 3 && string(data[0:3]) == "ID3":
		return KindMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return KindMP3
	default:
		return KindUnknown
	}
}

// Decode decodes a complete audio asset at its native sample rate.
func Decode(data []byte) (clip *Clip, err error) {
	kind := Sniff(data)

	// mp3 and vorbis decoders panic on some truncated inputs
	defer func() {
		if r := recover(); r != nil {
			clip = nil
			err = &DecodeError{Kind: kind, Err: fmt.Errorf("%v", r)}
		}
	}()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	rc := io.NopCloser(bytes.NewReader(data))

	switch kind {
	case KindWAV:
		stream, format, err = wav.Decode(rc)
	case KindMP3:
		stream, format, err = mp3.Decode(rc)
	case KindFLAC:
		stream, format, err = flac.Decode(rc)
	case KindVorbis:
		stream, format, err = vorbis.Decode(rc)
	default:
		return nil, &DecodeError{Kind: kind, Err: ErrUnsupported}
	}
	if err != nil {
		return nil, &DecodeError{Kind: kind, Err: err}
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	if err := stream.Err(); err != nil {
		return nil, &DecodeError{Kind: kind, Err: err}
	}

	return &Clip{Format: format, Buffer: buf}, nil
}
