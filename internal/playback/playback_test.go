package playback

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pronounce/internal/media"
)

type fakeSpeaker struct {
	mu      sync.Mutex
	inits   int
	closed  int
	initErr error
	queued  []beep.Streamer
}

func newTestEngine(t *testing.T, rate int) (*Engine, *fakeSpeaker) {
	t.Helper()
	fs := &fakeSpeaker{}
	e := NewEngine(rate, 100*time.Millisecond, zap.NewNop().Sugar())
	e.initSpeaker = func(beep.SampleRate, int) error {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.inits++
		return fs.initErr
	}
	e.closeSpeaker = func() { fs.closed++ }
	e.play = func(s ...beep.Streamer) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.queued = append(fs.queued, s...)
	}
	e.lock = func() {}
	e.unlock = func() {}
	return e, fs
}

// drain pulls the streamer to completion like the speaker mixer would.
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func testClip(t *testing.T, rate, frames int) *media.Clip {
	t.Helper()
	clip, err := media.Decode(media.EncodeWAV(media.PCM16(make([]float32, frames)), rate, 1))
	require.NoError(t, err)
	return clip
}

func TestPlayWithoutClip(t *testing.T) {
	e, fs := newTestEngine(t, 8000)
	el := e.NewElement()

	assert.ErrorIs(t, el.Play(nil), ErrNoSource)
	assert.ErrorIs(t, el.Seek(1), ErrNoSource)
	assert.Zero(t, el.Position())
	assert.Zero(t, el.Duration())
	assert.Zero(t, fs.inits)
}

func TestPlayRunsToEnd(t *testing.T) {
	e, fs := newTestEngine(t, 8000)
	el := e.NewElement()
	el.Load(testClip(t, 8000, 4000))

	assert.InDelta(t, 0.5, el.Duration(), 1e-9)

	ended := make(chan struct{})
	require.NoError(t, el.Play(func() { close(ended) }))
	assert.True(t, el.Playing())
	require.Len(t, fs.queued, 1)

	assert.Equal(t, 4000, drain(fs.queued[0]))

	select {
	case <-ended:
	case <-time.After(time.Second):
		t.Fatal("onEnded not called")
	}
	assert.False(t, el.Playing())
	assert.InDelta(t, 0.5, el.Position(), 1e-9)

	// playing again after the end restarts from zero
	require.NoError(t, el.Play(nil))
	assert.Zero(t, el.Position())
	assert.Len(t, fs.queued, 2)
	assert.Equal(t, 1, fs.inits)
}

func TestPauseAndResumeReuseStream(t *testing.T) {
	e, fs := newTestEngine(t, 8000)
	el := e.NewElement()
	el.Load(testClip(t, 8000, 8000))

	require.NoError(t, el.Play(nil))
	el.Pause()
	assert.False(t, el.Playing())
	require.NoError(t, el.Play(nil))

	assert.True(t, el.Playing())
	assert.Len(t, fs.queued, 1)
}

func TestSeekClamps(t *testing.T) {
	e, _ := newTestEngine(t, 8000)
	el := e.NewElement()
	el.Load(testClip(t, 8000, 8000))

	require.NoError(t, el.Seek(0.25))
	assert.InDelta(t, 0.25, el.Position(), 1e-3)

	require.NoError(t, el.Seek(10))
	assert.InDelta(t, 1.0, el.Position(), 1e-9)

	require.NoError(t, el.Seek(-3))
	assert.Zero(t, el.Position())
}

func TestUnloadSuppressesEnded(t *testing.T) {
	e, fs := newTestEngine(t, 8000)
	el := e.NewElement()
	el.Load(testClip(t, 8000, 800))

	called := make(chan struct{}, 1)
	require.NoError(t, el.Play(func() { called <- struct{}{} }))
	el.Unload()

	drain(fs.queued[0])

	select {
	case <-called:
		t.Fatal("onEnded called after unload")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Zero(t, el.Position())
}

func TestResamplesToEngineRate(t *testing.T) {
	e, fs := newTestEngine(t, 16000)
	el := e.NewElement()
	el.Load(testClip(t, 8000, 800))

	require.NoError(t, el.Play(nil))
	assert.InDelta(t, 1600, drain(fs.queued[0]), 16)
}

func TestSpeakerInitFailure(t *testing.T) {
	e, fs := newTestEngine(t, 8000)
	fs.initErr = errors.New("no output device")
	el := e.NewElement()
	el.Load(testClip(t, 8000, 800))

	err := el.Play(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.initErr)
	assert.False(t, el.Playing())

	e.Close()
	assert.Zero(t, fs.closed)
}

func TestEngineCloseOnce(t *testing.T) {
	e, fs := newTestEngine(t, 8000)
	el := e.NewElement()
	el.Load(testClip(t, 8000, 800))
	require.NoError(t, el.Play(nil))

	e.Close()
	e.Close()
	assert.Equal(t, 1, fs.closed)
}
