// Package playback plays decoded clips through the system speaker.
package playback

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"pronounce/internal/media"
)

// ErrNoSource is returned by Play when no clip is loaded.
var ErrNoSource = errors.New("no audio loaded")

// resampleQuality trades CPU for fidelity; 4 is beep's recommended default.
const resampleQuality = 4

// Engine owns the shared speaker. It is initialised lazily on first Play.
type Engine struct {
	rate   beep.SampleRate
	buffer time.Duration
	log    *zap.SugaredLogger

	once    sync.Once
	err     error
	started atomic.Bool

	// replaced in tests
	initSpeaker  func(beep.SampleRate, int) error
	closeSpeaker func()
	play         func(...beep.Streamer)
	lock         func()
	unlock       func()
}

// NewEngine creates an engine mixing at sampleRate with the given buffer.
func NewEngine(sampleRate int, buffer time.Duration, log *zap.SugaredLogger) *Engine {
	return &Engine{
		rate:         beep.SampleRate(sampleRate),
		buffer:       buffer,
		log:          log,
		initSpeaker:  speaker.Init,
		closeSpeaker: speaker.Close,
		play:         speaker.Play,
		lock:         speaker.Lock,
		unlock:       speaker.Unlock,
	}
}

func (e *Engine) start() error {
	e.once.Do(func() {
		e.err = e.initSpeaker(e.rate, e.rate.N(e.buffer))
		if e.err != nil {
			e.log.Errorw("speaker init failed", "rate", e.rate, "error", e.err)
			return
		}
		e.started.Store(true)
		e.log.Infow("speaker ready", "rate", e.rate, "buffer", e.buffer)
	})
	return e.err
}

// Close releases the speaker if it was opened.
func (e *Engine) Close() {
	if e.started.CompareAndSwap(true, false) {
		e.closeSpeaker()
	}
}

// NewElement creates a playback element bound to the engine.
func (e *Engine) NewElement() *Element {
	return &Element{engine: e}
}

// Element plays one clip at a time, like a media element.
type Element struct {
	engine *Engine

	mu      sync.Mutex
	clip    *media.Clip
	seeker  beep.StreamSeeker
	ctrl    *beep.Ctrl
	playing bool
	onEnded func()
	gen     uint64
}

// Load replaces the current clip. Playback is stopped.
func (el *Element) Load(clip *media.Clip) {
	el.Unload()

	el.mu.Lock()
	defer el.mu.Unlock()
	el.clip = clip
	if clip.Len() > 0 {
		el.seeker = clip.Buffer.Streamer(0, clip.Len())
	}
}

// Unload stops playback and drops the clip.
func (el *Element) Unload() {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.engine.lock()
	if el.ctrl != nil {
		el.ctrl.Streamer = nil
	}
	el.engine.unlock()

	el.ctrl = nil
	el.clip = nil
	el.seeker = nil
	el.playing = false
	el.onEnded = nil
	el.gen++
}

// Play starts or resumes playback. onEnded runs once when the clip
// finishes naturally.
func (el *Element) Play(onEnded func()) error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.seeker == nil {
		return ErrNoSource
	}
	if err := el.engine.start(); err != nil {
		return fmt.Errorf("start speaker: %w", err)
	}

	el.onEnded = onEnded
	el.playing = true

	el.engine.lock()
	if el.seeker.Position() >= el.seeker.Len() {
		if err := el.seeker.Seek(0); err != nil {
			el.engine.unlock()
			el.playing = false
			return fmt.Errorf("rewind: %w", err)
		}
	}
	if el.ctrl != nil {
		el.ctrl.Paused = false
		el.engine.unlock()
		return nil
	}
	el.engine.unlock()

	gen := el.gen
	var s beep.Streamer = el.seeker
	if el.clip.Format.SampleRate != el.engine.rate {
		s = beep.Resample(resampleQuality, el.clip.Format.SampleRate, el.engine.rate, s)
	}
	// the callback runs under the speaker lock
	el.ctrl = &beep.Ctrl{Streamer: beep.Seq(s, beep.Callback(func() {
		go el.ended(gen)
	}))}
	el.engine.play(el.ctrl)
	return nil
}

func (el *Element) ended(gen uint64) {
	el.mu.Lock()
	if gen != el.gen || !el.playing {
		el.mu.Unlock()
		return
	}
	el.playing = false
	el.ctrl = nil
	fn := el.onEnded
	el.onEnded = nil
	el.gen++
	el.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pause halts playback, keeping the position.
func (el *Element) Pause() {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.engine.lock()
	if el.ctrl != nil {
		el.ctrl.Paused = true
	}
	el.engine.unlock()
	el.playing = false
}

// Playing reports whether the element is currently producing sound.
func (el *Element) Playing() bool {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.playing
}

// Position returns the playback position in seconds.
func (el *Element) Position() float64 {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.seeker == nil {
		return 0
	}
	el.engine.lock()
	pos := el.seeker.Position()
	el.engine.unlock()
	return el.clip.Format.SampleRate.D(pos).Seconds()
}

// Duration returns the loaded clip length in seconds.
func (el *Element) Duration() float64 {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.clip.Seconds()
}

// Seek moves the playback position, clamped to the clip bounds.
func (el *Element) Seek(seconds float64) error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.seeker == nil {
		return ErrNoSource
	}
	n := el.clip.Format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	if n < 0 {
		n = 0
	}
	if end := el.seeker.Len(); n > end {
		n = end
	}

	el.engine.lock()
	defer el.engine.unlock()
	return el.seeker.Seek(n)
}
