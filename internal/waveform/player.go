package waveform

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"pronounce/internal/asset"
	"pronounce/internal/i18n"
	"pronounce/internal/media"
)

// State is the player lifecycle state.
type State int

const (
	StateIdle    State = iota // No asset bound
	StateLoading              // Fetching and decoding
	StateReady                // Envelope available, paused
	StatePlaying              // Sound running, progress loop active
	StateError                // Fetch or decode failed, terminal until the locator changes
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Element is the sound output bound to a player.
type Element interface {
	Load(clip *media.Clip)
	Unload()
	Play(onEnded func()) error
	Pause()
	Position() float64
	Seek(seconds float64) error
}

// Notifier shows short user-visible messages.
type Notifier interface {
	Toast(title, description string)
}

// PlaybackError reports a failure to start sound output. It is logged and
// toasted, the player itself stays ready.
type PlaybackError struct {
	Locator asset.Locator
	Err     error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("play %s: %v", e.Locator, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }

// PlayerConfig configures a Player.
type PlayerConfig struct {
	Extractor   *Extractor
	Element     Element
	Notifier    Notifier
	Style       Style
	RefreshRate time.Duration
	Width       int // initial surface width in dp
	Log         *zap.SugaredLogger
}

// Snapshot is a consistent copy of the player state for drawing.
type Snapshot struct {
	Locator  asset.Locator
	State    State
	Envelope Envelope
	Current  float64
	Duration float64
	Err      error
}

// Progress returns the playback fraction in [0, 1].
func (s Snapshot) Progress() float64 {
	return Progress(s.Current, s.Duration)
}

// Playing reports whether sound is running.
func (s Snapshot) Playing() bool {
	return s.State == StatePlaying
}

// Player binds one sound element to one waveform surface.
type Player struct {
	extractor *Extractor
	element   Element
	notifier  Notifier
	style     Style
	refresh   time.Duration
	log       *zap.SugaredLogger

	ctx    context.Context
	cancel context.CancelFunc
	loads  sync.WaitGroup

	mu          sync.Mutex
	locator     asset.Locator
	gen         uint64
	state       State
	env         Envelope
	current     float64
	duration    float64
	width       int
	err         error
	starting    bool
	stopLoop    chan struct{}
	onPlayPause func(bool)
	invalidate  func()
	closed      bool
}

// NewPlayer creates an idle player.
func NewPlayer(cfg PlayerConfig) *Player {
	if cfg.RefreshRate <= 0 {
		cfg.RefreshRate = 16 * time.Millisecond
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		extractor: cfg.Extractor,
		element:   cfg.Element,
		notifier:  cfg.Notifier,
		style:     cfg.Style,
		refresh:   cfg.RefreshRate,
		log:       cfg.Log,
		ctx:       ctx,
		cancel:    cancel,
		width:     cfg.Width,
	}
}

// OnPlayPause registers the observer told about every play/pause change.
func (p *Player) OnPlayPause(fn func(playing bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onPlayPause = fn
}

// OnInvalidate registers the redraw callback.
func (p *Player) OnInvalidate(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidate = fn
}

// Style returns the drawing style.
func (p *Player) Style() Style {
	return p.style
}

// SetSurfaceWidth records the drawing width used by the next extraction.
func (p *Player) SetSurfaceWidth(dp int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = dp
}

// SetSource binds a new asset. The previous binding is paused and
// unloaded, the position resets to zero and extraction starts in the
// background. Rebinding the current locator does nothing.
func (p *Player) SetSource(loc asset.Locator) {
	p.mu.Lock()
	if p.closed || loc == p.locator {
		p.mu.Unlock()
		return
	}

	wasPlaying := p.haltLocked()
	p.element.Unload()

	p.gen++
	gen := p.gen
	p.locator = loc
	p.env = nil
	p.current = 0
	p.duration = 0
	p.err = nil

	if loc == "" {
		p.state = StateIdle
	} else {
		p.state = StateLoading
		buckets := BucketCount(p.width, p.style.BarWidth, p.style.BarGap)
		p.loads.Add(1)
		go p.load(gen, loc, buckets)
	}
	observer, redraw := p.onPlayPause, p.invalidate
	p.mu.Unlock()

	p.log.Debugw("source changed", "locator", loc, "generation", gen)
	if wasPlaying && observer != nil {
		observer(false)
	}
	if redraw != nil {
		redraw()
	}
}

func (p *Player) load(gen uint64, loc asset.Locator, buckets int) {
	defer p.loads.Done()

	ext, err := p.extractor.Extract(p.ctx, loc, buckets)

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		p.log.Debugw("stale extraction dropped", "locator", loc, "generation", gen)
		return
	}
	if err != nil {
		p.state = StateError
		p.err = err
		redraw := p.invalidate
		p.mu.Unlock()

		p.log.Warnw("waveform extraction failed", "locator", loc, "error", err)
		if redraw != nil {
			redraw()
		}
		return
	}

	p.env = ext.Envelope
	p.duration = ext.Duration
	p.element.Load(ext.Clip)
	p.state = StateReady
	redraw := p.invalidate
	p.mu.Unlock()

	if redraw != nil {
		redraw()
	}
}

// TogglePlayPause plays when paused and pauses when playing. It does
// nothing while no asset is ready.
func (p *Player) TogglePlayPause() {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()

	switch state {
	case StatePlaying:
		p.Pause()
	case StateReady:
		p.play()
	}
}

func (p *Player) play() {
	p.mu.Lock()
	if p.state != StateReady || p.starting {
		p.mu.Unlock()
		return
	}
	p.starting = true
	gen := p.gen
	loc := p.locator
	p.mu.Unlock()

	// The first Play opens the output device, Snapshot must not wait on it.
	err := p.element.Play(func() { p.ended(gen) })

	p.mu.Lock()
	p.starting = false
	observer, redraw := p.onPlayPause, p.invalidate

	if err != nil {
		p.mu.Unlock()

		// The player stays ready so the next click retries.
		p.log.Errorw("playback failed", "error", &PlaybackError{Locator: loc, Err: err})
		if observer != nil {
			observer(false)
		}
		if p.notifier != nil {
			p.notifier.Toast(i18n.T("playback_error_title"), i18n.T("playback_error_body"))
		}
		if redraw != nil {
			redraw()
		}
		return
	}

	if gen != p.gen || p.state != StateReady {
		// Source changed or player closed while the device was opening.
		p.element.Pause()
		p.mu.Unlock()
		p.log.Debugw("stale play dropped", "locator", loc, "generation", gen)
		return
	}

	p.state = StatePlaying
	stop := make(chan struct{})
	p.stopLoop = stop
	go p.progressLoop(stop)
	p.mu.Unlock()

	if observer != nil {
		observer(true)
	}
}

// progressLoop samples the element position once per refresh tick until
// stop is closed.
func (p *Player) progressLoop(stop chan struct{}) {
	ticker := time.NewTicker(p.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			pos := p.element.Position()

			p.mu.Lock()
			if p.stopLoop != stop {
				p.mu.Unlock()
				return
			}
			p.current = min(max(pos, 0), p.duration)
			redraw := p.invalidate
			p.mu.Unlock()

			if redraw != nil {
				redraw()
			}
		}
	}
}

// haltLocked is the single stop path: it cancels the progress loop and
// pauses the element. It reports whether sound was running.
func (p *Player) haltLocked() bool {
	if p.stopLoop != nil {
		close(p.stopLoop)
		p.stopLoop = nil
	}
	if p.state != StatePlaying {
		return false
	}
	p.element.Pause()
	p.state = StateReady
	return true
}

// Pause halts playback. Calling it while paused is a no-op.
func (p *Player) Pause() {
	p.mu.Lock()
	wasPlaying := p.haltLocked()
	if wasPlaying {
		p.current = min(max(p.element.Position(), 0), p.duration)
	}
	observer, redraw := p.onPlayPause, p.invalidate
	p.mu.Unlock()

	if !wasPlaying {
		return
	}
	if observer != nil {
		observer(false)
	}
	if redraw != nil {
		redraw()
	}
}

func (p *Player) ended(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || p.state != StatePlaying {
		p.mu.Unlock()
		return
	}
	p.haltLocked()
	p.current = p.duration
	observer, redraw := p.onPlayPause, p.invalidate
	p.mu.Unlock()

	if observer != nil {
		observer(false)
	}
	if redraw != nil {
		redraw()
	}
}

// SeekAt moves playback to the time under pixel x of a surface width
// pixels wide. It is ignored until the duration is known.
func (p *Player) SeekAt(x, width float64) {
	p.mu.Lock()
	if p.duration <= 0 || width <= 0 || (p.state != StateReady && p.state != StatePlaying) {
		p.mu.Unlock()
		return
	}
	t := min(max(p.duration*x/width, 0), p.duration)
	p.current = t
	if err := p.element.Seek(t); err != nil {
		p.log.Warnw("seek failed", "locator", p.locator, "to", t, "error", err)
	}
	redraw := p.invalidate
	p.mu.Unlock()

	if redraw != nil {
		redraw()
	}
}

// Snapshot returns a copy of the current state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Locator:  p.locator,
		State:    p.state,
		Envelope: append(Envelope(nil), p.env...),
		Current:  p.current,
		Duration: p.duration,
		Err:      p.err,
	}
}

// Close pauses, releases the element and waits for in-flight extraction.
func (p *Player) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	wasPlaying := p.haltLocked()
	p.element.Unload()
	p.gen++
	observer := p.onPlayPause
	p.mu.Unlock()

	p.cancel()
	p.loads.Wait()

	if wasPlaying && observer != nil {
		observer(false)
	}
}
