// Package guide coordinates the reference track, the recorder and the
// recorded track for the selected practice item.
package guide

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"pronounce/internal/asset"
	"pronounce/internal/catalog"
)

// ErrUnknownSelection is returned for a language or sentence that is not
// in the catalog.
var ErrUnknownSelection = errors.New("unknown selection")

// Track is the command surface of a waveform player.
type Track interface {
	SetSource(loc asset.Locator)
	TogglePlayPause()
	Pause()
	OnPlayPause(fn func(playing bool))
}

// Recorder captures the learner's voice.
type Recorder interface {
	Start(ctx context.Context) error
	Stop() (asset.Locator, error)
	Reset() error
	IsRecording() bool
	Elapsed() int
}

// View is a snapshot of the guide for rendering.
type View struct {
	Item             catalog.PracticeItem
	Recording        bool
	Elapsed          int
	Recorded         asset.Locator
	ReferencePlaying bool
	RecordedPlaying  bool
}

// HasRecording reports whether a finished recording is available.
func (v View) HasRecording() bool {
	return v.Recorded != ""
}

// ShowTips reports whether the pronunciation tips should be shown.
func (v View) ShowTips() bool {
	return v.HasRecording() && !v.Recording
}

// Guide owns the selection and routes commands to the tracks.
type Guide struct {
	reference Track
	recorded  Track
	recorder  Recorder
	log       *zap.SugaredLogger

	mu               sync.Mutex
	item             catalog.PracticeItem
	recordedLoc      asset.Locator
	referencePlaying bool
	recordedPlaying  bool
	onChange         func()
}

// New creates a guide showing the default item.
func New(reference, recorded Track, recorder Recorder, log *zap.SugaredLogger) *Guide {
	g := &Guide{
		reference: reference,
		recorded:  recorded,
		recorder:  recorder,
		log:       log,
		item:      catalog.Default(),
	}
	reference.OnPlayPause(func(playing bool) {
		g.mu.Lock()
		g.referencePlaying = playing
		g.mu.Unlock()
		g.changed()
	})
	recorded.OnPlayPause(func(playing bool) {
		g.mu.Lock()
		g.recordedPlaying = playing
		g.mu.Unlock()
		g.changed()
	})
	reference.SetSource(g.item.Reference)
	return g
}

// OnChange registers a callback run after every state change.
func (g *Guide) OnChange(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onChange = fn
}

func (g *Guide) changed() {
	g.mu.Lock()
	fn := g.onChange
	g.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// View returns the current state.
func (g *Guide) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return View{
		Item:             g.item,
		Recording:        g.recorder.IsRecording(),
		Elapsed:          g.recorder.Elapsed(),
		Recorded:         g.recordedLoc,
		ReferencePlaying: g.referencePlaying,
		RecordedPlaying:  g.recordedPlaying,
	}
}

// SelectLanguage switches the practice language, keeping the sentence.
func (g *Guide) SelectLanguage(code string) error {
	g.mu.Lock()
	index := g.item.SentenceIndex
	g.mu.Unlock()

	item, ok := catalog.Find(code, index)
	if !ok {
		return fmt.Errorf("%w: language %q", ErrUnknownSelection, code)
	}
	g.apply(item)
	return nil
}

// SelectSentence switches the sentence, keeping the language.
func (g *Guide) SelectSentence(index int) error {
	g.mu.Lock()
	code := g.item.LanguageCode
	g.mu.Unlock()

	item, ok := catalog.Find(code, index)
	if !ok {
		return fmt.Errorf("%w: sentence %d", ErrUnknownSelection, index)
	}
	g.apply(item)
	return nil
}

// apply stops both tracks, drops the recording and then binds the new
// reference, in that order.
func (g *Guide) apply(item catalog.PracticeItem) {
	g.reference.Pause()
	g.recorded.Pause()
	g.resetRecording()

	g.mu.Lock()
	g.item = item
	g.mu.Unlock()

	g.reference.SetSource(item.Reference)
	g.log.Infow("practice item selected", "id", item.ID)
	g.changed()
}

func (g *Guide) resetRecording() {
	g.recorded.SetSource("")
	if err := g.recorder.Reset(); err != nil {
		g.log.Warnw("reset recording", "error", err)
	}
	g.mu.Lock()
	g.recordedLoc = ""
	g.mu.Unlock()
}

// ToggleRecording stops an active recording and binds it to the recorded
// track, or drops the previous recording and starts a new one.
func (g *Guide) ToggleRecording(ctx context.Context) error {
	if g.recorder.IsRecording() {
		loc, err := g.recorder.Stop()
		if err != nil {
			return fmt.Errorf("stop recording: %w", err)
		}
		g.mu.Lock()
		g.recordedLoc = loc
		g.mu.Unlock()

		g.recorded.SetSource(loc)
		g.changed()
		return nil
	}

	g.resetRecording()
	err := g.recorder.Start(ctx)
	g.changed()
	if err != nil {
		return fmt.Errorf("start recording: %w", err)
	}
	return nil
}

// ResetRecording discards the current recording.
func (g *Guide) ResetRecording() {
	g.recorded.Pause()
	g.resetRecording()
	g.changed()
}

// ToggleReference plays or pauses the reference track.
func (g *Guide) ToggleReference() {
	g.reference.TogglePlayPause()
}

// ToggleRecorded plays or pauses the recorded track.
func (g *Guide) ToggleRecorded() {
	g.recorded.TogglePlayPause()
}

// Close pauses both tracks and discards the recording.
func (g *Guide) Close() {
	g.reference.Pause()
	g.recorded.Pause()
	g.resetRecording()
}
