// Package ui provides the main pronunciation guide window.
package ui

import (
	"context"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"pronounce/internal/catalog"
	"pronounce/internal/guide"
	"pronounce/internal/i18n"
	"pronounce/internal/phonetic"
	"pronounce/internal/waveform"
)

// Guide is the part of the orchestrator the window drives.
type Guide interface {
	View() guide.View
	SelectLanguage(code string) error
	SelectSentence(index int) error
	ToggleRecording(ctx context.Context) error
	ResetRecording()
	ToggleReference()
	ToggleRecorded()
}

// SampleProvider provides live microphone samples for the level meter.
type SampleProvider interface {
	GetSamples() []float32
}

// Config holds window configuration.
type Config struct {
	Width       int           // Window width in dp
	Height      int           // Window height in dp
	RefreshRate time.Duration // Redraw interval
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Width:       560,
		Height:      820,
		RefreshRate: 33 * time.Millisecond, // ~30fps
	}
}

// Window shows the selected practice item, both waveforms and the
// recording controls.
type Window struct {
	mu        sync.Mutex
	guide     Guide
	reference *waveform.Widget
	recorded  *waveform.Widget
	samples   SampleProvider
	config    Config
	log       *zap.SugaredLogger

	onSelect func(code string, index int)
	onError  func(error)

	list         widget.List
	langButtons  map[string]*widget.Clickable
	prevBtn      widget.Clickable
	nextBtn      widget.Clickable
	referenceBtn widget.Clickable
	recordedBtn  widget.Clickable
	recordBtn    widget.Clickable
	resetBtn     widget.Clickable
	symbols      symbolRow

	window  *app.Window
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates the window. It is not shown until Show is called.
func New(g Guide, reference, recorded *waveform.Widget, samples SampleProvider, cfg Config, log *zap.SugaredLogger) *Window {
	w := &Window{
		guide:       g,
		reference:   reference,
		recorded:    recorded,
		samples:     samples,
		config:      cfg,
		log:         log,
		langButtons: make(map[string]*widget.Clickable),
	}
	w.list.Axis = layout.Vertical
	for _, l := range catalog.Languages() {
		w.langButtons[l.Code] = new(widget.Clickable)
	}
	w.symbols.selected = -1
	return w
}

// OnSelect sets the callback run after the practice item changes.
func (w *Window) OnSelect(fn func(code string, index int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onSelect = fn
}

// OnError sets the callback for recording failures.
func (w *Window) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = fn
}

// Show displays the window (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		if w.window != nil {
			w.window.Perform(system.ActionRaise)
		}
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.ctx, w.cancel = context.WithCancel(context.Background())

	go w.runEventLoop(w.stopCh, w.doneCh)
}

// Hide closes the window.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	// Wait for window to close
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Invalidate requests a redraw.
func (w *Window) Invalidate() {
	w.mu.Lock()
	win := w.window
	w.mu.Unlock()
	if win != nil {
		win.Invalidate()
	}
}

func (w *Window) runEventLoop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	win := new(app.Window)
	win.Option(
		app.Title(i18n.T("app_name")+" - "+i18n.T("guide_title")),
		app.Size(unit.Dp(w.config.Width), unit.Dp(w.config.Height)),
		app.MinSize(unit.Dp(420), unit.Dp(560)),
	)

	w.mu.Lock()
	w.window = win
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.window = nil
		w.running = false
		if w.cancel != nil {
			w.cancel()
		}
		w.mu.Unlock()
	}()

	// Invalidation and close goroutine
	go func() {
		ticker := time.NewTicker(w.config.RefreshRate)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				win.Perform(system.ActionClose)
				return
			case <-doneCh:
				return
			case <-ticker.C:
				win.Invalidate()
			}
		}
	}()

	th := newTheme()
	var ops op.Ops

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				w.log.Warnw("window destroyed", "error", e.Err)
			}
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			view := w.guide.View()
			if w.handleEvents(gtx, view) {
				go w.Hide()
			}
			w.draw(gtx, th, view)
			e.Frame(gtx.Ops)
		}
	}
}

// handleEvents routes clicks to the guide. It reports whether the
// window should close.
func (w *Window) handleEvents(gtx layout.Context, view guide.View) bool {
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			return true
		}
	}

	for code, btn := range w.langButtons {
		if btn.Clicked(gtx) && code != view.Item.LanguageCode {
			w.selectLanguage(code)
		}
	}

	n := len(catalog.Sentences())
	if w.prevBtn.Clicked(gtx) {
		w.selectSentence(stepSentence(view.Item.SentenceIndex, n, -1))
	}
	if w.nextBtn.Clicked(gtx) {
		w.selectSentence(stepSentence(view.Item.SentenceIndex, n, 1))
	}

	if w.referenceBtn.Clicked(gtx) {
		w.guide.ToggleReference()
	}
	if w.recordedBtn.Clicked(gtx) {
		w.guide.ToggleRecorded()
	}
	if w.recordBtn.Clicked(gtx) {
		w.toggleRecording()
	}
	if w.resetBtn.Clicked(gtx) {
		w.guide.ResetRecording()
	}

	w.symbols.update(gtx, view.Item)
	return false
}

func (w *Window) selectLanguage(code string) {
	if err := w.guide.SelectLanguage(code); err != nil {
		w.log.Warnw("select language", "code", code, "error", err)
		return
	}
	w.selected()
}

func (w *Window) selectSentence(index int) {
	if err := w.guide.SelectSentence(index); err != nil {
		w.log.Warnw("select sentence", "index", index, "error", err)
		return
	}
	w.selected()
}

func (w *Window) selected() {
	item := w.guide.View().Item
	w.mu.Lock()
	fn := w.onSelect
	w.mu.Unlock()
	if fn != nil {
		fn(item.LanguageCode, item.SentenceIndex)
	}
}

// toggleRecording opens the microphone off the event loop.
func (w *Window) toggleRecording() {
	w.mu.Lock()
	ctx := w.ctx
	onError := w.onError
	w.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	go func() {
		if err := w.guide.ToggleRecording(ctx); err != nil {
			w.log.Errorw("toggle recording", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// stepSentence moves index by delta, wrapping around n sentences.
func stepSentence(index, n, delta int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}

// symbolRow keeps one clickable per phonetic token of the current item.
type symbolRow struct {
	itemID   string
	tokens   []phonetic.Token
	buttons  []*widget.Clickable
	selected int
}

// sync rebuilds the row when the practice item changes.
func (s *symbolRow) sync(item catalog.PracticeItem) {
	if s.itemID == item.ID && s.buttons != nil {
		return
	}
	s.itemID = item.ID
	s.tokens = phonetic.Symbols(item.Phonetic)
	s.buttons = make([]*widget.Clickable, len(s.tokens))
	for i := range s.buttons {
		s.buttons[i] = new(widget.Clickable)
	}
	s.selected = -1
}

func (s *symbolRow) update(gtx layout.Context, item catalog.PracticeItem) {
	s.sync(item)
	for i, btn := range s.buttons {
		if btn.Clicked(gtx) && s.tokens[i].Symbol {
			if s.selected == i {
				s.selected = -1
			} else {
				s.selected = i
			}
		}
	}
}

// current returns the lookup for the selected symbol.
func (s *symbolRow) current(languageCode string) (phonetic.Result, bool) {
	if s.selected < 0 || s.selected >= len(s.tokens) {
		return phonetic.Result{}, false
	}
	return phonetic.Lookup(s.tokens[s.selected].Text, languageCode), true
}

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Palette.Fg = colorText
	th.Palette.Bg = colorBG
	th.Palette.ContrastBg = colorAccent
	th.Palette.ContrastFg = colorText
	return th
}
