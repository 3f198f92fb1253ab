package guide

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pronounce/internal/asset"
)

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) take() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.calls
	l.calls = nil
	return out
}

type fakeTrack struct {
	name     string
	log      *callLog
	observer func(bool)
	source   asset.Locator
}

func (t *fakeTrack) SetSource(loc asset.Locator) {
	t.source = loc
	t.log.add("%s.source(%s)", t.name, loc)
}
func (t *fakeTrack) TogglePlayPause()          { t.log.add("%s.toggle", t.name) }
func (t *fakeTrack) Pause()                    { t.log.add("%s.pause", t.name) }
func (t *fakeTrack) OnPlayPause(fn func(bool)) { t.observer = fn }

type fakeRecorder struct {
	log       *callLog
	recording bool
	startErr  error
	next      asset.Locator
}

func (r *fakeRecorder) Start(context.Context) error {
	r.log.add("recorder.start")
	if r.startErr != nil {
		return r.startErr
	}
	r.recording = true
	return nil
}

func (r *fakeRecorder) Stop() (asset.Locator, error) {
	r.log.add("recorder.stop")
	r.recording = false
	return r.next, nil
}

func (r *fakeRecorder) Reset() error {
	r.log.add("recorder.reset")
	r.recording = false
	return nil
}

func (r *fakeRecorder) IsRecording() bool { return r.recording }
func (r *fakeRecorder) Elapsed() int      { return 0 }

func newTestGuide(t *testing.T) (*Guide, *fakeTrack, *fakeTrack, *fakeRecorder, *callLog) {
	t.Helper()
	log := &callLog{}
	ref := &fakeTrack{name: "ref", log: log}
	rec := &fakeTrack{name: "rec", log: log}
	recorder := &fakeRecorder{log: log, next: "mem://take-1"}
	g := New(ref, rec, recorder, zap.NewNop().Sugar())
	return g, ref, rec, recorder, log
}

func TestNewBindsDefaultReference(t *testing.T) {
	g, ref, _, _, log := newTestGuide(t)

	assert.Equal(t, []string{"ref.source(/audio/speech_en_0.mp3)"}, log.take())
	assert.Equal(t, asset.Locator("/audio/speech_en_0.mp3"), ref.source)
	assert.Equal(t, "en_0", g.View().Item.ID)
}

func TestSelectLanguageOrdering(t *testing.T) {
	g, _, _, _, log := newTestGuide(t)
	require.NoError(t, g.SelectSentence(3))
	log.take()

	require.NoError(t, g.SelectLanguage("fr"))

	assert.Equal(t, []string{
		"ref.pause",
		"rec.pause",
		"rec.source()",
		"recorder.reset",
		"ref.source(/audio/speech_fr_3.mp3)",
	}, log.take())
	assert.Equal(t, "fr_3", g.View().Item.ID)
}

func TestSelectSentenceKeepsLanguage(t *testing.T) {
	g, _, _, _, _ := newTestGuide(t)
	require.NoError(t, g.SelectLanguage("hi"))

	require.NoError(t, g.SelectSentence(9))

	v := g.View()
	assert.Equal(t, "hi", v.Item.LanguageCode)
	assert.Equal(t, 9, v.Item.SentenceIndex)
}

func TestUnknownSelectionChangesNothing(t *testing.T) {
	g, _, _, _, log := newTestGuide(t)
	log.take()

	assert.ErrorIs(t, g.SelectLanguage("de"), ErrUnknownSelection)
	assert.ErrorIs(t, g.SelectSentence(10), ErrUnknownSelection)
	assert.ErrorIs(t, g.SelectSentence(-1), ErrUnknownSelection)

	assert.Empty(t, log.take())
	assert.Equal(t, "en_0", g.View().Item.ID)
}

func TestToggleRecording(t *testing.T) {
	g, _, rec, _, log := newTestGuide(t)
	log.take()

	require.NoError(t, g.ToggleRecording(context.Background()))
	assert.Equal(t, []string{"rec.source()", "recorder.reset", "recorder.start"}, log.take())
	assert.True(t, g.View().Recording)
	assert.False(t, g.View().ShowTips())

	require.NoError(t, g.ToggleRecording(context.Background()))
	assert.Equal(t, []string{"recorder.stop", "rec.source(mem://take-1)"}, log.take())
	assert.Equal(t, asset.Locator("mem://take-1"), rec.source)

	v := g.View()
	assert.True(t, v.HasRecording())
	assert.True(t, v.ShowTips())
}

func TestToggleRecordingStartFailure(t *testing.T) {
	g, _, _, recorder, _ := newTestGuide(t)
	recorder.startErr = errors.New("input device unavailable")

	err := g.ToggleRecording(context.Background())

	assert.ErrorIs(t, err, recorder.startErr)
	assert.False(t, g.View().Recording)
}

func TestSelectionDropsRecording(t *testing.T) {
	g, _, _, _, _ := newTestGuide(t)
	require.NoError(t, g.ToggleRecording(context.Background()))
	require.NoError(t, g.ToggleRecording(context.Background()))
	require.True(t, g.View().HasRecording())

	require.NoError(t, g.SelectSentence(1))

	assert.False(t, g.View().HasRecording())
}

func TestResetRecording(t *testing.T) {
	g, _, _, _, log := newTestGuide(t)
	require.NoError(t, g.ToggleRecording(context.Background()))
	require.NoError(t, g.ToggleRecording(context.Background()))
	log.take()

	g.ResetRecording()

	assert.Equal(t, []string{"rec.pause", "rec.source()", "recorder.reset"}, log.take())
	assert.False(t, g.View().HasRecording())
}

func TestPlayStateFollowsObservers(t *testing.T) {
	g, ref, rec, _, log := newTestGuide(t)
	changes := 0
	g.OnChange(func() { changes++ })

	g.ToggleReference()
	ref.observer(true)
	g.ToggleRecorded()
	rec.observer(true)

	v := g.View()
	assert.True(t, v.ReferencePlaying)
	assert.True(t, v.RecordedPlaying)
	assert.Equal(t, 2, changes)

	ref.observer(false)
	assert.False(t, g.View().ReferencePlaying)
	assert.Contains(t, log.take(), "ref.toggle")
}

func TestClose(t *testing.T) {
	g, _, _, _, log := newTestGuide(t)
	log.take()

	g.Close()

	assert.Equal(t, []string{"ref.pause", "rec.pause", "rec.source()", "recorder.reset"}, log.take())
}
