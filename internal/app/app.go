// Package app содержит основную логику приложения.
package app

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"pronounce/internal/asset"
	"pronounce/internal/audio"
	"pronounce/internal/config"
	"pronounce/internal/dialog"
	"pronounce/internal/guide"
	"pronounce/internal/hotkey"
	"pronounce/internal/i18n"
	"pronounce/internal/logging"
	"pronounce/internal/notify"
	"pronounce/internal/playback"
	"pronounce/internal/tray"
	"pronounce/internal/ui"
	"pronounce/internal/waveform"
)

// surfaceInset - отступы окна и панели вокруг поверхности волны, dp.
const surfaceInset = 72

// App представляет главное приложение.
type App struct {
	config   *config.Config
	log      *zap.SugaredLogger
	store    *asset.Store
	engine   *playback.Engine
	recorder *audio.Recorder
	notifier *notify.Notifier

	reference *waveform.Player
	recorded  *waveform.Player
	guide     *guide.Guide
	window    *ui.Window
	tray      *tray.Tray
	hotkey    *hotkey.Handler

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	recording bool
	closed    bool
}

// New создаёт новое приложение с конфигурацией из configPath.
func New(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	lc := cfg.Log()
	log, err := logging.New(logging.Options{Level: lc.Level, Path: lc.Path})
	if err != nil {
		return nil, err
	}

	// Инициализируем язык интерфейса из конфига
	i18n.SetLanguage(i18n.Language(cfg.UILanguage()))

	store := asset.NewStore()
	router := &asset.Router{
		Memory:    store,
		Reference: asset.NewReferenceFetcher(cfg.AssetRoot()),
	}
	extractor := waveform.NewExtractor(router, log.Named("extract"))

	pb := cfg.Playback()
	engine := playback.NewEngine(pb.SampleRate, pb.Buffer(), log.Named("playback"))

	var device audio.Device
	if pa, err := audio.NewPortAudioDevice(); err != nil {
		log.Warnw("audio input unavailable", "error", err)
		device = audio.Unavailable(err)
	} else {
		device = pa
	}
	rc := cfg.Recorder()
	recorder := audio.New(device, store, audio.Config{
		SampleRate:      rc.SampleRate,
		FramesPerBuffer: rc.FramesPerBuffer,
	}, log.Named("recorder"))

	notifier := notify.New(cfg.NotificationsEnabled())

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		config:   cfg,
		log:      log,
		store:    store,
		engine:   engine,
		recorder: recorder,
		notifier: notifier,
		ctx:      ctx,
		cancel:   cancel,
	}

	wc := cfg.Waveform()
	style := waveform.DefaultStyle()
	style.Height = wc.Height
	style.BarWidth = wc.BarWidth
	style.BarGap = wc.BarGap

	winCfg := ui.DefaultConfig()
	newPlayer := func(name string) *waveform.Player {
		return waveform.NewPlayer(waveform.PlayerConfig{
			Extractor:   extractor,
			Element:     engine.NewElement(),
			Notifier:    notifier,
			Style:       style,
			RefreshRate: wc.RefreshRate(),
			Width:       winCfg.Width - surfaceInset,
			Log:         log.Named(name),
		})
	}
	a.reference = newPlayer("reference")
	a.recorded = newPlayer("recorded")

	a.guide = guide.New(a.reference, a.recorded, recorder, log.Named("guide"))
	a.restoreSelection()

	a.window = ui.New(a.guide, waveform.NewWidget(a.reference), waveform.NewWidget(a.recorded), recorder, winCfg, log.Named("ui"))
	a.window.OnSelect(cfg.SetSelection)
	a.window.OnError(a.onRecordingError)

	a.reference.OnInvalidate(a.window.Invalidate)
	a.recorded.OnInvalidate(a.window.Invalidate)
	recorder.OnTick(func(int) { a.window.Invalidate() })
	a.guide.OnChange(a.onGuideChange)

	// Создаём обработчик горячей клавиши
	a.hotkey = hotkey.New(a.toggleRecording, log.Named("hotkey"))
	cfg.OnHotkeyChange(func(hk config.HotkeyConfig) {
		if err := a.hotkey.Register(hk); err != nil {
			a.log.Errorw("register hotkey", "hotkey", hk.String(), "error", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}
	})

	// Создаём системный трей с обработчиками
	a.tray = tray.New(tray.Callbacks{
		OnShow:         a.window.Show,
		OnRecordToggle: a.toggleRecording,
		OnReference:    a.guide.ToggleReference,
		OnLanguage:     func() { go a.chooseLanguage() },
		OnSentence:     func() { go a.chooseSentence() },
		OnHotkey:       func() { go a.chooseHotkey() },
		OnUILanguage:   a.setUILanguage,
		OnNotificationsToggle: func() bool {
			enabled := a.config.ToggleNotifications()
			a.notifier.SetEnabled(enabled)
			return enabled
		},
		OnQuit: a.Close,
	}, cfg.NotificationsEnabled())

	return a, nil
}

// Run запускает приложение. Блокирующая функция.
func (a *App) Run() {
	a.tray.Run(func() {
		// Регистрируем горячую клавишу после инициализации трея
		hk := a.config.Hotkey()
		if err := a.hotkey.Register(hk); err != nil {
			a.log.Errorw("register hotkey", "hotkey", hk.String(), "error", err)
		}
		a.window.Show()
		a.log.Infow("ready", "hotkey", hk.String(), "item", a.guide.View().Item.ID)
	})
}

// restoreSelection применяет язык и фразу из конфига.
func (a *App) restoreSelection() {
	if err := a.guide.SelectLanguage(a.config.Language()); err != nil {
		a.log.Warnw("restore language", "error", err)
	}
	if err := a.guide.SelectSentence(a.config.Sentence()); err != nil {
		a.log.Warnw("restore sentence", "error", err)
	}
}

func (a *App) toggleRecording() {
	if err := a.guide.ToggleRecording(a.ctx); err != nil {
		a.onRecordingError(err)
	}
}

func (a *App) onRecordingError(err error) {
	a.log.Errorw("recording failed", "error", err)
	if errors.Is(err, audio.ErrDeviceUnavailable) {
		go dialog.ShowError(i18n.T("error_recording"), i18n.T("error_microphone"))
		return
	}
	a.notifier.Error(err.Error())
}

// onGuideChange синхронизирует трей, окно и уведомления с состоянием гида.
func (a *App) onGuideChange() {
	view := a.guide.View()

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	started := view.Recording && !a.recording
	stopped := !view.Recording && a.recording
	a.recording = view.Recording
	a.mu.Unlock()

	switch {
	case started:
		a.notifier.Recording()
	case stopped && view.HasRecording():
		a.notifier.Recorded(view.Elapsed)
	}

	a.tray.SetState(trayState(view))
	a.window.Invalidate()
}

// trayState выбирает состояние иконки: запись важнее воспроизведения.
func trayState(view guide.View) tray.State {
	switch {
	case view.Recording:
		return tray.StateRecording
	case view.ReferencePlaying || view.RecordedPlaying:
		return tray.StatePlaying
	default:
		return tray.StateIdle
	}
}

func (a *App) chooseLanguage() {
	current := a.guide.View().Item.LanguageCode
	code, err := dialog.SelectLanguage(current)
	if err != nil || code == current {
		return
	}
	a.applySelection(a.guide.SelectLanguage(code))
}

func (a *App) chooseSentence() {
	current := a.guide.View().Item.SentenceIndex
	index, err := dialog.SelectSentence(current)
	if err != nil || index == current {
		return
	}
	a.applySelection(a.guide.SelectSentence(index))
}

func (a *App) applySelection(err error) {
	if err != nil {
		a.log.Warnw("select practice item", "error", err)
		return
	}
	item := a.guide.View().Item
	a.config.SetSelection(item.LanguageCode, item.SentenceIndex)
}

func (a *App) chooseHotkey() {
	hk, err := dialog.SelectHotkey(a.config.Hotkey())
	switch {
	case errors.Is(err, dialog.ErrCanceled):
		return
	case errors.Is(err, dialog.ErrNoModifier):
		dialog.ShowError(i18n.T("dialog_hotkey_title"), i18n.T("error_no_modifier"))
		return
	case err != nil:
		a.log.Warnw("hotkey dialog", "error", err)
		return
	}
	if err := a.config.SetHotkey(hk); err != nil {
		a.log.Warnw("set hotkey", "error", err)
		dialog.ShowError(i18n.T("dialog_hotkey_title"), err.Error())
	}
}

func (a *App) setUILanguage(lang i18n.Language) {
	i18n.SetLanguage(lang)
	a.config.SetUILanguage(string(lang))
	a.tray.RefreshUI()
	a.window.Invalidate()
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.mu.Unlock()

	a.cancel()

	if err := a.hotkey.Unregister(); err != nil {
		a.log.Debugw("unregister hotkey", "error", err)
	}
	a.window.Hide()
	a.guide.Close()
	a.reference.Close()
	a.recorded.Close()
	if err := a.recorder.Close(); err != nil {
		a.log.Debugw("close recorder", "error", err)
	}
	a.engine.Close()

	a.log.Infow("closed", "assets", a.store.Len())
	_ = a.log.Sync()
}
