// Package tray предоставляет системный трей с меню.
package tray

import (
	"sync"

	"github.com/getlantern/systray"

	"pronounce/embedded"
	"pronounce/internal/i18n"
)

// State представляет состояние приложения для отображения в трее.
type State int

const (
	StateIdle State = iota
	StateRecording
	StatePlaying
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnShow                func()
	OnRecordToggle        func()
	OnReference           func()
	OnLanguage            func()
	OnSentence            func()
	OnHotkey              func()
	OnUILanguage          func(i18n.Language)
	OnNotificationsToggle func() bool
	OnQuit                func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks     Callbacks
	notifications bool

	mu    sync.Mutex
	state State

	status       *systray.MenuItem
	showBtn      *systray.MenuItem
	recordBtn    *systray.MenuItem
	referenceBtn *systray.MenuItem
	languageBtn  *systray.MenuItem
	sentenceBtn  *systray.MenuItem
	hotkeyBtn    *systray.MenuItem
	uiLang       *systray.MenuItem
	uiLangItems  map[i18n.Language]*systray.MenuItem
	notifyOn     *systray.MenuItem
	quitBtn      *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks, notifications bool) *Tray {
	return &Tray{
		callbacks:     callbacks,
		notifications: notifications,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconIdle)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(i18n.T("tray_ready"), "")
	t.status.Disable()

	systray.AddSeparator()

	t.showBtn = systray.AddMenuItem(i18n.T("tray_show"), i18n.T("tray_show_hint"))
	t.recordBtn = systray.AddMenuItem(i18n.T("tray_record"), i18n.T("tray_record_hint"))
	t.referenceBtn = systray.AddMenuItem(i18n.T("tray_reference"), i18n.T("tray_reference_hint"))

	systray.AddSeparator()

	t.languageBtn = systray.AddMenuItem(i18n.T("tray_language"), i18n.T("tray_language_hint"))
	t.sentenceBtn = systray.AddMenuItem(i18n.T("tray_sentence"), i18n.T("tray_sentence_hint"))

	systray.AddSeparator()

	t.hotkeyBtn = systray.AddMenuItem(i18n.T("tray_hotkey"), i18n.T("tray_hotkey_hint"))

	// Язык интерфейса
	t.uiLang = systray.AddMenuItem(i18n.T("tray_ui_language"), "")
	t.uiLangItems = make(map[i18n.Language]*systray.MenuItem)
	for _, lang := range i18n.AvailableLanguages() {
		item := t.uiLang.AddSubMenuItemCheckbox(i18n.LanguageName(lang), "", lang == i18n.GetLanguage())
		t.uiLangItems[lang] = item
	}
	for lang, item := range t.uiLangItems {
		go t.handleUILanguage(lang, item)
	}

	// Уведомления
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.notifications)

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.showBtn.ClickedCh:
			call(t.callbacks.OnShow)
		case <-t.recordBtn.ClickedCh:
			call(t.callbacks.OnRecordToggle)
		case <-t.referenceBtn.ClickedCh:
			call(t.callbacks.OnReference)
		case <-t.languageBtn.ClickedCh:
			call(t.callbacks.OnLanguage)
		case <-t.sentenceBtn.ClickedCh:
			call(t.callbacks.OnSentence)
		case <-t.hotkeyBtn.ClickedCh:
			call(t.callbacks.OnHotkey)

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				if t.callbacks.OnNotificationsToggle() {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			call(t.callbacks.OnQuit)
			systray.Quit()
			return
		}
	}
}

func (t *Tray) handleUILanguage(lang i18n.Language, item *systray.MenuItem) {
	for range item.ClickedCh {
		for l, other := range t.uiLangItems {
			if l == lang {
				other.Check()
			} else {
				other.Uncheck()
			}
		}
		if t.callbacks.OnUILanguage != nil {
			t.callbacks.OnUILanguage(lang)
		}
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// SetState устанавливает состояние приложения и обновляет иконку.
func (t *Tray) SetState(state State) {
	t.mu.Lock()
	t.state = state
	t.mu.Unlock()

	switch state {
	case StateIdle:
		systray.SetIcon(embedded.IconIdle)
	case StateRecording:
		systray.SetIcon(embedded.IconRecording)
	case StatePlaying:
		systray.SetIcon(embedded.IconPlaying)
	}
	t.applyState(state)
}

func (t *Tray) applyState(state State) {
	status := statusKey(state)
	systray.SetTooltip(i18n.T("app_name") + " - " + i18n.T(status))
	if t.status != nil {
		t.status.SetTitle(i18n.T(status))
	}
	if t.recordBtn != nil {
		t.recordBtn.SetTitle(i18n.T(recordKey(state)))
	}
}

func statusKey(state State) string {
	switch state {
	case StateRecording:
		return "tray_recording"
	case StatePlaying:
		return "tray_playing"
	default:
		return "tray_ready"
	}
}

func recordKey(state State) string {
	if state == StateRecording {
		return "tray_record_stop"
	}
	return "tray_record"
}

func (t *Tray) onExit() {}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	t.mu.Lock()
	state := t.state
	t.mu.Unlock()

	t.applyState(state)

	for item, key := range map[*systray.MenuItem]string{
		t.showBtn:      "tray_show",
		t.referenceBtn: "tray_reference",
		t.languageBtn:  "tray_language",
		t.sentenceBtn:  "tray_sentence",
		t.hotkeyBtn:    "tray_hotkey",
		t.notifyOn:     "tray_notifications",
		t.quitBtn:      "tray_quit",
	} {
		if item == nil {
			continue
		}
		item.SetTitle(i18n.T(key))
		item.SetTooltip(i18n.T(key + "_hint"))
	}
	if t.recordBtn != nil {
		t.recordBtn.SetTooltip(i18n.T("tray_record_hint"))
	}
	if t.uiLang != nil {
		t.uiLang.SetTitle(i18n.T("tray_ui_language"))
	}
}
