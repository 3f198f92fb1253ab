// Package hotkey предоставляет глобальную горячую клавишу переключения записи.
package hotkey

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"pronounce/internal/config"
)

// ErrUnknownKey возвращается для клавиши, которой нет в keyMap.
var ErrUnknownKey = errors.New("unknown hotkey key")

// debounceInterval защищает от key repeat.
const debounceInterval = 300 * time.Millisecond

// Handler вызывает onToggle при каждом нажатии горячей клавиши.
type Handler struct {
	mu       sync.Mutex
	hk       *hotkey.Hotkey
	onToggle func()
	current  config.HotkeyConfig
	stopCh   chan struct{}
	log      *zap.SugaredLogger
}

// New создаёт обработчик горячей клавиши.
func New(onToggle func(), log *zap.SugaredLogger) *Handler {
	return &Handler{
		onToggle: onToggle,
		log:      log,
	}
}

type modifier struct {
	code  hotkey.Modifier
	label string
}

// ModifierLabel возвращает подпись модификатора на текущей платформе.
func ModifierLabel(m config.Modifier) string {
	if mod, ok := modifiers[m]; ok {
		return mod.label
	}
	return string(m)
}

// resolve переводит конфигурацию в модификаторы и клавишу библиотеки.
func resolve(cfg config.HotkeyConfig) ([]hotkey.Modifier, hotkey.Key, error) {
	mods := make([]hotkey.Modifier, 0, len(cfg.Modifiers))
	for _, m := range cfg.Modifiers {
		mod, ok := modifiers[m]
		if !ok {
			return nil, 0, fmt.Errorf("%w: modifier %q", ErrUnknownKey, m)
		}
		mods = append(mods, mod.code)
	}
	key, ok := keyMap[cfg.Key]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownKey, cfg.Key)
	}
	return mods, key, nil
}

// Register регистрирует горячую клавишу, снимая предыдущую.
func (h *Handler) Register(cfg config.HotkeyConfig) error {
	mods, key, err := resolve(cfg)
	if err != nil {
		return err
	}
	h.log.Infow("registering hotkey", "hotkey", cfg.String())

	h.mu.Lock()
	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	oldHk := h.hk
	h.hk = nil
	h.mu.Unlock()

	// Отменяем предыдущую регистрацию с таймаутом
	if oldHk != nil {
		done := make(chan struct{})
		go func() {
			_ = oldHk.Unregister()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			h.log.Warnw("hotkey unregister timeout")
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", cfg.String(), err)
	}
	h.hk = hk
	h.current = cfg
	h.stopCh = make(chan struct{})

	go h.listen(hk, h.stopCh)
	return nil
}

func (h *Handler) listen(hk *hotkey.Hotkey, stopCh chan struct{}) {
	var lastKeydown time.Time

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-hk.Keydown():
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if h.onToggle != nil {
				h.onToggle()
			}
		case _, ok := <-hk.Keyup():
			if !ok {
				return
			}
		}
	}
}

// Unregister отменяет регистрацию горячей клавиши.
func (h *Handler) Unregister() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	if h.hk == nil {
		return nil
	}
	err := h.hk.Unregister()
	h.hk = nil
	return err
}

// Current возвращает текущую зарегистрированную горячую клавишу.
func (h *Handler) Current() config.HotkeyConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

// modifiers определены в modifiers_<os>.go.

var keyMap = map[config.Key]hotkey.Key{
	config.KeySpace:  hotkey.KeySpace,
	config.KeyReturn: hotkey.KeyReturn,
	config.KeyTab:    hotkey.KeyTab,
	"a":              hotkey.KeyA,
	"b":              hotkey.KeyB,
	"c":              hotkey.KeyC,
	"d":              hotkey.KeyD,
	"e":              hotkey.KeyE,
	"f":              hotkey.KeyF,
	"g":              hotkey.KeyG,
	"h":              hotkey.KeyH,
	"i":              hotkey.KeyI,
	"j":              hotkey.KeyJ,
	"k":              hotkey.KeyK,
	"l":              hotkey.KeyL,
	"m":              hotkey.KeyM,
	"n":              hotkey.KeyN,
	"o":              hotkey.KeyO,
	"p":              hotkey.KeyP,
	"q":              hotkey.KeyQ,
	"r":              hotkey.KeyR,
	"s":              hotkey.KeyS,
	"t":              hotkey.KeyT,
	"u":              hotkey.KeyU,
	"v":              hotkey.KeyV,
	"w":              hotkey.KeyW,
	"x":              hotkey.KeyX,
	"y":              hotkey.KeyY,
	"z":              hotkey.KeyZ,
	"f1":             hotkey.KeyF1,
	"f2":             hotkey.KeyF2,
	"f3":             hotkey.KeyF3,
	"f4":             hotkey.KeyF4,
	"f5":             hotkey.KeyF5,
	"f6":             hotkey.KeyF6,
	"f7":             hotkey.KeyF7,
	"f8":             hotkey.KeyF8,
	"f9":             hotkey.KeyF9,
	"f10":            hotkey.KeyF10,
	"f11":            hotkey.KeyF11,
	"f12":            hotkey.KeyF12,
}
