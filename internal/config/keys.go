package config

import (
	"strconv"
	"strings"
)

// Modifier - модификатор горячей клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key - основная клавиша горячей клавиши.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
)

// HotkeyConfig хранит горячую клавишу переключения записи.
type HotkeyConfig struct {
	Modifiers []Modifier `mapstructure:"modifiers" validate:"dive,oneof=ctrl shift alt super"`
	Key       Key        `mapstructure:"key" validate:"required,hotkey_key"`
}

// String возвращает запись вида "ctrl+shift+r".
func (h HotkeyConfig) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		parts = append(parts, string(m))
	}
	parts = append(parts, string(h.Key))
	return strings.Join(parts, "+")
}

// AvailableModifiers возвращает список доступных модификаторов.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}

// AvailableKeys возвращает список доступных клавиш: space, return, tab,
// буквы a-z и f1-f12.
func AvailableKeys() []Key {
	keys := []Key{KeySpace, KeyReturn, KeyTab}
	for c := 'a'; c <= 'z'; c++ {
		keys = append(keys, Key(string(c)))
	}
	for i := 1; i <= 12; i++ {
		keys = append(keys, Key("f"+strconv.Itoa(i)))
	}
	return keys
}

func validKey(k Key) bool {
	for _, known := range AvailableKeys() {
		if known == k {
			return true
		}
	}
	return false
}
