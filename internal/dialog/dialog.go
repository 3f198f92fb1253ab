// Package dialog предоставляет GUI диалоги выбора и сообщений.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/zenity"

	"pronounce/internal/catalog"
	"pronounce/internal/config"
	"pronounce/internal/hotkey"
	"pronounce/internal/i18n"
)

// ErrCanceled возвращается, когда пользователь закрыл диалог.
var ErrCanceled = zenity.ErrCanceled

// ErrNoModifier возвращается, если не выбран ни один модификатор.
var ErrNoModifier = errors.New("no modifier selected")

// SelectLanguage открывает список языков практики и возвращает код выбранного.
func SelectLanguage(current string) (string, error) {
	options, codes := languageOptions()

	var def []string
	for i, c := range codes {
		if c == current {
			def = append(def, options[i])
		}
	}

	selected, err := zenity.List(
		i18n.T("dialog_language_text"),
		options,
		zenity.Title(i18n.T("dialog_language_title")),
		zenity.DefaultItems(def...),
	)
	if err != nil {
		return current, err
	}
	i := indexOf(options, selected)
	if i < 0 {
		return current, ErrCanceled
	}
	return codes[i], nil
}

// SelectSentence открывает список фраз и возвращает индекс выбранной.
func SelectSentence(current int) (int, error) {
	options := sentenceOptions()

	var def []string
	if current >= 0 && current < len(options) {
		def = append(def, options[current])
	}

	selected, err := zenity.List(
		i18n.T("dialog_sentence_text"),
		options,
		zenity.Title(i18n.T("dialog_sentence_title")),
		zenity.DefaultItems(def...),
	)
	if err != nil {
		return current, err
	}
	i := indexOf(options, selected)
	if i < 0 {
		return current, ErrCanceled
	}
	return i, nil
}

// SelectHotkey открывает диалог выбора горячей клавиши записи.
func SelectHotkey(current config.HotkeyConfig) (config.HotkeyConfig, error) {
	// Шаг 1: модификаторы
	modifiers := config.AvailableModifiers()
	modOptions := make([]string, len(modifiers))
	for i, m := range modifiers {
		modOptions[i] = modifierLabel(m)
	}
	currentMods := make([]string, 0, len(current.Modifiers))
	for _, m := range current.Modifiers {
		currentMods = append(currentMods, modifierLabel(m))
	}

	selectedMods, err := zenity.ListMultiple(
		i18n.T("dialog_hotkey_mods"),
		modOptions,
		zenity.Title(i18n.T("dialog_hotkey_title")),
		zenity.DefaultItems(currentMods...),
	)
	if err != nil {
		return current, err
	}
	if len(selectedMods) == 0 {
		return current, ErrNoModifier
	}
	newMods := make([]config.Modifier, 0, len(selectedMods))
	for _, s := range selectedMods {
		if i := indexOf(modOptions, s); i >= 0 {
			newMods = append(newMods, modifiers[i])
		}
	}

	// Шаг 2: клавиша
	keys := config.AvailableKeys()
	keyOptions := make([]string, len(keys))
	for i, k := range keys {
		keyOptions[i] = keyLabel(k)
	}

	selectedKey, err := zenity.List(
		i18n.T("dialog_hotkey_key"),
		keyOptions,
		zenity.Title(i18n.T("dialog_hotkey_title")),
		zenity.DefaultItems(keyLabel(current.Key)),
	)
	if err != nil {
		return current, err
	}
	i := indexOf(keyOptions, selectedKey)
	if i < 0 {
		return current, ErrCanceled
	}

	return config.HotkeyConfig{
		Modifiers: newMods,
		Key:       keys[i],
	}, nil
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	_ = zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	_ = zenity.Error(message, zenity.Title(title))
}

// languageOptions возвращает подписи языков и их коды в одном порядке.
func languageOptions() ([]string, []string) {
	langs := catalog.Languages()
	options := make([]string, len(langs))
	codes := make([]string, len(langs))
	for i, l := range langs {
		options[i] = l.Name
		codes[i] = l.Code
	}
	return options, codes
}

// sentenceOptions нумерует фразы, чтобы усечённые подписи оставались уникальными.
func sentenceOptions() []string {
	sentences := catalog.Sentences()
	options := make([]string, len(sentences))
	for i, s := range sentences {
		options[i] = fmt.Sprintf("%d. %s", i+1, catalog.SentenceLabel(s))
	}
	return options
}

func modifierLabel(m config.Modifier) string {
	return hotkey.ModifierLabel(m)
}

func keyLabel(k config.Key) string {
	switch k {
	case config.KeySpace:
		return "Space"
	case config.KeyReturn:
		return "Return"
	case config.KeyTab:
		return "Tab"
	default:
		return strings.ToUpper(string(k))
	}
}

func indexOf(options []string, s string) int {
	for i, o := range options {
		if o == s {
			return i
		}
	}
	return -1
}
