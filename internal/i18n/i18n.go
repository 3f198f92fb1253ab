// Package i18n provides internationalization support.
package i18n

import (
	"fmt"
	"sync"
)

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":     "Pronounce",
		"app_title":    "Multilingual Pronunciation Guide",
		"app_subtitle": "Select a language and sentence, listen to the reference, and record your own voice to compare.",
		"app_tooltip":  "Pronounce - pronunciation trainer",

		// Guide
		"guide_title":        "Pronunciation Guide",
		"guide_description":  "Listen to the correct pronunciation, record your voice, and compare them",
		"guide_footer":       "Practice makes perfect! Try all sentences in different languages.",
		"select_language":    "Select a language",
		"select_sentence":    "Select a sentence",
		"reference_title":    "Reference Pronunciation",
		"recorded_title":     "Your Recording",
		"play":               "Play",
		"stop":               "Stop",
		"recording_status":   "Recording... %ds",
		"recording_complete": "Recording complete",
		"ready_to_record":    "Ready to record",
		"start_recording":    "Start Recording",
		"stop_recording":     "Stop Recording",
		"reset":              "Reset",
		"tips_title":         "Pronunciation Tips",
		"tip_listen":         "Listen to the reference multiple times",
		"tip_rhythm":         "Pay attention to the rhythm and intonation",
		"tip_symbols":        "Focus on the phonetic symbols that are challenging for you",
		"tip_practice":       "Practice regularly for best results",
		"phonetic_hint":      "Click a phonetic symbol to see how it sounds",
		"phonetic_examples":  "Examples:",

		// Waveform
		"waveform_loading":     "Loading waveform...",
		"waveform_error":       "Failed to process audio",
		"recording":            "REC",
		"playback_error_title": "Error playing audio",
		"playback_error_body":  "Sorry, but it seems something is wrong.",

		// Tray menu
		"tray_ready":              "Ready",
		"tray_recording":          "Recording...",
		"tray_playing":            "Playing...",
		"tray_show":               "Show window",
		"tray_show_hint":          "Open the pronunciation guide",
		"tray_record":             "Start recording",
		"tray_record_stop":        "Stop recording",
		"tray_record_hint":        "Record your pronunciation",
		"tray_reference":          "Play reference",
		"tray_reference_hint":     "Listen to the reference pronunciation",
		"tray_language":           "Language...",
		"tray_language_hint":      "Choose the practice language",
		"tray_sentence":           "Sentence...",
		"tray_sentence_hint":      "Choose the practice sentence",
		"tray_hotkey":             "Hotkey...",
		"tray_hotkey_hint":        "Change the recording hotkey",
		"tray_ui_language":        "Interface language",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Notifications
		"notify_recording":      "Recording...",
		"notify_recording_hint": "Speak into the microphone",
		"notify_recorded":       "Recording complete",
		"notify_recorded_hint":  "%d s recorded, compare it with the reference",
		"notify_error":          "Error",

		// Dialogs
		"dialog_language_title": "Practice language",
		"dialog_language_text":  "Select a language:",
		"dialog_sentence_title": "Practice sentence",
		"dialog_sentence_text":  "Select a sentence:",
		"dialog_hotkey_title":   "Recording hotkey",
		"dialog_hotkey_mods":    "Select modifiers:",
		"dialog_hotkey_key":     "Select a key:",

		// Errors
		"error_recording":       "Recording error",
		"error_microphone":      "Could not access the microphone",
		"error_no_modifier":     "Select at least one modifier",
		"error_hotkey_register": "Could not register hotkey",
	},

	RU: {
		// App
		"app_name":     "Pronounce",
		"app_title":    "Многоязычный тренажёр произношения",
		"app_subtitle": "Выберите язык и фразу, прослушайте образец и запишите свой голос для сравнения.",
		"app_tooltip":  "Pronounce - тренажёр произношения",

		// Guide
		"guide_title":        "Тренажёр произношения",
		"guide_description":  "Прослушайте правильное произношение, запишите свой голос и сравните",
		"guide_footer":       "Повторение - мать учения! Попробуйте все фразы на разных языках.",
		"select_language":    "Выберите язык",
		"select_sentence":    "Выберите фразу",
		"reference_title":    "Образец произношения",
		"recorded_title":     "Ваша запись",
		"play":               "Играть",
		"stop":               "Стоп",
		"recording_status":   "Запись... %dс",
		"recording_complete": "Запись завершена",
		"ready_to_record":    "Готов к записи",
		"start_recording":    "Начать запись",
		"stop_recording":     "Остановить запись",
		"reset":              "Сбросить",
		"tips_title":         "Советы по произношению",
		"tip_listen":         "Прослушайте образец несколько раз",
		"tip_rhythm":         "Обращайте внимание на ритм и интонацию",
		"tip_symbols":        "Сосредоточьтесь на трудных для вас фонетических символах",
		"tip_practice":       "Занимайтесь регулярно для лучшего результата",
		"phonetic_hint":      "Нажмите на символ, чтобы узнать, как он звучит",
		"phonetic_examples":  "Примеры:",

		// Waveform
		"waveform_loading":     "Загрузка волны...",
		"waveform_error":       "Не удалось обработать аудио",
		"recording":            "ЗАПИСЬ",
		"playback_error_title": "Ошибка воспроизведения",
		"playback_error_body":  "Похоже, с этим аудио что-то не так.",

		// Tray menu
		"tray_ready":              "Готов к работе",
		"tray_recording":          "Запись...",
		"tray_playing":            "Воспроизведение...",
		"tray_show":               "Показать окно",
		"tray_show_hint":          "Открыть тренажёр",
		"tray_record":             "Начать запись",
		"tray_record_stop":        "Остановить запись",
		"tray_record_hint":        "Записать своё произношение",
		"tray_reference":          "Прослушать образец",
		"tray_reference_hint":     "Воспроизвести образец произношения",
		"tray_language":           "Язык...",
		"tray_language_hint":      "Выбор языка практики",
		"tray_sentence":           "Фраза...",
		"tray_sentence_hint":      "Выбор фразы для практики",
		"tray_hotkey":             "Горячая клавиша...",
		"tray_hotkey_hint":        "Изменить клавишу записи",
		"tray_ui_language":        "Язык интерфейса",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Notifications
		"notify_recording":      "Запись...",
		"notify_recording_hint": "Говорите в микрофон",
		"notify_recorded":       "Запись завершена",
		"notify_recorded_hint":  "Записано %d с, сравните с образцом",
		"notify_error":          "Ошибка",

		// Dialogs
		"dialog_language_title": "Язык практики",
		"dialog_language_text":  "Выберите язык:",
		"dialog_sentence_title": "Фраза для практики",
		"dialog_sentence_text":  "Выберите фразу:",
		"dialog_hotkey_title":   "Горячая клавиша записи",
		"dialog_hotkey_mods":    "Выберите модификаторы:",
		"dialog_hotkey_key":     "Выберите клавишу:",

		// Errors
		"error_recording":       "Ошибка записи",
		"error_microphone":      "Нет доступа к микрофону",
		"error_no_modifier":     "Необходимо выбрать хотя бы один модификатор",
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// Tf formats the translation for the given key with args.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; ok {
		current = lang
	}
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, RU}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
