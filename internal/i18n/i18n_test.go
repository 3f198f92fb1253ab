package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguagesShareKeys(t *testing.T) {
	for key := range translations[EN] {
		_, ok := translations[RU][key]
		assert.True(t, ok, "ru is missing %q", key)
	}
	for key := range translations[RU] {
		_, ok := translations[EN][key]
		assert.True(t, ok, "en is missing %q", key)
	}
}

func TestT(t *testing.T) {
	t.Cleanup(func() { SetLanguage(EN) })

	SetLanguage(EN)
	assert.Equal(t, "Loading waveform...", T("waveform_loading"))
	assert.Equal(t, "no_such_key", T("no_such_key"))

	SetLanguage(RU)
	assert.Equal(t, RU, GetLanguage())
	assert.Equal(t, "Ваша запись", T("recorded_title"))

	SetLanguage("de")
	assert.Equal(t, RU, GetLanguage())
}

func TestTf(t *testing.T) {
	t.Cleanup(func() { SetLanguage(EN) })
	SetLanguage(EN)

	assert.Equal(t, "Recording... 3s", Tf("recording_status", 3))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName(EN))
	assert.Equal(t, "Русский", LanguageName(RU))
	assert.Equal(t, "de", LanguageName("de"))
}
