package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pronounce/internal/i18n"
)

func TestStateKeys(t *testing.T) {
	tests := []struct {
		state  State
		status string
		record string
	}{
		{StateIdle, "tray_ready", "tray_record"},
		{StateRecording, "tray_recording", "tray_record_stop"},
		{StatePlaying, "tray_playing", "tray_record"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, statusKey(tt.state))
		assert.Equal(t, tt.record, recordKey(tt.state))
	}
}

func TestMenuKeysTranslated(t *testing.T) {
	for _, lang := range i18n.AvailableLanguages() {
		i18n.SetLanguage(lang)
		for _, key := range []string{
			"tray_show", "tray_record", "tray_reference", "tray_language",
			"tray_sentence", "tray_hotkey", "tray_notifications", "tray_quit",
		} {
			assert.NotEqual(t, key, i18n.T(key), lang)
			assert.NotEqual(t, key+"_hint", i18n.T(key+"_hint"), lang)
		}
	}
	i18n.SetLanguage(i18n.EN)
}
