package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", c.Language())
	assert.Zero(t, c.Sentence())
	assert.Equal(t, "en", c.UILanguage())
	assert.True(t, c.NotificationsEnabled())
	assert.Equal(t, "ctrl+shift+r", c.Hotkey().String())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "public"), c.AssetRoot())
	assert.Equal(t, WaveformConfig{Height: 64, BarWidth: 3, BarGap: 1, RefreshMS: 16}, c.Waveform())
	assert.Equal(t, 44100, c.Recorder().SampleRate)
	assert.Equal(t, "info", c.Log().Level)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c, err := Load(path)
	require.NoError(t, err)

	c.SetSelection("fr", 4)
	c.SetUILanguage("ru")
	assert.False(t, c.ToggleNotifications())
	require.NoError(t, c.SetHotkey(HotkeyConfig{Modifiers: []Modifier{ModAlt}, Key: "f9"}))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", reloaded.Language())
	assert.Equal(t, 4, reloaded.Sentence())
	assert.Equal(t, "ru", reloaded.UILanguage())
	assert.False(t, reloaded.NotificationsEnabled())
	assert.Equal(t, "alt+f9", reloaded.Hotkey().String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"language": "zh",
		"asset_root": "https://example.com/static",
		"waveform": {"height": 96, "bar_width": 2, "bar_gap": 2, "refresh_ms": 33}
	}`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "zh", c.Language())
	assert.Equal(t, "https://example.com/static", c.AssetRoot())
	assert.Equal(t, 96, c.Waveform().Height)
	assert.Equal(t, 33, int(c.Waveform().RefreshRate().Milliseconds()))
	// untouched keys keep defaults
	assert.Equal(t, 100, c.Playback().BufferMS)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"language":    `{"language": "de"}`,
		"sentence":    `{"sentence": 12}`,
		"bar width":   `{"waveform": {"bar_width": 0}}`,
		"bar gap":     `{"waveform": {"bar_gap": 0}}`,
		"sample rate": `{"recorder": {"sample_rate": 12345}}`,
		"hotkey key":  `{"hotkey": {"key": "escape"}}`,
		"modifier":    `{"hotkey": {"modifiers": ["hyper"], "key": "r"}}`,
		"log level":   `{"log": {"level": "verbose"}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language": `), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PRONOUNCE_LANGUAGE", "es")
	t.Setenv("PRONOUNCE_LOG_LEVEL", "debug")

	c, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, "es", c.Language())
	assert.Equal(t, "debug", c.Log().Level)
}

func TestSetHotkeyValidatesAndNotifies(t *testing.T) {
	c := Defaults(filepath.Join(t.TempDir(), "config.json"))

	var got HotkeyConfig
	c.OnHotkeyChange(func(hk HotkeyConfig) { got = hk })

	assert.Error(t, c.SetHotkey(HotkeyConfig{Key: "pause"}))
	assert.Empty(t, got.Key)

	require.NoError(t, c.SetHotkey(HotkeyConfig{Modifiers: []Modifier{ModCtrl}, Key: KeySpace}))
	assert.Equal(t, "ctrl+space", got.String())
}

func TestAvailableKeys(t *testing.T) {
	keys := AvailableKeys()
	assert.Len(t, keys, 3+26+12)
	assert.Contains(t, keys, Key("f12"))
	assert.Contains(t, keys, Key("q"))
}
