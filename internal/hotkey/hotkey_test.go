package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronounce/internal/config"
)

func TestEveryConfigKeyResolves(t *testing.T) {
	for _, k := range config.AvailableKeys() {
		_, _, err := resolve(config.HotkeyConfig{
			Modifiers: config.AvailableModifiers(),
			Key:       k,
		})
		assert.NoError(t, err, k)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, _, err := resolve(config.HotkeyConfig{Key: "f13"})
	require.ErrorIs(t, err, ErrUnknownKey)

	_, _, err = resolve(config.HotkeyConfig{Modifiers: []config.Modifier{"hyper"}, Key: "r"})
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestResolveKeepsModifierOrder(t *testing.T) {
	mods, _, err := resolve(config.HotkeyConfig{
		Modifiers: []config.Modifier{config.ModShift, config.ModCtrl},
		Key:       "r",
	})
	require.NoError(t, err)
	require.Len(t, mods, 2)
	assert.Equal(t, modifiers[config.ModShift].code, mods[0])
	assert.Equal(t, modifiers[config.ModCtrl].code, mods[1])
}

func TestModifierLabel(t *testing.T) {
	for _, m := range config.AvailableModifiers() {
		assert.NotEmpty(t, ModifierLabel(m))
	}
	assert.Equal(t, "Ctrl", ModifierLabel(config.ModCtrl))
	assert.Equal(t, "hyper", ModifierLabel("hyper"))
}
