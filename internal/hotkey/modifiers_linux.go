//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"pronounce/internal/config"
)

// X11: Alt = Mod1, Super = Mod4.
var modifiers = map[config.Modifier]modifier{
	config.ModCtrl:  {hotkey.ModCtrl, "Ctrl"},
	config.ModShift: {hotkey.ModShift, "Shift"},
	config.ModAlt:   {hotkey.Mod1, "Alt"},
	config.ModSuper: {hotkey.Mod4, "Super"},
}
