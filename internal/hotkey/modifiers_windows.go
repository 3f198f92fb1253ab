//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"pronounce/internal/config"
)

var modifiers = map[config.Modifier]modifier{
	config.ModCtrl:  {hotkey.ModCtrl, "Ctrl"},
	config.ModShift: {hotkey.ModShift, "Shift"},
	config.ModAlt:   {hotkey.ModAlt, "Alt"},
	config.ModSuper: {hotkey.ModWin, "Win"},
}
