//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"pronounce/internal/config"
)

// На macOS Alt подписан как Option, Super как Cmd.
var modifiers = map[config.Modifier]modifier{
	config.ModCtrl:  {hotkey.ModCtrl, "Ctrl"},
	config.ModShift: {hotkey.ModShift, "Shift"},
	config.ModAlt:   {hotkey.ModOption, "Option"},
	config.ModSuper: {hotkey.ModCmd, "Cmd"},
}
