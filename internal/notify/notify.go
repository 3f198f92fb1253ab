// Package notify предоставляет системные уведомления.
package notify

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"

	"pronounce/internal/i18n"
)

const appName = "Pronounce"

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled atomic.Bool
	// send заменяется в тестах
	send func(title, message, icon string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	n := &Notifier{send: func(title, message, icon string) error {
		return beeep.Notify(title, message, icon)
	}}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// Toast показывает короткое уведомление с заголовком и описанием.
func (n *Notifier) Toast(title, description string) {
	n.notify(title, description)
}

// Recording показывает уведомление о начале записи.
func (n *Notifier) Recording() {
	n.notify(i18n.T("notify_recording"), i18n.T("notify_recording_hint"))
}

// Recorded показывает уведомление об окончании записи.
func (n *Notifier) Recorded(seconds int) {
	n.notify(i18n.T("notify_recorded"), i18n.Tf("notify_recorded_hint", seconds))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled.Load() {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = n.send(appName+": "+title, message, "")
	} else {
		_ = n.send(appName, message, "")
	}
}
