package app

import "github.com/jafar554/satr-panel/internal/notify"

// Notifier is the minimal surface services need to emit user-facing toasts.
type Notifier interface {
	Notify(message string, level notify.Level) notify.Toast
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, notify.Level) notify.Toast {
	return notify.Toast{}
}
