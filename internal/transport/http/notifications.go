package http

import (
	"net/http"

	"github.com/jafar554/satr-panel/internal/notify"
)

// ToastSource exposes the currently visible toasts.
type ToastSource interface {
	Active() []notify.Toast
}

type notificationsResponse struct {
	Toasts []notify.Toast `json:"toasts"`
}

// HandleNotifications serves the active toast stack, oldest first.
func HandleNotifications(src ToastSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		toasts := src.Active()
		if toasts == nil {
			toasts = []notify.Toast{}
		}
		writeJSON(w, http.StatusOK, notificationsResponse{Toasts: toasts})
	}
}
