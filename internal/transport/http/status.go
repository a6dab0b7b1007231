package http

import (
	"net/http"

	"github.com/jafar554/satr-panel/internal/render"
)

// ConnectivityReader exposes the last observed connectivity state.
type ConnectivityReader interface {
	Online() bool
}

type statusResponse struct {
	Online bool   `json:"online"`
	Label  string `json:"label"`
}

// HandleStatus serves the online/offline indicator.
func HandleStatus(src ConnectivityReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		online := src.Online()
		writeJSON(w, http.StatusOK, statusResponse{Online: online, Label: render.StatusLabel(online)})
	}
}
