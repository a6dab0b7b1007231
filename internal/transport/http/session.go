package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jafar554/satr-panel/internal/domain"
)

// SessionManager is the minimal interface needed by session endpoints.
type SessionManager interface {
	Admin() bool
	Login(ctx context.Context, secret string) error
	Logout(ctx context.Context) error
}

type loginRequest struct {
	Password string `json:"password"`
}

type sessionResponse struct {
	Admin bool `json:"admin"`
}

// HandleSession serves the current role and the login/logout transitions.
func HandleSession(svc SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch strings.Trim(r.URL.Path, "/") {
		case "session":
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			writeJSON(w, http.StatusOK, sessionResponse{Admin: svc.Admin()})
		case "session/login":
			if r.Method != http.MethodPost {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			var req loginRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			if err := svc.Login(r.Context(), req.Password); err != nil {
				switch err {
				case domain.ErrWrongPassword:
					writeError(w, http.StatusUnauthorized, codeWrongPassword, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			writeJSON(w, http.StatusOK, sessionResponse{Admin: true})
		case "session/logout":
			if r.Method != http.MethodPost {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			if err := svc.Logout(r.Context()); err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			writeJSON(w, http.StatusOK, sessionResponse{Admin: false})
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}
