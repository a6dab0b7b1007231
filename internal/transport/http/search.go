package http

import (
	"context"
	"net/http"

	"github.com/jafar554/satr-panel/internal/app"
	"github.com/jafar554/satr-panel/internal/render"
)

// Searcher is the minimal interface needed by the search endpoint.
type Searcher interface {
	Search(ctx context.Context, query string) (app.SearchOutcome, error)
}

// HandleSearch serves the zone search results view.
func HandleSearch(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		out, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, render.SearchResults(out))
	}
}
