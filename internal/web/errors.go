package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"git.sr.ht/~jakintosh/todo-server/internal/store"
)

// internalErrorMessage is the only failure text a client ever sees.
const internalErrorMessage = "Something went wrong"

type errorBody struct {
	Error string `json:"error"`
}

// writeError is the single place handler failures become responses. Whatever
// err is, the client gets a 500 with a fixed body and the detail goes to the
// log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	attrs := []any{
		"request_id", requestContextFrom(r.Context()).ID,
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	}
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		attrs = append(attrs, "op", storeErr.Op, "kind", storeErr.Kind.String())
	}
	s.logger.ErrorContext(r.Context(), "request failed", attrs...)

	writeJSON(w, http.StatusInternalServerError, errorBody{Error: internalErrorMessage})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encoding response", "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"` + internalErrorMessage + `"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
