package web

import (
	"log/slog"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// withRequestLogging tags each request with an id, echoes it back in the
// response headers and logs method, path and outcome once the handler returns.
func withRequestLogging(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rc := parseRequestContext(r)
		w.Header().Set(requestIDHeader, rc.ID)

		rec := &statusRecorder{ResponseWriter: w}
		r = r.WithContext(withRequestContext(r.Context(), rc))
		logger.DebugContext(r.Context(), "started processing request",
			"request_id", rc.ID,
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		logger.DebugContext(r.Context(), "finished processing request",
			"request_id", rc.ID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"latency", time.Since(start),
		)
	})
}
