package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog пишет одну строку на запрос. 5xx логируются как ошибки.
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusRecorder(w)

			next.ServeHTTP(sw, r)

			format := "HTTP %s %s - status=%d, bytes=%d, duration=%s, request_id=%s"
			args := []interface{}{
				r.Method, r.URL.Path, sw.Status(), sw.bytes, time.Since(start), RequestIDFromContext(r.Context()),
			}
			if sw.Status() >= http.StatusInternalServerError {
				log.Error(format, args...)
				return
			}
			log.Info(format, args...)
		})
	}
}
