package httpx

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// RecoveryMiddleware is the top-level error boundary. A panic anywhere
// below it becomes a generic 500 without leaking internal detail.
func RecoveryMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					panicRecoveries.Inc()
					log.Error("panic recovered",
						zap.String("request_id", RequestIDFrom(r)),
						zap.Any("error", err),
						zap.String("stack", string(debug.Stack())),
					)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						Error(w, http.StatusInternalServerError, "internal server error")
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
