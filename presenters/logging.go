package presenters

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WrapperLogging logs one line per request with its status and duration.
func WrapperLogging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			logs := logger.With(
				zap.Field{
					Key:    "request_id",
					Type:   zapcore.StringType,
					String: middleware.GetReqID(r.Context()),
				},
				zap.Field{
					Key:    "method",
					Type:   zapcore.StringType,
					String: r.Method,
				},
				zap.Field{
					Key:    "path",
					Type:   zapcore.StringType,
					String: r.URL.Path,
				},
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
			)
			if ww.Status() >= http.StatusInternalServerError {
				logs.Error("response-error")
				return
			}
			logs.Info("response-success")
		})
	}
}
