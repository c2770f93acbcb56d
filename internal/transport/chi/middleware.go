package chi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veritia/trustsearch/internal/logger"
)

type requestIDKey struct{}

// requestID extracts the per-request identifier, generating one if the
// middleware did not run (direct handler tests).
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return uuid.NewString()
}

// withRequestID assigns every request a UUID and a request-scoped logger.
// The id ends up in the error envelope's requestId field.
func withRequestID(base *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			ctx = logger.ContextWithLogger(ctx, base.With(zap.String("request_id", id)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// recoverer converts panics into the generic internal-error envelope.
// Internal detail never reaches the caller; it goes to the log only.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error("panic serving request",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
				)
				writeError(w, r, http.StatusInternalServerError,
					codeInternalError, "An internal server error occurred")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
