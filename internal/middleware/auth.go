package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/carrent/order-service/internal/auth"
	"github.com/carrent/order-service/internal/entities"
)

type callerKey struct{}

// Auth resolves the caller identity from the request credentials and
// stores it in the context. Requests without a valid token pass through
// unauthenticated, rejecting them is the lifecycle engine's job.
func Auth(logger *slog.Logger, secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := auth.ParseToken(secret, tokenStr)
			if err != nil {
				logger.DebugContext(r.Context(), "rejected token", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), callerKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext returns the authenticated caller, zero value when
// the request carried no usable credentials.
func CallerFromContext(ctx context.Context) entities.Caller {
	caller, ok := ctx.Value(callerKey{}).(entities.Caller)
	if !ok {
		return entities.Caller{}
	}
	return caller
}

// WithCaller is a test helper binding a caller to a context directly.
func WithCaller(ctx context.Context, caller entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}
