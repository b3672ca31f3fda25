package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/luisherrera/billpoint-backend/pkg/logger"
)

type contextKey string

const ctxUserID contextKey = "user_id"

const userIDHeader = "X-User-Id"

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// Identity resolves the acting user from the X-User-Id header, falling back
// to the configured placeholder id. There is no authentication layer, the
// header is trusted as-is.
func Identity(defaultUserID string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(userIDHeader))
			if userID == "" {
				userID = defaultUserID
			}

			ctx := WithUserID(r.Context(), userID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
