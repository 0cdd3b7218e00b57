package middleware

import (
	"net/http"
	"time"

	"watchgate/pkg/requestcontext"
)

// RequestTime pins "now" at the start of the request so every timestamp
// recorded during one screening run agrees.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
