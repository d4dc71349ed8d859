package middleware

import (
	"net/http"

	"zentube/internal/service"
	"zentube/pkg/errors"
	"zentube/pkg/logger"
)

// RequireCredential rejects requests with a configuration error while no API
// key is configured, before any catalog call is made.
func RequireCredential(credentials service.CredentialStore, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !credentials.IsConfigured(r.Context()) {
				WriteError(w, r, errors.NewConfigurationError("YouTube API key is not configured"), logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
