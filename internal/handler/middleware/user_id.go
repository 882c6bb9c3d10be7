package middleware

import (
	"context"
	"net/http"

	"github.com/MKhiriev/shareit/internal/app"
	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/utils"
	"github.com/MKhiriev/shareit/internal/validators"
)

// UserIDHeader identifies the caller. It is trusted as is.
const UserIDHeader = "X-Sharer-User-Id"

// RequireUserID rejects requests without a positive X-Sharer-User-Id with 400
// and stores the parsed id under [utils.UserIDCtxKey].
func RequireUserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
			return
		}

		userID, err := validators.ParseUserID(raw)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("func", "middleware.RequireUserID").Send()
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
