package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/auth"
	"github.com/cmlabs-hris/presence-bot-go/internal/handler/http/response"
)

// AdminOnly lets through only the single configured administrator.
func AdminOnly(adminID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if userID != adminID {
				response.HandleError(w, auth.ErrAdminPrivilegeRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
