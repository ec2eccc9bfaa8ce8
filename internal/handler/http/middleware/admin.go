package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/auth"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/user"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly lets admin and HR through.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		u := user.User{Role: user.Role(role)}
		if !u.IsAdmin() {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
