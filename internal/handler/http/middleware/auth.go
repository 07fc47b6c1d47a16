package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired turns a verified access token into a user.Identity on the
// request context. It must run after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, user.ErrUnauthenticated)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			identity, err := jwt.IdentityFromClaims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			httplog.SetAttrs(r.Context(), slog.String("employee_id", identity.EmployeeID), slog.String("role", string(identity.Role)))
			next.ServeHTTP(w, r.WithContext(user.WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
