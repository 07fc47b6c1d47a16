package middleware

import (
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
)

// Subject returns the policy subject for the request. Requests without an
// identity yield the unauthenticated subject.
func Subject(r *http.Request) access.Subject {
	identity, ok := user.IdentityFromContext(r.Context())
	if !ok {
		return access.Subject{}
	}
	return access.SubjectFrom(identity)
}
