package access

import (
	"errors"
	"fmt"
)

var ErrAccessDenied = errors.New("access denied")

// DeniedError carries the decision that refused a request so the transport
// can redirect accordingly.
type DeniedError struct {
	Resource Resource
	Action   Action
	Field    Field
	Decision Decision
}

func (e *DeniedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("access denied: %s.%s field %s: %s", e.Resource, e.Action, e.Field, e.Decision.Reason)
	}
	return fmt.Sprintf("access denied: %s.%s: %s", e.Resource, e.Action, e.Decision.Reason)
}

func (e *DeniedError) Unwrap() error {
	return ErrAccessDenied
}

// Unauthenticated reports whether the denial was for a missing session.
func (e *DeniedError) Unauthenticated() bool {
	return e.Decision.RedirectTo == LoginPath
}
