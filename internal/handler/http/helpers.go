package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
)

// authorize consults the access policy and writes the refusal when the
// request may not proceed.
func authorize(w http.ResponseWriter, r *http.Request, resource access.Resource, action access.Action, isSelf bool) (access.Subject, bool) {
	subject := middleware.Subject(r)
	if err := access.Authorize(subject, resource, action, isSelf); err != nil {
		response.HandleError(w, err)
		return subject, false
	}
	return subject, true
}

// viewAction picks the own or others variant of a view for target.
func viewAction(subject access.Subject, target string) (access.Action, bool) {
	if subject.EmployeeID == target {
		return access.ActionViewOwn, true
	}
	return access.ActionViewOthers, false
}

// decodeOptional decodes a JSON body into dst; an empty body leaves dst as is.
func decodeOptional(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
