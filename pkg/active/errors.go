package active

import (
	"errors"
	"fmt"
	"net/http"
)

/*
StatusError is returned whenever a server answers with a status code
outside the 2xx range. The original status and body are kept so callers
can inspect them:

    post, err := posts.Find(7)
    var e *active.StatusError
    if errors.As(err, &e) && e.StatusCode == 404 {
        fmt.Println("no such post")
    }
*/
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a StatusError for a 404 response.
func IsNotFound(err error) bool {
	var e *StatusError
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

func parseStatusError(statusCode int, body []byte) *StatusError {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return &StatusError{StatusCode: statusCode, Body: body}
}

// MissingFieldError means a path template referenced a field the record
// does not have.
type MissingFieldError struct {
	Template string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf(
		"record has no field %q, required by template %q", e.Field, e.Template,
	)
}

// ResolutionError means an association names a target that no declared
// resource is registered under at the time of access.
type ResolutionError struct {
	Target string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf(
		"cannot resolve %q: no resource registered under that name", e.Target,
	)
}

// ShapeError means a relationship declaration is not one of the accepted
// shapes. It surfaces from New, at declaration time.
type ShapeError struct {
	Kind  string
	Value any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf(
		"invalid %s declaration %#v: "+
			"must be a string, a *Resource, a []string or a map[string]Options",
		e.Kind, e.Value,
	)
}
