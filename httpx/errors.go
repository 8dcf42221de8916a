package httpx

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/pkg/errors"

	"github.com/formfeed/formfeed/log"
	"github.com/formfeed/formfeed/model"
)

// ErrorBody is the JSON shape of every failure: a stable machine-readable
// kind plus a human-readable message.
type ErrorBody struct {
	Error   model.ErrorKind `json:"error"`
	Message string          `json:"message"`
	Fields  []string        `json:"fields,omitempty"`
	Reason  string          `json:"reason,omitempty"`
}

// Error maps a domain error to an HTTP response. Anything that is not a
// model.Error is treated as an internal failure: logged with the code, masked
// in the body.
func Error(w http.ResponseWriter, r *http.Request, code string, err error) {
	var domErr *model.Error
	if !errors.As(err, &domErr) {
		log.Errorf("%s: %s", code, err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorBody{
			Error:   model.KindInternal,
			Message: http.StatusText(http.StatusInternalServerError),
		})
		return
	}

	log.Debugf("%s: %s", code, domErr)
	render.Status(r, statusOf(domErr.Kind))
	render.JSON(w, r, ErrorBody{
		Error:   domErr.Kind,
		Message: domErr.Message,
		Fields:  domErr.Fields,
		Reason:  domErr.Reason,
	})
}

// Unauthorized sends a 401 with a generic message, for login failures.
func Unauthorized(w http.ResponseWriter, r *http.Request, code, msg string) {
	log.Debug(code)
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, ErrorBody{Error: model.KindForbidden, Message: msg})
}

// BadRequest rejects an unparsable request body.
func BadRequest(w http.ResponseWriter, r *http.Request, code string) {
	Error(w, r, code, model.Validation("could not parse request body"))
}

func statusOf(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
