package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. An empty
// message means the error text itself is sent.
var errorResponses = []errorResponse{
	{validators.ErrInvalidInput, http.StatusBadRequest, ""},
	{ErrInvalidJSON, http.StatusBadRequest, ""},
	{ErrInvalidQuery, http.StatusBadRequest, ""},
	{ErrInvalidUpload, http.StatusBadRequest, ""},
	{ErrUploadSizeExceeded, http.StatusBadRequest, app.MsgAvatarTooLarge},
	{service.ErrNoAvatarFileProvided, http.StatusBadRequest, app.MsgAvatarRequired},
	{service.ErrAlreadyVerified, http.StatusBadRequest, app.MsgAlreadyVerified},
	{store.ErrUnsupportedImage, http.StatusBadRequest, app.MsgUnsupportedImage},

	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgWrongCredentials},
	{service.ErrEmailNotVerified, http.StatusUnauthorized, app.MsgEmailNotVerified},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgNotAuthorized},
	{service.ErrNotAuthorized, http.StatusUnauthorized, app.MsgNotAuthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNotAuthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNotAuthorized},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgNotAuthorized},

	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrVerificationNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrContactNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrContactNotFound, http.StatusNotFound, app.MsgNotFound},

	{service.ErrEmailInUse, http.StatusConflict, app.MsgEmailInUse},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailInUse},
}

// statusFromError returns the HTTP status and the client message for err.
// Unknown errors are 500 with the generic status text.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message != "" {
			return resp.status, resp.message
		}
		return resp.status, detailOf(err, resp.target)
	}
	return http.StatusInternalServerError, app.MsgInternalError
}

// detailOf drops the wrapping prefixes up to and including target, so
// "error during signup validation: invalid input: email: cannot be blank."
// becomes "email: cannot be blank.".
func detailOf(err, target error) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, target.Error()+": "); ok && detail != "" {
		return detail
	}
	return target.Error()
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Message: app.MsgNotFound}, http.StatusNotFound)
}
