package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

const avatarFormField = "avatar"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AccountService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user.Public()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	session, err := h.services.AccountService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", session.User.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token: session.Token,
		User:  session.User.Public(),
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AccountService.Logout(r.Context(), user.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user.Public()}, http.StatusOK)
}

func (h *Handler) updateSubscription(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SubscriptionRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.AccountService.ChangeSubscription(r.Context(), user.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: updated.Public()}, http.StatusOK)
}

// updateAvatar accepts a multipart body with the image in the "avatar" field.
// A missing field is passed on as a nil upload so the service reports it.
func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if h.maxUploadSize > 0 {
		if r.ContentLength > h.maxUploadSize {
			writeError(w, r, fmt.Errorf("%w: limit %d bytes", ErrUploadSizeExceeded, h.maxUploadSize))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err = r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, fmt.Errorf("%w: limit %d bytes", ErrUploadSizeExceeded, maxBytesErr.Limit))
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidUpload, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	var upload *models.AvatarUpload
	file, header, err := r.FormFile(avatarFormField)
	switch {
	case err == nil:
		defer file.Close()
		upload = &models.AvatarUpload{Filename: header.Filename, Content: file}
	case !errors.Is(err, http.ErrMissingFile):
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidUpload, err))
		return
	}

	avatarURL, err := h.services.AccountService.ReplaceAvatar(r.Context(), user.UserID, upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AvatarResponse{AvatarURL: avatarURL}, http.StatusOK)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "verificationToken")

	if err := h.services.AccountService.VerifyByToken(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	writeText(w, app.MsgVerificationPassed, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.AccountService.ResendVerification(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeText(w, app.MsgVerificationSent, http.StatusOK)
}

func writeText(w http.ResponseWriter, text string, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(text))
}
