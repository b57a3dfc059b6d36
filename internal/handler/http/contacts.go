package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	query.OwnerID = user.UserID

	contacts, err := h.services.ContactService.List(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), user.UserID, chi.URLParam(r, "contactID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var fields models.ContactFields
	if err = utils.DecodeJSON(r, &fields); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), user.UserID, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusCreated)
}

// updateContact merges the fields present in the body. PUT keeps its
// partial-merge meaning here.
func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ContactUpdate
	if err = utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	contact, err := h.services.ContactService.Update(r.Context(), user.UserID, chi.URLParam(r, "contactID"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) setFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FavoriteRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	contact, err := h.services.ContactService.SetFavorite(r.Context(), user.UserID, chi.URLParam(r, "contactID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Delete(r.Context(), user.UserID, chi.URLParam(r, "contactID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteContactResponse{
		Message:       app.MsgContactDeleted,
		DeleteContact: contact,
	}, http.StatusOK)
}

// parseListQuery reads page, limit and favorite. Absent page and limit take
// their defaults; range checks are left to the service.
func parseListQuery(r *http.Request) (models.ContactListQuery, error) {
	values := r.URL.Query()
	query := models.ContactListQuery{Page: defaultPage, Limit: defaultLimit}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.ContactListQuery{}, fmt.Errorf("%w: page must be an integer", ErrInvalidQuery)
		}
		query.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.ContactListQuery{}, fmt.Errorf("%w: limit must be an integer", ErrInvalidQuery)
		}
		query.Limit = limit
	}

	if raw := values.Get("favorite"); raw != "" {
		favorite, err := strconv.ParseBool(raw)
		if err != nil {
			return models.ContactListQuery{}, fmt.Errorf("%w: favorite must be true or false", ErrInvalidQuery)
		}
		query.Favorite = &favorite
	}

	return query, nil
}
