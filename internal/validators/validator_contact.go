// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/MKhiriev/go-contacts/models"
)

// ContactValidator checks contact request bodies and list queries.
type ContactValidator struct {
}

func NewContactValidator() Validator {
	return &ContactValidator{}
}

func (v *ContactValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.ContactFields:
		return v.validateFields(value)
	case *models.ContactFields:
		return v.validateFields(*value)

	case models.ContactUpdate:
		return v.validateUpdate(value)
	case *models.ContactUpdate:
		return v.validateUpdate(*value)

	case models.FavoriteRequest:
		return v.validateFavorite(value)
	case *models.FavoriteRequest:
		return v.validateFavorite(*value)

	case models.ContactListQuery:
		return v.validateListQuery(value)
	case *models.ContactListQuery:
		return v.validateListQuery(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ContactValidator) validateFields(f models.ContactFields) error {
	return invalid(validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, emailRules...),
		validation.Field(&f.Phone, validation.Required),
	))
}

// validateUpdate requires at least one field; present fields follow the
// same rules as on create.
func (v *ContactValidator) validateUpdate(u models.ContactUpdate) error {
	if u.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoFieldsToUpdate)
	}

	return invalid(validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.NilOrNotEmpty),
		validation.Field(&u.Email, append([]validation.Rule{validation.NilOrNotEmpty}, emailRules[1:]...)...),
		validation.Field(&u.Phone, validation.NilOrNotEmpty),
	))
}

func (v *ContactValidator) validateFavorite(r models.FavoriteRequest) error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Favorite, validation.NotNil),
	))
}

func (v *ContactValidator) validateListQuery(q models.ContactListQuery) error {
	return invalid(validation.ValidateStruct(&q,
		validation.Field(&q.OwnerID, validation.Required),
		validation.Field(&q.Page, validation.Required, validation.Min(1), validation.Max(MaxListPage)),
		validation.Field(&q.Limit, validation.Required, validation.Min(1), validation.Max(MaxListLimit)),
	))
}
