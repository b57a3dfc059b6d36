package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/MKhiriev/go-contacts/models"
)

// AccountValidator checks the account request bodies.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value)
	case *models.SignupRequest:
		return v.validateSignup(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.EmailRequest:
		return v.validateEmail(value)
	case *models.EmailRequest:
		return v.validateEmail(*value)

	case models.SubscriptionRequest:
		return v.validateSubscription(value)
	case *models.SubscriptionRequest:
		return v.validateSubscription(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateSignup allows an empty subscription; the service then assigns
// the starter tier.
func (v *AccountValidator) validateSignup(r models.SignupRequest) error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.Subscription, subscriptionRule()),
	))
}

func (v *AccountValidator) validateLogin(r models.LoginRequest) error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, passwordRules...),
	))
}

func (v *AccountValidator) validateEmail(r models.EmailRequest) error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
	))
}

func (v *AccountValidator) validateSubscription(r models.SubscriptionRequest) error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Subscription, validation.Required, subscriptionRule()),
	))
}
