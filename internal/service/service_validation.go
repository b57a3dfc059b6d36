package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// AccountValidationService checks request contracts before delegating to
// the wrapped AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func (v *AccountValidationService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during signup validation: %w", err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AccountValidationService) VerifyByToken(ctx context.Context, token string) error {
	return v.inner.VerifyByToken(ctx, token)
}

func (v *AccountValidationService) ResendVerification(ctx context.Context, req models.EmailRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during email validation: %w", err)
	}
	return v.inner.ResendVerification(ctx, req)
}

func (v *AccountValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("error during login validation: %w", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AccountValidationService) Logout(ctx context.Context, userID string) error {
	return v.inner.Logout(ctx, userID)
}

func (v *AccountValidationService) ChangeSubscription(ctx context.Context, userID string, req models.SubscriptionRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during subscription validation: %w", err)
	}
	return v.inner.ChangeSubscription(ctx, userID, req)
}

func (v *AccountValidationService) ReplaceAvatar(ctx context.Context, userID string, upload *models.AvatarUpload) (string, error) {
	return v.inner.ReplaceAvatar(ctx, userID, upload)
}

func (v *AccountValidationService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

// ContactValidationService checks request contracts before delegating to
// the wrapped ContactService.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}

func (v *ContactValidationService) List(ctx context.Context, query models.ContactListQuery) ([]models.Contact, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("error during list query validation: %w", err)
	}
	return v.inner.List(ctx, query)
}

func (v *ContactValidationService) Get(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	return v.inner.Get(ctx, ownerID, contactID)
}

func (v *ContactValidationService) Create(ctx context.Context, ownerID string, fields models.ContactFields) (models.Contact, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact validation before saving: %w", err)
	}
	return v.inner.Create(ctx, ownerID, fields)
}

func (v *ContactValidationService) Update(ctx context.Context, ownerID, contactID string, update models.ContactUpdate) (models.Contact, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Contact{}, fmt.Errorf("error during contact update validation: %w", err)
	}
	return v.inner.Update(ctx, ownerID, contactID, update)
}

func (v *ContactValidationService) SetFavorite(ctx context.Context, ownerID, contactID string, req models.FavoriteRequest) (models.Contact, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Contact{}, fmt.Errorf("error during favorite validation: %w", err)
	}
	return v.inner.SetFavorite(ctx, ownerID, contactID, req)
}

func (v *ContactValidationService) Delete(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	return v.inner.Delete(ctx, ownerID, contactID)
}
