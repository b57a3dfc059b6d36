package service

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

// AccountService covers the account lifecycle: registration, email
// verification, sessions, subscription tier and avatar.
type AccountService interface {
	Register(ctx context.Context, req models.SignupRequest) (models.User, error)
	VerifyByToken(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, req models.EmailRequest) error

	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	Logout(ctx context.Context, userID string) error

	ChangeSubscription(ctx context.Context, userID string, req models.SubscriptionRequest) (models.User, error)
	ReplaceAvatar(ctx context.Context, userID string, upload *models.AvatarUpload) (string, error)

	// Authenticate resolves a presented session token to its user. The token
	// must be valid and equal to the one currently stored for the user.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// ContactService manages contacts. Every operation is scoped to ownerID.
type ContactService interface {
	List(ctx context.Context, query models.ContactListQuery) ([]models.Contact, error)
	Get(ctx context.Context, ownerID, contactID string) (models.Contact, error)
	Create(ctx context.Context, ownerID string, fields models.ContactFields) (models.Contact, error)
	Update(ctx context.Context, ownerID, contactID string, update models.ContactUpdate) (models.Contact, error)
	SetFavorite(ctx context.Context, ownerID, contactID string, req models.FavoriteRequest) (models.Contact, error)
	Delete(ctx context.Context, ownerID, contactID string) (models.Contact, error)
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// ContactServiceWrapper defines middleware composition for ContactService.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}
