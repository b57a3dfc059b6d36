package store

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row. A taken email
	// yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail, FindUserByID and FindUserByVerificationToken return
	// [ErrNoUserWasFound] when nothing matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByVerificationToken(ctx context.Context, token string) (models.User, error)

	// SetToken stores the live session token. An empty token clears it.
	SetToken(ctx context.Context, userID, token string) error

	// MarkVerified sets verified and clears the verification token in a
	// single statement.
	MarkVerified(ctx context.Context, userID string) error

	UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) (models.User, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
}

// ContactRepository persists contacts. Every method is scoped by owner: a
// contact of another owner is reported as [ErrContactNotFound].
type ContactRepository interface {
	ListContacts(ctx context.Context, query models.ContactListQuery) ([]models.Contact, error)
	GetContact(ctx context.Context, ownerID, contactID string) (models.Contact, error)
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, ownerID, contactID string, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, ownerID, contactID string) (models.Contact, error)
}

// AvatarStorage normalizes and stores avatar images.
type AvatarStorage interface {
	// Save resizes the upload, stores it under the user's id and returns the
	// public reference of the stored file. Undecodable or unsupported images
	// yield [ErrUnsupportedImage].
	Save(ctx context.Context, userID string, upload models.AvatarUpload) (string, error)
}
