package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

type contactService struct {
	contactRepository store.ContactRepository

	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (c *contactService) List(ctx context.Context, query models.ContactListQuery) ([]models.Contact, error) {
	contacts, err := c.contactRepository.ListContacts(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", query.OwnerID).Msg("listing contacts failed")
		return nil, fmt.Errorf("listing contacts failed: %w", err)
	}

	return contacts, nil
}

func (c *contactService) Get(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	contact, err := c.contactRepository.GetContact(ctx, ownerID, contactID)
	if err != nil {
		return models.Contact{}, c.mapError(ctx, err, ownerID, contactID)
	}

	return contact, nil
}

// Create stores a new contact owned by ownerID. Favorite defaults to false.
func (c *contactService) Create(ctx context.Context, ownerID string, fields models.ContactFields) (models.Contact, error) {
	contact := models.Contact{
		ContactID: c.idGenerator.Generate(),
		OwnerID:   ownerID,
		Name:      fields.Name,
		Email:     fields.Email,
		Phone:     fields.Phone,
		Favorite:  fields.Favorite != nil && *fields.Favorite,
	}

	created, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("creating contact failed")
		return models.Contact{}, fmt.Errorf("creating contact failed: %w", err)
	}

	return created, nil
}

// Update merges the non-nil fields of update into the contact.
func (c *contactService) Update(ctx context.Context, ownerID, contactID string, update models.ContactUpdate) (models.Contact, error) {
	contact, err := c.contactRepository.UpdateContact(ctx, ownerID, contactID, update)
	if err != nil {
		return models.Contact{}, c.mapError(ctx, err, ownerID, contactID)
	}

	return contact, nil
}

// SetFavorite changes only the favorite flag.
func (c *contactService) SetFavorite(ctx context.Context, ownerID, contactID string, req models.FavoriteRequest) (models.Contact, error) {
	return c.Update(ctx, ownerID, contactID, models.ContactUpdate{Favorite: req.Favorite})
}

func (c *contactService) Delete(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	contact, err := c.contactRepository.DeleteContact(ctx, ownerID, contactID)
	if err != nil {
		return models.Contact{}, c.mapError(ctx, err, ownerID, contactID)
	}

	return contact, nil
}

// mapError turns a missing or foreign contact into ErrContactNotFound and
// logs anything else.
func (c *contactService) mapError(ctx context.Context, err error, ownerID, contactID string) error {
	if errors.Is(err, store.ErrContactNotFound) {
		return fmt.Errorf("%w: %w", ErrContactNotFound, err)
	}

	logger.FromContext(ctx).Err(err).
		Str("owner_id", ownerID).
		Str("contact_id", contactID).
		Msg("contact operation failed")
	return fmt.Errorf("contact operation failed: %w", err)
}
