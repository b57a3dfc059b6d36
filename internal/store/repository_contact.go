// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/jackc/pgerrcode"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Every statement carries the owner in its WHERE clause.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// ListContacts implements [ContactRepository]. An owner without contacts
// gets an empty, non-nil slice.
func (r *contactRepository) ListContacts(ctx context.Context, query models.ContactListQuery) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListContactsQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error listing contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error scanning contact")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, contact)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// GetContact implements [ContactRepository].
func (r *contactRepository) GetContact(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	query, args, err := buildGetContactQuery(ownerID, contactID)
	if err != nil {
		return models.Contact{}, err
	}
	return r.queryOne(ctx, "*contactRepository.GetContact", query, args)
}

// CreateContact implements [ContactRepository].
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	query, args, err := buildInsertContactQuery(contact)
	if err != nil {
		return models.Contact{}, err
	}
	return r.queryOne(ctx, "*contactRepository.CreateContact", query, args)
}

// UpdateContact implements [ContactRepository].
func (r *contactRepository) UpdateContact(ctx context.Context, ownerID, contactID string, update models.ContactUpdate) (models.Contact, error) {
	query, args, err := buildUpdateContactQuery(ownerID, contactID, update)
	if err != nil {
		return models.Contact{}, err
	}
	return r.queryOne(ctx, "*contactRepository.UpdateContact", query, args)
}

// DeleteContact implements [ContactRepository]. The removed row is returned.
func (r *contactRepository) DeleteContact(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	query, args, err := buildDeleteContactQuery(ownerID, contactID)
	if err != nil {
		return models.Contact{}, err
	}
	return r.queryOne(ctx, "*contactRepository.DeleteContact", query, args)
}

func (r *contactRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		// a malformed uuid cannot match any contact
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error executing contact query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

func scanContact(row rowScanner) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ContactID,
		&contact.OwnerID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Favorite,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	return contact, err
}
