package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contacts/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, email, password_hash, subscription, token, avatar_url, verified, verification_token, created_at, updated_at`

const (
	createUser = `INSERT INTO users (user_id, email, password_hash, subscription, avatar_url, verified, verification_token)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByVerificationToken = `SELECT ` + userColumns + `
    FROM users
    WHERE verification_token = $1;`

	setUserToken = `UPDATE users
    SET token = $2, updated_at = NOW()
    WHERE user_id = $1;`

	markUserVerified = `UPDATE users
    SET verified = TRUE, verification_token = NULL, updated_at = NOW()
    WHERE user_id = $1;`

	updateUserSubscription = `UPDATE users
    SET subscription = $2, updated_at = NOW()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	updateUserAvatar = `UPDATE users
    SET avatar_url = $2, updated_at = NOW()
    WHERE user_id = $1;`
)

var contactColumns = []string{
	"contact_id",
	"owner_id",
	"name",
	"email",
	"phone",
	"favorite",
	"created_at",
	"updated_at",
}

// psql builds statements with Postgres $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningContact() string {
	return "RETURNING " + strings.Join(contactColumns, ", ")
}

// buildListContactsQuery selects one page of the owner's contacts, oldest
// first, optionally filtered by the favorite flag.
func buildListContactsQuery(query models.ContactListQuery) (string, []any, error) {
	if query.OwnerID == "" {
		return "", nil, fmt.Errorf("%w: owner is required", ErrBuildingSQLQuery)
	}

	builder := psql.
		Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"owner_id": query.OwnerID})

	if query.Favorite != nil {
		builder = builder.Where(sq.Eq{"favorite": *query.Favorite})
	}

	builder = builder.OrderBy("created_at ASC", "contact_id ASC")
	if query.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit)).Offset(uint64(query.Offset()))
	}

	return wrapBuild(builder.ToSql())
}

func buildGetContactQuery(ownerID, contactID string) (string, []any, error) {
	return wrapBuild(psql.
		Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"contact_id": contactID}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql())
}

func buildInsertContactQuery(contact models.Contact) (string, []any, error) {
	return wrapBuild(psql.
		Insert("contacts").
		Columns("contact_id", "owner_id", "name", "email", "phone", "favorite").
		Values(contact.ContactID, contact.OwnerID, contact.Name, contact.Email, contact.Phone, contact.Favorite).
		Suffix(returningContact()).
		ToSql())
}

// buildUpdateContactQuery writes only the non-nil fields of update.
func buildUpdateContactQuery(ownerID, contactID string, update models.ContactUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.
		Update("contacts").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Favorite != nil {
		builder = builder.Set("favorite", *update.Favorite)
	}

	return wrapBuild(builder.
		Where(sq.Eq{"contact_id": contactID}).
		Where(sq.Eq{"owner_id": ownerID}).
		Suffix(returningContact()).
		ToSql())
}

func buildDeleteContactQuery(ownerID, contactID string) (string, []any, error) {
	return wrapBuild(psql.
		Delete("contacts").
		Where(sq.Eq{"contact_id": contactID}).
		Where(sq.Eq{"owner_id": ownerID}).
		Suffix(returningContact()).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		if errors.Is(err, ErrBuildingSQLQuery) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
