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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and single-column updates against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID,
		user.Email,
		user.PasswordHash,
		user.Subscription,
		user.AvatarURL,
		user.Verified,
		nullString(user.VerificationToken),
	)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByVerificationToken implements [UserRepository].
func (r *userRepository) FindUserByVerificationToken(ctx context.Context, token string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByVerificationToken", findUserByVerificationToken, token)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		// a malformed uuid cannot match any user
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// SetToken implements [UserRepository].
func (r *userRepository) SetToken(ctx context.Context, userID, token string) error {
	return r.exec(ctx, "*userRepository.SetToken", setUserToken, userID, nullString(token))
}

// MarkVerified implements [UserRepository].
func (r *userRepository) MarkVerified(ctx context.Context, userID string) error {
	return r.exec(ctx, "*userRepository.MarkVerified", markUserVerified, userID)
}

// UpdateAvatar implements [UserRepository].
func (r *userRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	return r.exec(ctx, "*userRepository.UpdateAvatar", updateUserAvatar, userID, avatarURL)
}

// UpdateSubscription implements [UserRepository]. The updated row is
// returned.
func (r *userRepository) UpdateSubscription(ctx context.Context, userID string, subscription models.Subscription) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := scanUser(r.db.QueryRowContext(ctx, updateUserSubscription, userID, subscription))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateSubscription").Msg("error updating subscription")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// exec runs a single-row UPDATE and reports [ErrNoUserWasFound] when no row
// was affected.
func (r *userRepository) exec(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user              models.User
		token             sql.NullString
		verificationToken sql.NullString
	)

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.Subscription,
		&token,
		&user.AvatarURL,
		&user.Verified,
		&verificationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Token = token.String
	user.VerificationToken = verificationToken.String
	return user, nil
}

// nullString maps the empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
