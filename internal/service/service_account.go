// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/crypto"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

const (
	verificationPath    = "/api/users/verify/"
	verificationSubject = "Verify your email"
	verificationHTML    = `<a target="_blank" href="%s">Click to verify your email</a>`
)

// accountService is the concrete implementation of AccountService.
// Inputs are assumed to be validated already; see AccountValidationService.
type accountService struct {
	userRepository store.UserRepository
	avatarStorage  store.AvatarStorage

	// mailer delivers verification links.
	mailer adapter.Mailer

	hasher crypto.PasswordHasher
	issuer crypto.TokenIssuer

	idGenerator *utils.UUIDGenerator

	// baseURL is the public server URL the verification link points to.
	baseURL string

	logger *logger.Logger
}

// NewAccountService constructs a new AccountService. The returned service is
// safe for concurrent use; all state is read-only after construction.
func NewAccountService(
	userRepository store.UserRepository,
	avatarStorage store.AvatarStorage,
	mailer adapter.Mailer,
	hasher crypto.PasswordHasher,
	issuer crypto.TokenIssuer,
	cfg config.App,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		userRepository: userRepository,
		avatarStorage:  avatarStorage,
		mailer:         mailer,
		hasher:         hasher,
		issuer:         issuer,
		idGenerator:    utils.NewUUIDGenerator(),
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		logger:         logger,
	}
}

// Register creates an unverified account and mails the verification link.
//
// Returns the stored user or:
//   - ErrEmailInUse if the email is already registered.
//   - A wrapped hashing or storage error.
//
// Mail delivery is best-effort: a failure is logged and the account is kept,
// the user can request a new link through ResendVerification.
func (a *accountService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	req.Email = normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", req.Email).Msg("email already registered")
		return models.User{}, ErrEmailInUse
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	subscription := req.Subscription
	if subscription == "" {
		subscription = models.SubscriptionStarter
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:            a.idGenerator.Generate(),
		Email:             req.Email,
		PasswordHash:      passwordHash,
		Subscription:      subscription,
		AvatarURL:         utils.GravatarURL(req.Email),
		VerificationToken: utils.NewVerificationToken(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailInUse, err)
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.sendVerification(ctx, user); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("verification email was not sent")
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// VerifyByToken marks the owner of token as verified. The token is cleared
// in the same statement, so a second call fails with ErrVerificationNotFound.
func (a *accountService) VerifyByToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrVerificationNotFound
	}

	user, err := a.userRepository.FindUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: %w", ErrVerificationNotFound, err)
		}
		log.Err(err).Msg("user search by verification token failed")
		return fmt.Errorf("user search by verification token failed: %w", err)
	}

	if err = a.userRepository.MarkVerified(ctx, user.UserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: %w", ErrVerificationNotFound, err)
		}
		log.Err(err).Str("user_id", user.UserID).Msg("marking user as verified failed")
		return fmt.Errorf("marking user as verified failed: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("email verified")
	return nil
}

// ResendVerification mails the existing verification token again. Unlike
// Register, a delivery failure is returned to the caller.
func (a *accountService) ResendVerification(ctx context.Context, req models.EmailRequest) error {
	log := logger.FromContext(ctx)
	req.Email = normalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Verified {
		return ErrAlreadyVerified
	}

	if err = a.sendVerification(ctx, user); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("verification email was not sent")
		return err
	}

	return nil
}

// Login checks the credentials, issues a session token and stores it as the
// user's only live session.
//
// Unknown email and wrong password both yield ErrWrongCredentials. An
// unverified account yields ErrEmailNotVerified.
func (a *accountService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)
	req.Email = normalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", req.Email).Msg("login with unknown email")
			return models.Session{}, ErrWrongCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Warn().Str("user_id", user.UserID).Msg("wrong password")
			return models.Session{}, ErrWrongCredentials
		}
		log.Err(err).Str("user_id", user.UserID).Msg("password comparison failed")
		return models.Session{}, fmt.Errorf("password comparison failed: %w", err)
	}

	if !user.Verified {
		return models.Session{}, ErrEmailNotVerified
	}

	token, err := a.issuer.Issue(user.UserID)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("creation of token failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.SetToken(ctx, user.UserID, token.SignedString); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("saving token failed")
		return models.Session{}, fmt.Errorf("saving token failed: %w", err)
	}
	user.Token = token.SignedString

	return models.Session{Token: token.SignedString, User: user}, nil
}

// Logout clears the stored session token. Logging out twice is not an error.
func (a *accountService) Logout(ctx context.Context, userID string) error {
	if err := a.userRepository.SetToken(ctx, userID, ""); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: %w", ErrNotAuthorized, err)
		}
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("clearing token failed")
		return fmt.Errorf("clearing token failed: %w", err)
	}

	return nil
}

func (a *accountService) ChangeSubscription(ctx context.Context, userID string, req models.SubscriptionRequest) (models.User, error) {
	user, err := a.userRepository.UpdateSubscription(ctx, userID, req.Subscription)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("updating subscription failed")
		return models.User{}, fmt.Errorf("updating subscription failed: %w", err)
	}

	return user, nil
}

// ReplaceAvatar stores the resized upload and points the user's avatar
// reference at it. Returns the new reference.
func (a *accountService) ReplaceAvatar(ctx context.Context, userID string, upload *models.AvatarUpload) (string, error) {
	log := logger.FromContext(ctx)

	if upload == nil || upload.Content == nil {
		return "", ErrNoAvatarFileProvided
	}

	avatarURL, err := a.avatarStorage.Save(ctx, userID, *upload)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("filename", upload.Filename).Msg("saving avatar failed")
		return "", fmt.Errorf("saving avatar failed: %w", err)
	}

	if err = a.userRepository.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		log.Err(err).Str("user_id", userID).Msg("updating avatar reference failed")
		return "", fmt.Errorf("updating avatar reference failed: %w", err)
	}

	return avatarURL, nil
}

// Authenticate parses tokenString and loads its user.
//
// Returns ErrTokenIsExpiredOrInvalid when the token does not parse and
// ErrNotAuthorized when the user is gone or the token is not the user's
// current session (logged out or replaced by a newer login).
func (a *accountService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.issuer.Parse(tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrNotAuthorized, err)
		}
		log.Err(err).Str("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.Token == "" || user.Token != tokenString {
		log.Warn().Str("user_id", user.UserID).Msg("token is not the current session")
		return models.User{}, ErrNotAuthorized
	}

	return user, nil
}

func (a *accountService) sendVerification(ctx context.Context, user models.User) error {
	link := a.baseURL + verificationPath + url.PathEscape(user.VerificationToken)

	err := a.mailer.Send(ctx, models.Mail{
		To:      user.Email,
		Subject: verificationSubject,
		HTML:    fmt.Sprintf(verificationHTML, link),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	return nil
}

// normalizeEmail makes addresses that differ only in case or surrounding
// whitespace refer to the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
