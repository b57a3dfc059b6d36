package service

import "errors"

var (
	ErrEmailInUse       = errors.New("email in use")
	ErrWrongCredentials = errors.New("email or password is wrong")
	ErrEmailNotVerified = errors.New("email not verified")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrNotAuthorized           = errors.New("not authorized")

	ErrUserNotFound         = errors.New("user not found")
	ErrVerificationNotFound = errors.New("verification token not found")
	ErrAlreadyVerified      = errors.New("verification has already been passed")
	ErrNoAvatarFileProvided = errors.New("avatar file is required")
	ErrContactNotFound      = errors.New("contact not found")

	ErrSendingMail = errors.New("error sending email")
)
