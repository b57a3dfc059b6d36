// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable texts written into HTTP response
// bodies by the contacts API handlers.
package app

const (
	MsgNotFound      = "Not found"
	MsgNotAuthorized = "Not authorized"
	MsgEmailInUse    = "Email in use"
	MsgUserNotFound  = "User not found"

	// MsgWrongCredentials covers both an unknown email and a wrong password.
	MsgWrongCredentials = "Email or password is wrong"
	MsgEmailNotVerified = "Email not verify"

	MsgAlreadyVerified    = "Verification has already been passed"
	MsgAvatarRequired     = "Avatar file is required"
	MsgAvatarTooLarge     = "Avatar file is too large"
	MsgUnsupportedImage   = "Unsupported image format"
	MsgInternalError      = "Internal Server Error"
	MsgVerificationPassed = "Verification successful"
	MsgVerificationSent   = "Verification email sent"
	MsgContactDeleted     = "contact was deleted"
)
