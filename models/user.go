// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Subscription is the billing tier of a user account.
type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// Subscriptions lists every allowed tier in ascending order.
var Subscriptions = []Subscription{
	SubscriptionStarter,
	SubscriptionPro,
	SubscriptionBusiness,
}

// IsValid reports whether s is one of the allowed tiers.
func (s Subscription) IsValid() bool {
	for _, allowed := range Subscriptions {
		if s == allowed {
			return true
		}
	}
	return false
}

// User represents an account entity used for authentication and for scoping
// contacts. Sensitive fields are excluded from JSON; clients only ever see
// the [PublicUser] projection returned by [User.Public].
type User struct {
	// UserID is the opaque unique identifier assigned at registration.
	UserID string `json:"-"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. The plaintext password
	// is never stored.
	PasswordHash string `json:"-"`

	// Subscription is the current billing tier.
	Subscription Subscription `json:"subscription"`

	// Token is the currently live session token. Empty when logged out.
	Token string `json:"-"`

	// AvatarURL references the avatar image: a gravatar identicon after
	// registration, a local `avatars/...` path after an upload.
	AvatarURL string `json:"avatarURL"`

	// Verified reports whether the email address has been confirmed.
	Verified bool `json:"-"`

	// VerificationToken is the single-use value mailed to the user. It is
	// cleared at the moment Verified becomes true.
	VerificationToken string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Public returns the subset of the user that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		Email:        u.Email,
		Subscription: u.Subscription,
	}
}

// PublicUser is the client-facing view of a user.
type PublicUser struct {
	Email        string       `json:"email"`
	Subscription Subscription `json:"subscription"`
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  User
}
