// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/users/signup.
type SignupRequest struct {
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	Subscription Subscription `json:"subscription,omitempty"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailRequest is the body of POST /api/users/verify.
type EmailRequest struct {
	Email string `json:"email"`
}

// SubscriptionRequest is the body of PATCH /api/users.
type SubscriptionRequest struct {
	Subscription Subscription `json:"subscription"`
}

// FavoriteRequest is the body of PATCH /api/contacts/{id}/favorite.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

// UserResponse wraps the public user view.
type UserResponse struct {
	User PublicUser `json:"user"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// AvatarResponse is returned after an avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

// DeleteContactResponse is returned after a contact is removed.
type DeleteContactResponse struct {
	Message       string  `json:"message"`
	DeleteContact Contact `json:"deleteContact"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
