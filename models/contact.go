// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Contact is a phone book entry owned by exactly one user.
type Contact struct {
	ContactID string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Favorite  bool      `json:"favorite"`
	OwnerID   string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactFields is the input contract for creating a contact.
type ContactFields struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite *bool  `json:"favorite,omitempty"`
}

// ContactUpdate carries a partial update. Only non-nil fields are written.
type ContactUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Favorite *bool   `json:"favorite,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u ContactUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Favorite == nil
}

// ContactListQuery selects a page of contacts of a single owner.
type ContactListQuery struct {
	// OwnerID is mandatory: every listing is scoped to one user.
	OwnerID string

	// Page is 1-based.
	Page int

	// Limit is the page size.
	Limit int

	// Favorite, when non-nil, keeps only contacts with the same flag.
	Favorite *bool
}

// Offset returns the number of rows to skip for the requested page. It never
// goes negative and saturates at math.MaxInt instead of overflowing.
func (q ContactListQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}
