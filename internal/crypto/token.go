// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

// jwtIssuer is the private implementation of [TokenIssuer] backed by
// HS256-signed JWTs.
type jwtIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewTokenIssuer constructs a [TokenIssuer] signing with signKey and
// stamping issuer into every token.
func NewTokenIssuer(signKey, issuer string, duration time.Duration) TokenIssuer {
	return &jwtIssuer{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
	}
}

// Issue implements [TokenIssuer].
func (j *jwtIssuer) Issue(userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(j.issuer, userID, j.duration, j.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

// Parse implements [TokenIssuer].
func (j *jwtIssuer) Parse(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, j.signKey, j.issuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}
