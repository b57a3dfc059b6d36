package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - ID        (jti): a random value, so two tokens issued within the same
//     second for the same user still differ
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-contacts", userID, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "go-contacts")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := parsed.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsed.SignedString = tokenString
	parsed.UserID = userID
	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
