package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// gravatarURLTemplate renders a 250px identicon for the given email digest.
const gravatarURLTemplate = "https://www.gravatar.com/avatar/%s?s=250&d=identicon"

// GravatarURL returns the default avatar reference for email.
//
// The address is trimmed and lower-cased before hashing, as required by the
// gravatar service, so equal addresses always map to the same image.
//
// Example usage:
//
//	url := utils.GravatarURL("a@x.com")
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf(gravatarURLTemplate, hex.EncodeToString(sum[:]))
}

// NewVerificationToken returns a fresh random single-use token for email
// verification links.
func NewVerificationToken() string {
	return uuid.NewString()
}
