package validators

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-contacts/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	minPasswordLength = 6

	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72

	// MaxListLimit caps the page size of a contacts listing.
	MaxListLimit = 100

	// MaxListPage keeps (page-1)*limit far from int overflow.
	MaxListPage = 1_000_000
)

// emailPattern is a shape check only: something@something.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var emailRules = []validation.Rule{
	validation.Required,
	is.Email,
	validation.Match(emailPattern).Error("must be a valid email address"),
}

var passwordRules = []validation.Rule{
	validation.Required,
	validation.Length(minPasswordLength, 0),
	validation.By(maxBytes(maxPasswordBytes)),
}

// maxBytes limits the byte length of a string. Length counts runes.
func maxBytes(limit int) validation.RuleFunc {
	return func(value any) error {
		s, err := validation.EnsureString(value)
		if err != nil {
			return err
		}
		if len(s) > limit {
			return fmt.Errorf("must be at most %d bytes long", limit)
		}
		return nil
	}
}

// subscriptionRule accepts the empty value; pair it with Required where the
// tier is mandatory.
func subscriptionRule() validation.Rule {
	return validation.By(func(value any) error {
		s, ok := value.(models.Subscription)
		if !ok {
			return errors.New("must be a subscription")
		}
		if s == "" || s.IsValid() {
			return nil
		}
		return fmt.Errorf("must be one of %v", models.Subscriptions)
	})
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
