package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrMailNotSent, ErrUnauthorized, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrMailNotSent, resp.StatusCode(), body)
	}
}
