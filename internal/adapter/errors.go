package adapter

import "errors"

var (
	// ErrMailNotSent reports that the provider answered with a non-2xx status.
	ErrMailNotSent = errors.New("mail not sent")
	// ErrUnauthorized reports a rejected provider API key.
	ErrUnauthorized = errors.New("mail provider unauthorized")
)
