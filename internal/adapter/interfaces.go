// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations with third-party services.
//
// The primary abstraction is [Mailer], which decouples the service layer from
// the email provider. The package ships a SendGrid v3 implementation
// ([NewSendGridMailer]) and a logging implementation ([NewLogMailer]) used
// when no provider key is configured.
//
// Provider HTTP failures are mapped by mapHTTPError so that callers can use
// [errors.Is] with [ErrMailNotSent].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers a single email message.
type Mailer interface {
	// Send delivers mail to mail.To. Returns an error wrapping
	// [ErrMailNotSent] when the provider rejects the message, or a transport
	// error when the provider cannot be reached.
	Send(ctx context.Context, mail models.Mail) error
}
