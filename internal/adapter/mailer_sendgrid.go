// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-resty/resty/v2"
)

const sendGridSendPath = "/v3/mail/send"

type sendGridMailer struct {
	client *resty.Client
	from   string

	logger *logger.Logger
}

// NewSendGridMailer constructs a [Mailer] that posts messages to the SendGrid
// v3 API. The base URL, API key, sender and timeout come from mailCfg.
//
// Returns an error if mailCfg.APIURL cannot be parsed as a valid URL.
func NewSendGridMailer(mailCfg config.Mail, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(mailCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(mailCfg.RequestTimeout).
		SetAuthToken(mailCfg.APIKey)

	return &sendGridMailer{client: client, from: mailCfg.From, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridMessage struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

// Send implements [Mailer]. It POSTs the message to /v3/mail/send with the
// API key as a bearer token.
func (s *sendGridMailer) Send(ctx context.Context, mail models.Mail) error {
	message := sendGridMessage{
		Personalizations: []sendGridPersonalization{{To: []sendGridAddress{{Email: mail.To}}}},
		From:             sendGridAddress{Email: s.from},
		Subject:          mail.Subject,
		Content:          []sendGridContent{{Type: "text/html", Value: mail.HTML}},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(sendGridSendPath)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	s.logger.Debug().Str("to", mail.To).Str("subject", mail.Subject).Msg("mail sent")
	return nil
}
