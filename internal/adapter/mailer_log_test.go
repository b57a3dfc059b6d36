package adapter

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}

	err := NewLogMailer(l).Send(context.Background(), testMail)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a@x.com")
	assert.Contains(t, buf.String(), "Verify email")
}

func TestNewMailer_PicksImplementation(t *testing.T) {
	m, err := NewMailer(config.Mail{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)

	m, err = NewMailer(config.Mail{APIKey: "SG.key", APIURL: "https://api.sendgrid.com", From: "noreply@example.com"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &sendGridMailer{}, m)
}
