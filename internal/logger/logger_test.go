package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("contacts-api", &buf)

	l.Info().Str("user", "u1").Msg("signed up")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "contacts-api", entry["role"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "signed up", entry["message"])
	assert.Equal(t, "u1", entry["user"])
	assert.Contains(t, entry, "time")

	caller, ok := entry["func"].(string)
	require.True(t, ok, "expected func caller field")
	assert.True(t, strings.HasSuffix(caller, "TestNew_EntryFields"), caller)
}

func TestNew_DebugLevelIsEmitted(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", &buf)

	l.Debug().Msg("details")
	l.Trace().Msg("too verbose")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "details")
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent", &buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "t-1").Logger()
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"trace_id":"t-1"`)
	assert.Contains(t, lines[0], `"role":"parent"`)
	assert.NotContains(t, lines[1], "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
		ctx := zl.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("ignored") })
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-1", decodeEntry(t, &buf)["trace_id"])
}
