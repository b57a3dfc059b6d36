package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_UnknownPathIsJSON404(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/unknown", nil), false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not found", decodeBody[models.ErrorResponse](t, rr).Message)
}

func TestRoutes_WrongMethodIs404(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/users/signup"},
		{http.MethodDelete, "/api/users/login"},
		{http.MethodPost, "/api/contacts/c1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			h := newTestHandler(nil, nil)

			rr := serve(h, httptest.NewRequest(tt.method, tt.target, nil), true)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Not found", decodeBody[models.ErrorResponse](t, rr).Message)
		})
	}
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := serve(h, req, false)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestRoutes_ServesAvatars(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "u1.png"), []byte("png-bytes"), 0o644))

	h := newTestHandler(nil, nil)
	h.avatarDir = dir

	t.Run("existing file", func(t *testing.T) {
		rr := serve(h, httptest.NewRequest(http.MethodGet, "/avatars/u1.png", nil), false)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "png-bytes", rr.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		rr := serve(h, httptest.NewRequest(http.MethodGet, "/avatars/u2.png", nil), false)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("directory listing hidden", func(t *testing.T) {
		rr := serve(h, httptest.NewRequest(http.MethodGet, "/avatars/", nil), false)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
