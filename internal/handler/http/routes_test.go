// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notekeeper/models"
)

func TestRoutes_HealthzIsPublic(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_VersionIsPublic(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got versionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "test", got.Version)
}

func TestRoutes_NotesRequireAuthentication(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockNoteService{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/notes/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_UsersRequireAdmin(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return parsedToken(7, models.RoleUser), nil
		},
	}

	h := newTestHandler(t, auth, nil)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/auth/users", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer user.jwt.token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRoutes_TraceIDHeaderEchoed(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get(traceIDHeader))
}
