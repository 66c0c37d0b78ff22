// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notekeeper/internal/config"
	"github.com/notekeeper/notekeeper/internal/logger"
	"github.com/notekeeper/notekeeper/internal/service"
	"github.com/notekeeper/notekeeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	getUserFn     func(ctx context.Context, id int64) (models.User, error)
	listUsersFn   func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	listFn   func(ctx context.Context, actor models.AuthUser, category string) ([]models.Note, error)
	getFn    func(ctx context.Context, actor models.AuthUser, id int64) (models.Note, error)
	createFn func(ctx context.Context, actor models.AuthUser, req models.CreateNoteRequest) (models.Note, error)
	updateFn func(ctx context.Context, actor models.AuthUser, id int64, req models.UpdateNoteRequest) (models.Note, error)
	deleteFn func(ctx context.Context, actor models.AuthUser, id int64) error
}

func (m *mockNoteService) List(ctx context.Context, actor models.AuthUser, category string) ([]models.Note, error) {
	return m.listFn(ctx, actor, category)
}

func (m *mockNoteService) Get(ctx context.Context, actor models.AuthUser, id int64) (models.Note, error) {
	return m.getFn(ctx, actor, id)
}

func (m *mockNoteService) Create(ctx context.Context, actor models.AuthUser, req models.CreateNoteRequest) (models.Note, error) {
	return m.createFn(ctx, actor, req)
}

func (m *mockNoteService) Update(ctx context.Context, actor models.AuthUser, id int64, req models.UpdateNoteRequest) (models.Note, error) {
	return m.updateFn(ctx, actor, id, req)
}

func (m *mockNoteService) Delete(ctx context.Context, actor models.AuthUser, id int64) error {
	return m.deleteFn(ctx, actor, id)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version  string
	readyErr error
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Ready(ctx context.Context) error {
	return m.readyErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks
// are allowed for services a test does not touch.
func newTestHandler(t *testing.T, auth service.AuthService, notes service.NoteService) *Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService:    auth,
		NoteService:    notes,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, config.StructuredConfig{}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeMessage extracts the "message" field from a JSON error envelope.
func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Message
}
