// Package client provides a typed Go client for the note keeper REST API.
// It wraps a resty HTTP client, keeps the bearer token issued by the auth
// endpoints, and decodes the server's JSON envelopes into the shared model
// types.
//
// Example usage:
//
//	api, err := client.New("http://localhost:8080", 5*time.Second)
//	if err != nil { ... }
//	if _, err := api.Login(ctx, "a@b.com", "Secret123"); err != nil { ... }
//	notes, err := api.ListNotes(ctx, "")
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/notekeeper/notekeeper/models"
)

// Client is a stateful API client. After a successful Register or Login it
// stores the issued bearer token and attaches it to every subsequent request.
// A Client is not safe for concurrent use while the token is being replaced.
type Client struct {
	http  *resty.Client
	token string
}

// New constructs a Client pointed at baseURL. The scheme defaults to http
// when absent. A non-positive timeout leaves the underlying client without a
// request deadline.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	httpClient := resty.New().SetBaseURL(normalized)
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}

	return &Client{http: httpClient}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests. Useful when resuming a
// session with a previously issued token.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	return c.token
}

// Register creates an account via POST /api/v1/auth/register and stores the
// issued bearer token. Returns the public view of the created account.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var auth models.AuthResponse

	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/v1/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return models.User{}, err
	}

	c.SetToken(auth.Token)
	return auth.User, nil
}

// Login authenticates via POST /api/v1/auth/login and stores the issued
// bearer token. Returns the public view of the authenticated account.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	var auth models.AuthResponse

	resp, err := c.request(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&auth).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return models.User{}, err
	}

	c.SetToken(auth.Token)
	return auth.User, nil
}

// Me fetches the profile of the authenticated account via GET /api/v1/auth/me.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var profile models.UserResponse

	resp, err := c.request(ctx).
		SetResult(&profile).
		Get("/api/v1/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return models.User{}, err
	}

	return profile.User, nil
}

// Users lists every account via GET /api/v1/auth/users. The server rejects
// the call with 403 unless the token carries the admin role.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var listing models.UsersResponse

	resp, err := c.request(ctx).
		SetResult(&listing).
		Get("/api/v1/auth/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return nil, err
	}

	return listing.Users, nil
}

// ListNotes fetches the notes visible to the authenticated account via
// GET /api/v1/notes, optionally filtered by category.
func (c *Client) ListNotes(ctx context.Context, category string) ([]models.Note, error) {
	req := c.request(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}

	resp, err := req.Get("/api/v1/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes, nil
}

// GetNote fetches a single note via GET /api/v1/notes/{id}.
func (c *Client) GetNote(ctx context.Context, id int64) (models.Note, error) {
	var note models.Note

	resp, err := c.request(ctx).
		SetResult(&note).
		Get(notePath(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// CreateNote creates a note via POST /api/v1/notes and returns the stored
// record with server-assigned ID and timestamps.
func (c *Client) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&note).
		Post("/api/v1/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote applies a partial update via PUT /api/v1/notes/{id}. Only the
// non-nil fields of req are sent; the server leaves the rest unchanged.
func (c *Client) UpdateNote(ctx context.Context, id int64, req models.UpdateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&note).
		Put(notePath(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote removes a note via DELETE /api/v1/notes/{id}.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	resp, err := c.request(ctx).Delete(notePath(id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapResponseError(resp)
}

// Version fetches the server build version via GET /api/v1/version.
func (c *Client) Version(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}

	resp, err := c.request(ctx).
		SetResult(&body).
		Get("/api/v1/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return "", err
	}

	return body.Version, nil
}

// Healthy reports whether GET /healthz answers with a 2xx status.
func (c *Client) Healthy(ctx context.Context) error {
	resp, err := c.request(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("healthz request: %w", err)
	}

	return mapResponseError(resp)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}

	return req
}

func notePath(id int64) string {
	return "/api/v1/notes/" + strconv.FormatInt(id, 10)
}
