// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry the "Bearer " scheme prefix.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// User-facing transport messages. Wording changes here are API changes.
const (
	msgNoToken         = "No token provided, authorization denied"
	msgInvalidToken    = "Invalid token"
	msgTokenExpired    = "Token expired"
	msgInvalidJSON     = "Invalid JSON was passed"
	msgInvalidNoteID   = "Invalid note ID"
	msgInternalError   = "Internal server error"
	msgNoteDeleted     = "Note deleted successfully"
	msgUserRegistered  = "User registered successfully"
	msgLoginSuccessful = "Login successful"
)
