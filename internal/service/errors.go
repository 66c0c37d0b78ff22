// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable so callers cannot probe for registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed wraps failures while signing a new JWT.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenExpired is returned by ParseToken for structurally valid
	// tokens whose expiry has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned by ParseToken for any other token
	// validation failure: bad signature, wrong issuer, malformed string.
	ErrTokenInvalid = errors.New("token is not valid")

	// ErrAccessDenied is returned when an actor targets a resource it does
	// not own and lacks the admin role.
	ErrAccessDenied = errors.New("access denied")

	// ErrAdminRequired is returned when a non-admin actor invokes an
	// admin-only operation.
	ErrAdminRequired = errors.New("admin privileges required")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// build carries no version string.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// ValidationError reports a rejected request field. The Message is written
// verbatim into the error response body, so it must be phrased for end
// users, not for logs.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError constructs a [ValidationError] carrying msg.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
