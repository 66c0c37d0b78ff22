// SPDX-License-Identifier: Apache-2.0

package service

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/notekeeper/notekeeper/models"
)

// User-facing validation messages. These appear verbatim in 400 response
// bodies, so wording changes are API changes.
const (
	MsgUsernameLength       = "Username must be between 3 and 30 characters"
	MsgUsernameCharset      = "Username can only contain letters, numbers, and underscores"
	MsgEmailInvalid         = "Please provide a valid email"
	MsgPasswordTooShort     = "Password must be at least 6 characters"
	MsgPasswordComposition  = "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	MsgPasswordRequired     = "Password is required"
	MsgRoleInvalid          = "Role must be either user or admin"
	MsgTitleContentRequired = "Title and content are required"
	MsgTitleLength          = "Title must be between 1 and 100 characters"
	MsgTitleEmpty           = "Title cannot be empty"
	MsgContentEmpty         = "Content cannot be empty"
	MsgCategoryInvalid      = "Category must be Personal, Work, or Others"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 6
	titleMaxLen    = 100
)

// validateRegistration checks and normalises a registration request in
// place: username and email are trimmed, email is lowercased. The first
// failed rule wins.
func validateRegistration(req *models.RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)

	if len(req.Username) < usernameMinLen || len(req.Username) > usernameMaxLen {
		return NewValidationError(MsgUsernameLength)
	}
	if !usernamePattern.MatchString(req.Username) {
		return NewValidationError(MsgUsernameCharset)
	}
	if !isValidEmail(req.Email) {
		return NewValidationError(MsgEmailInvalid)
	}
	if utf8.RuneCountInString(req.Password) < passwordMinLen {
		return NewValidationError(MsgPasswordTooShort)
	}
	if !hasPasswordComposition(req.Password) {
		return NewValidationError(MsgPasswordComposition)
	}
	if req.Role != "" && !models.Role(req.Role).Valid() {
		return NewValidationError(MsgRoleInvalid)
	}

	return nil
}

// validateLogin checks and normalises a login request in place.
func validateLogin(req *models.LoginRequest) error {
	req.Email = normalizeEmail(req.Email)

	if !isValidEmail(req.Email) {
		return NewValidationError(MsgEmailInvalid)
	}
	if req.Password == "" {
		return NewValidationError(MsgPasswordRequired)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	// reject addresses with a display name ("Bob <bob@x.y>")
	return err == nil && addr.Address == email
}

func hasPasswordComposition(password string) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
