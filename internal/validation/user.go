// Package validation contains input checks applied before persistence.
package validation

import (
	"strings"

	"userapi/internal/models"
)

// Username checks that a username is present and non-empty.
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return models.NewValidationError("Username is required")
	}
	return nil
}

// Email checks that an email is present and contains an "@" followed by a
// non-empty domain segment. This is deliberately a minimal sanity check, not
// full RFC validation.
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return models.NewValidationError("Email is required")
	}
	at := strings.Index(email, "@")
	if at < 1 || strings.TrimSpace(email[at+1:]) == "" {
		return models.NewValidationError("Email must contain '@' and a domain")
	}
	return nil
}

// NewUser validates all fields required to create a user.
func NewUser(username, email string) error {
	if err := Username(username); err != nil {
		return err
	}
	return Email(email)
}
