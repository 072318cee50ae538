// Package validation holds the input rules for account fields.
package validation

import (
	"regexp"
	"strings"

	"ripple/internal/models"
)

const (
	MaxUsernameLen = 30
	MinPasswordLen = 6
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Username checks shape only; uniqueness is the repository's problem.
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return models.NewValidationError("Username is required")
	}
	if len(username) > MaxUsernameLen {
		return models.NewValidationError("Username too long (max 30 characters)")
	}
	if !usernameRegex.MatchString(username) {
		return models.NewValidationError("Username may only contain letters, numbers, '_', '.' and '-'")
	}
	return nil
}

func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return models.NewValidationError("Email is required")
	}
	if !emailRegex.MatchString(email) {
		return models.NewValidationError("Invalid email address")
	}
	return nil
}

func Password(password string) error {
	if len(password) < MinPasswordLen {
		return models.NewValidationError("Password must be at least 6 characters")
	}
	return nil
}
