// Package validation provides input validation for API request payloads.
// Every failure names the offending field so clients can surface the message
// inline next to the relevant form input.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"runtracker/internal/models"
)

const (
	minPasswordLength = 10
	// bcrypt only reads the first 72 bytes of input
	maxPasswordLength = 72
	// avatars index into a fixed icon set shipped with the client
	maxAvatarIndex = 23
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateName checks the required full-name field.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewFieldValidationError("name", "name is required")
	}
	if len(name) > 100 {
		return models.NewFieldValidationError("name", "name must not exceed 100 characters")
	}
	return nil
}

// ValidateDisplayName checks the required display-name field.
func ValidateDisplayName(displayName string) error {
	if strings.TrimSpace(displayName) == "" {
		return models.NewFieldValidationError("displayName", "displayName is required")
	}
	if len(displayName) > 50 {
		return models.NewFieldValidationError("displayName", "displayName must not exceed 50 characters")
	}
	return nil
}

// ValidateUsername checks that the username is email-shaped.
func ValidateUsername(username string) error {
	if username == "" {
		return models.NewFieldValidationError("username", "username is required")
	}
	if len(username) > 254 {
		return models.NewFieldValidationError("username", "username must not exceed 254 characters")
	}
	if !emailRegex.MatchString(username) {
		return models.NewFieldValidationError("username", "username must be a valid email address")
	}
	return nil
}

// ValidatePassword checks password length bounds.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return models.NewFieldValidationError("password",
			fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}
	if len(password) > maxPasswordLength {
		return models.NewFieldValidationError("password",
			fmt.Sprintf("password must not exceed %d characters", maxPasswordLength))
	}
	return nil
}

// ValidateAvatar checks the avatar icon index.
func ValidateAvatar(avatar int) error {
	if avatar < 0 || avatar > maxAvatarIndex {
		return models.NewFieldValidationError("avatar",
			fmt.Sprintf("avatar must be between 0 and %d", maxAvatarIndex))
	}
	return nil
}
