// Package validate holds the client-side form validators. Every check
// runs before any network call and reports *model.ValidationError, which
// the form layer resolves locally.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Required checks that value is non-empty after trimming whitespace.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &model.ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

// MinLength checks that value has at least n characters. Empty values
// pass; combine with Required when the field is mandatory.
func MinLength(field, value string, n int) error {
	if value != "" && len(value) < n {
		return &model.ValidationError{Field: field, Message: fmt.Sprintf("%s must have at least %d characters", field, n)}
	}
	return nil
}

// Email checks the basic shape of an email address. Empty values pass.
func Email(field, value string) error {
	if value != "" && !emailRe.MatchString(value) {
		return &model.ValidationError{Field: field, Message: "invalid email"}
	}
	return nil
}

// Username checks the platform's username rules: 3-20 characters of
// letters, digits, or underscore.
func Username(field, value string) error {
	if !usernameRe.MatchString(value) {
		return &model.ValidationError{Field: field, Message: "username must have 3-20 characters (letters, digits, _)"}
	}
	return nil
}

// PasswordMatch checks that a password and its confirmation agree.
func PasswordMatch(password, confirmation string) error {
	if password != confirmation {
		return &model.ValidationError{Field: "password_confirmation", Message: "passwords do not match"}
	}
	return nil
}

// Credentials runs the pre-flight checks shared by register and login.
func Credentials(username, password string) error {
	if err := Required("username", username); err != nil {
		return err
	}
	if err := Username("username", username); err != nil {
		return err
	}
	if err := Required("password", password); err != nil {
		return err
	}
	return MinLength("password", password, 6)
}
