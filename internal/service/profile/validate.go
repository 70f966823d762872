package profile

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrorKind identifies which input failed validation.
type ErrorKind int

const (
	InvalidUserID ErrorKind = iota + 1
	InvalidEmail
	InvalidName
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidUserID:
		return "invalid_user_id"
	case InvalidEmail:
		return "invalid_email"
	case InvalidName:
		return "invalid_name"
	default:
		return "unknown"
	}
}

// ValidationError reports a rejected input field and its value.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Value any
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidUserID:
		return fmt.Sprintf("invalid user_id: %v", e.Value)
	case InvalidEmail:
		return fmt.Sprintf("invalid email format: %v", e.Value)
	case InvalidName:
		return fmt.Sprintf("invalid name format: %v", e.Value)
	default:
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
	}
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

const minNameLength = 2

// Validate checks user input against business rules and normalizes it.
// Checks run in order: user ID, email, name.
func Validate(userID int64, name, email string) (ValidatedUser, error) {
	if userID <= 0 {
		return ValidatedUser{}, &ValidationError{Kind: InvalidUserID, Field: "user_id", Value: userID}
	}
	if !isValidEmail(email) {
		return ValidatedUser{}, &ValidationError{Kind: InvalidEmail, Field: "email", Value: email}
	}
	if !isValidName(name) {
		return ValidatedUser{}, &ValidationError{Kind: InvalidName, Field: "name", Value: name}
	}

	return ValidatedUser{
		UserID: userID,
		Name:   titleCase(strings.TrimSpace(name)),
		Email:  strings.ToLower(strings.TrimSpace(email)),
	}, nil
}

// isValidEmail requires an "@" and a "." in the domain segment, which ends at
// the next "@" if there is one.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return false
	}
	return strings.Contains(parts[1], ".")
}

// isValidName accepts letters separated by single spaces, at least two
// characters after trimming.
func isValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < minNameLength {
		return false
	}
	prevSpace := false
	for _, r := range trimmed {
		switch {
		case r == ' ':
			if prevSpace {
				return false
			}
			prevSpace = true
		case unicode.IsLetter(r):
			prevSpace = false
		default:
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
