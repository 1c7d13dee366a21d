package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

const (
	MaxNameLength     = 100
	MaxItemNameLength = 120
	MaxEmailLength    = 254

	MinAge = 18
	MaxAge = 120
)

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateName checks a display name: non-blank and within MaxNameLength.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}
	return nil
}

// ValidateItemName checks the name of a breakdown item.
func ValidateItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxItemNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxItemNameLength)
	}
	return nil
}

// ValidateEmail checks that email is a single bare address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email cannot exceed %d characters", MaxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email: %s", email)
	}
	return nil
}

// IsValidAge reports whether age lies in [MinAge, MaxAge].
func IsValidAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}

// OneOf reports whether value is one of allowed.
func OneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
