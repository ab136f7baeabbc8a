// Package validation screens configuration values and untrusted
// input before they reach an exec call or the terminal.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrDangerousCommand = errors.New("command name contains dangerous characters")
	ErrCommandTooLong   = errors.New("command name exceeds maximum length")
)

// Command names may be bare executables or absolute paths; anything
// the shell would interpret is rejected since the value ends up in an
// exec call.
var commandNamePattern = regexp.MustCompile(`^[A-Za-z0-9._+/-]+$`)

const MaxCommandLength = 256

// ValidateCommandName validates an executable name or path taken
// from the environment (the WINPATH_OPENER override).
func ValidateCommandName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if len(name) > MaxCommandLength {
		return ErrCommandTooLong
	}
	if !commandNamePattern.MatchString(name) {
		return ErrDangerousCommand
	}
	for _, r := range name {
		if r < 32 || r == 127 {
			return ErrDangerousCommand
		}
	}
	return nil
}

// SanitizeString strips control characters so untrusted input can be
// echoed into log output safely.
func SanitizeString(input string) string {
	var result strings.Builder
	for _, r := range input {
		if r >= 32 && r != 127 {
			result.WriteRune(r)
		}
	}
	return result.String()
}
