package handlers

import "strings"

// Validation limits.
const (
	MaxEmailLength    = 254
	MaxUsernameLength = 64
	MaxPasswordLength = 128
)

// SanitizeEmail trims and lowercases email; returns empty if over max length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizeUsername trims the username; returns empty if over max length.
func SanitizeUsername(username string) string {
	s := strings.TrimSpace(username)
	if len(s) > MaxUsernameLength {
		return ""
	}
	return s
}
