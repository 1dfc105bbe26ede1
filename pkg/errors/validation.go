package errors

import (
	"strings"
	"unicode"
)

// ValidateFontName validates a font name supplied by a remote caller.
// It rejects anything that could address a file outside the system font
// directories.
//
// Validation rules:
//   - No empty names
//   - Maximum length of 256 characters
//   - No null bytes or control characters
//   - No path separators or traversal sequences
func ValidateFontName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "font name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "font name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "font name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "font must be a font name, not a path: contains %q", pattern)
		}
	}

	return nil
}

// ValidateRedisURL validates a Redis connection URL.
// It ensures the URL uses a scheme go-redis understands.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeConfiguration, "redis URL cannot be empty")
	}

	for _, scheme := range []string{"redis://", "rediss://", "unix://"} {
		if strings.HasPrefix(rawURL, scheme) {
			return nil
		}
	}
	return New(ErrCodeConfiguration, "redis URL must use the redis, rediss or unix scheme")
}
