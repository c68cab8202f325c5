package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Compiled regular expressions for validation
var (
	// Canton names: letters (any script), spaces, dots, apostrophes and hyphens
	validCantonPattern = regexp.MustCompile(`^\p{L}[\p{L}\p{M} .'-]*$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ErrUnknownCanton is reported for well-formed names that are not one of the
// 26 cantons.
var ErrUnknownCanton = errors.New("unknown canton")

// ValidateCantonName sanitizes a canton name taken from a request and
// returns it in Unicode NFC form.
func ValidateCantonName(name string) (string, error) {
	if len(name) > 100 {
		return "", errors.New("canton too long (max 100 characters)")
	}

	sanitized := norm.NFC.String(SanitizeInput(name))
	if sanitized == "" {
		return "", errors.New("canton cannot be empty")
	}

	if !validCantonPattern.MatchString(sanitized) {
		return "", errors.New("canton contains invalid characters")
	}

	return sanitized, nil
}

// ValidatePaging validates limit/offset pairs of list endpoints.
func ValidatePaging(limit, offset, maxLimit int) map[string][]string {
	fieldErrors := make(map[string][]string)

	if limit < 1 || limit > maxLimit {
		fieldErrors["limit"] = append(fieldErrors["limit"], fmt.Sprintf("limit must be between 1 and %d", maxLimit))
	}

	if offset < 0 {
		fieldErrors["offset"] = append(fieldErrors["offset"], "offset must be non-negative")
	}

	return fieldErrors
}

// ValidateChoice checks value against a fixed set of allowed values.
func ValidateChoice(field, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}
