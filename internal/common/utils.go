package common

import (
	"fmt"
	"regexp"
	"strings"
)

// accountPattern matches a plausible profile handle: letters, digits,
// dots and underscores, up to the platform's 30-character limit.
var accountPattern = regexp.MustCompile(`^[A-Za-z0-9._]{1,30}$`)

// SanitizeAccount cleans up a user-supplied account identifier, handling
// common copy-paste shapes: a leading '@', surrounding whitespace, or a
// full profile URL.
func SanitizeAccount(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "https://www.instagram.com/")
	cleaned = strings.TrimPrefix(cleaned, "https://instagram.com/")
	cleaned = strings.TrimSuffix(cleaned, "/")
	cleaned = strings.TrimPrefix(cleaned, "@")
	return cleaned
}

// ValidateAccount reports whether a sanitized account identifier is
// usable.
func ValidateAccount(account string) error {
	if account == "" {
		return fmt.Errorf("account identifier is required")
	}
	if !accountPattern.MatchString(account) {
		return fmt.Errorf("invalid account identifier %q", account)
	}
	return nil
}
