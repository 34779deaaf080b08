package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Tier bounds for student-body grouping (1 = highest)
	TierMin = 1
	TierMax = 4
)

// EventCategories is the fixed enumeration of allowed event categories.
var EventCategories = []string{"music", "dance", "arts", "cultural"}

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail checks the email format
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidEventCategory checks membership in the category enumeration
func IsValidEventCategory(category string) bool {
	for _, c := range EventCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidTier checks a student tier against the allowed range
func IsValidTier(tier int) bool {
	return tier >= TierMin && tier <= TierMax
}

// RequireNonEmpty reports which of the named fields are blank.
func RequireNonEmpty(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
