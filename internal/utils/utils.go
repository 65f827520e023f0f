package utils

import (
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateSlug builds a public shareable slug from a campaign name plus
// a short random suffix so two campaigns with the same name never clash.
func GenerateSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")

	var b strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "campaign"
	}
	return slug + "-" + uuid.NewString()[:5]
}

// NormalizePhone strips formatting characters from a phone number and
// validates what remains. The digits are the identity key for quota and
// uniqueness checks, so "+1 999-999-9999" and "19999999999" must not
// count as two different players.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
			// formatting only
		default:
			return "", errors.New("phone number contains invalid characters")
		}
	}

	normalized := b.String()
	if len(normalized) < 7 || len(normalized) > 15 {
		return "", errors.New("phone number must be 7 to 15 digits")
	}
	return normalized, nil
}
