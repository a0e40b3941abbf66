// Package validation holds the pure field validators shared by the auth and
// profile flows. Each validator returns an empty string when the value is
// valid, or a human-readable message otherwise; none of them performs I/O.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-ZăâîșțĂÂÎȘȚ\s\-\.]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+4|0)[0-9]{9}$`)
)

// validMobilePrefixes are the Romanian mobile prefixes accepted for the
// phone field.
var validMobilePrefixes = []string{"072", "073", "074", "075", "076", "077", "078", "079"}

func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Name is required"
	}
	if len([]rune(trimmed)) < 2 {
		return "Name must be at least 2 characters"
	}
	if len([]rune(trimmed)) > 50 {
		return "Name cannot exceed 50 characters"
	}
	if !nameRe.MatchString(trimmed) {
		return "Name may only contain letters, spaces, hyphen and period"
	}
	return ""
}

func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if !emailRe.MatchString(email) {
		return "Email is not valid"
	}
	return ""
}

// ValidatePhone accepts Romanian mobile numbers: "+4" or "0" followed by
// nine digits, with a whitelisted mobile prefix. Spaces, hyphens and
// parentheses are stripped before matching.
func ValidatePhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Phone number is required"
	}

	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)

	if !phoneRe.MatchString(clean) {
		return "Phone number is not valid (e.g. 0790454647 or +40790454647)"
	}

	valid := false
	if strings.HasPrefix(clean, "+4") {
		// The national significant number follows "+4"; prefixes lose their
		// leading zero in this form.
		national := clean[2:]
		for _, prefix := range validMobilePrefixes {
			if strings.HasPrefix(national, prefix[1:]) {
				valid = true
				break
			}
		}
	} else {
		for _, prefix := range validMobilePrefixes {
			if strings.HasPrefix(clean, prefix) {
				valid = true
				break
			}
		}
	}

	if !valid {
		return "Prefix is not valid for Romania (e.g. 072, 073, 074, 075, 076, 077, 078, 079)"
	}

	return ""
}

func ValidateLocation(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return "Location is required"
	}

	lower := strings.ToLower(trimmed)
	for _, city := range RomanianCities {
		if strings.ToLower(city) == lower {
			return ""
		}
	}
	return "Please select a city from the available list"
}

func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLower {
		return "Password must contain at least one lowercase letter"
	}
	if !hasUpper {
		return "Password must contain at least one uppercase letter"
	}
	if !hasDigit {
		return "Password must contain at least one digit"
	}
	return ""
}
