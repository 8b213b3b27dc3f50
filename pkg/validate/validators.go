// Package validate holds the field-level validators used while collecting
// customer information. Each validator returns the specific reason shown back
// to the user, never a generic failure.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneCleaner   = regexp.MustCompile(`[\s\-\(\)\.]`)
	usPhonePattern = regexp.MustCompile(`^(\+1)?[2-9]\d{9}$`)
	intlPattern    = regexp.MustCompile(`^\+\d{10,15}$`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
)

// Email validates the local@domain.tld shape plus length and dot rules.
func Email(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return false, "Please enter a valid email address (e.g., john@example.com)"
	}
	if strings.Count(email, "@") != 1 {
		return false, "Email must contain exactly one @ symbol"
	}
	parts := strings.SplitN(email, "@", 2)
	local, domain := parts[0], parts[1]
	if len(local) > 64 {
		return false, "Email username is too long"
	}
	if len(domain) > 255 {
		return false, "Email domain is too long"
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false, "Email domain cannot start or end with a dot"
	}
	if strings.Contains(email, "..") {
		return false, "Email cannot contain consecutive dots"
	}
	return true, ""
}

// Phone accepts 10-digit US numbers (optionally +1 prefixed, first digit 2-9)
// or international +-prefixed 10-15 digit numbers. Formatting characters are
// stripped before matching.
func Phone(phone string) (bool, string) {
	if strings.TrimSpace(phone) == "" {
		return false, "Phone number is required"
	}
	cleaned := phoneCleaner.ReplaceAllString(phone, "")

	if usPhonePattern.MatchString(cleaned) || intlPattern.MatchString(cleaned) {
		return true, ""
	}

	bare := strings.TrimPrefix(cleaned, "+")
	switch {
	case len(bare) < 10:
		return false, "Phone number is too short. Please include area code."
	case len(bare) > 15:
		return false, "Phone number is too long."
	case !digitsOnly.MatchString(bare):
		return false, "Phone number can only contain digits and formatting characters."
	default:
		return false, "Please enter a valid phone number (e.g., 555-123-4567 or +1-555-123-4567)"
	}
}

var addressKeywords = []string{
	"street", "st", "avenue", "ave", "road", "rd", "drive", "dr",
	"lane", "ln", "boulevard", "blvd", "court", "ct", "place", "pl",
	"way", "circle", "cir", "plaza", "square", "parkway", "pkwy",
	"apartment", "apt", "suite", "ste", "unit", "#",
}

var dangerousPatterns = []string{
	"<script", "javascript:", "onclick", "drop table", "delete from", "--",
}

// Address is a heuristic street-address sanity check, not a postal validator:
// minimum length, a street number, and no obvious injection markers.
func Address(address string) (bool, string) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return false, "Address is required"
	}
	if len(trimmed) < 10 {
		return false, "Please enter a complete address"
	}

	lower := strings.ToLower(trimmed)
	for _, p := range dangerousPatterns {
		if strings.Contains(lower, p) {
			return false, "Invalid characters detected in address"
		}
	}

	hasDigit := strings.ContainsAny(trimmed, "0123456789")
	if !hasDigit {
		return false, "Please include a street number in your address"
	}

	hasKeyword := false
	for _, kw := range addressKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword && len(strings.Fields(trimmed)) < 3 {
		return false, "Please enter a complete street address"
	}

	return true, ""
}
