// Package validate holds the pure field validation and sanitization rules
// applied to customer contact details before they advance through the wizard
// and before they are persisted.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	specialsRe   = regexp.MustCompile(`[<>'"&]`)
	nameRe       = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneSepRe   = regexp.MustCompile(`[\s\-()]`)
	ukMobileRe   = regexp.MustCompile(`^(\+?44|0)?7\d{9}$`)
	genericTelRe = regexp.MustCompile(`^(\+?44|0)?\d{10,11}$`)
)

// Sanitize strips HTML tags and the characters <>'"& and trims surrounding
// whitespace. Sanitize is idempotent.
func Sanitize(input string) string {
	s := htmlTagRe.ReplaceAllString(input, "")
	s = specialsRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// NormalizeEmail returns the sanitized, lower-cased form of an email address.
func NormalizeEmail(input string) string {
	return strings.ToLower(Sanitize(input))
}

// NormalizePhone strips spaces, dashes and parentheses from a phone number.
func NormalizePhone(input string) string {
	return phoneSepRe.ReplaceAllString(input, "")
}

// Name validates a customer name. The sanitized form must be 2-100
// characters of letters, spaces, hyphens and apostrophes.
func Name(input string) error {
	sanitized := Sanitize(input)
	if sanitized == "" {
		return errors.New("Name is required")
	}
	if len(sanitized) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	if len(sanitized) > 100 {
		return errors.New("Name must be less than 100 characters")
	}
	if !nameRe.MatchString(sanitized) {
		return errors.New("Name can only contain letters, spaces, hyphens and apostrophes")
	}
	return nil
}

// Email validates an email address against a standard local@domain.tld
// pattern after normalization.
func Email(input string) error {
	sanitized := NormalizeEmail(input)
	if sanitized == "" {
		return errors.New("Email is required")
	}
	if !emailRe.MatchString(sanitized) {
		return errors.New("Please enter a valid email address")
	}
	if len(sanitized) > 254 {
		return errors.New("Email must be less than 254 characters")
	}
	return nil
}

// Phone validates a UK mobile number (07..., with optional +44/44/0 prefix)
// or a generic 10-11 digit national/international number, separators ignored.
func Phone(input string) error {
	sanitized := NormalizePhone(input)
	if sanitized == "" {
		return errors.New("Phone number is required")
	}
	if !ukMobileRe.MatchString(sanitized) && !genericTelRe.MatchString(sanitized) {
		return errors.New("Please enter a valid UK phone number")
	}
	return nil
}

// Contact validates all three required contact fields and returns a map of
// field name to error message. An empty map means the contact step may
// advance.
func Contact(name, email, phone string) map[string]string {
	errs := make(map[string]string)
	if err := Name(name); err != nil {
		errs["name"] = err.Error()
	}
	if err := Email(email); err != nil {
		errs["email"] = err.Error()
	}
	if err := Phone(phone); err != nil {
		errs["phone"] = err.Error()
	}
	return errs
}
