package utils

import "regexp"

var (
	// emailRE is deliberately loose; the mail system is the real validator.
	emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// phoneRE matches the 10-digit Indian mobile format used on the forms.
	phoneRE = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	dateRE  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailRE.MatchString(s) }

// ValidPhone reports whether s is a 10-digit mobile number.
func ValidPhone(s string) bool { return phoneRE.MatchString(s) }

// ValidDate reports whether s is a YYYY-MM-DD date string.
func ValidDate(s string) bool { return dateRE.MatchString(s) }
