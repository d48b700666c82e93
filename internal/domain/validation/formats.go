package validation

import (
	"regexp"
	"strings"
)

var (
	postalCodePattern  = regexp.MustCompile(`^\d{4}-\d{3}$`)
	citizenCardPattern = regexp.MustCompile(`^\d{8} \d [A-Z]{2}\d$`)
	emailPattern       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigits          = regexp.MustCompile(`\D`)
)

// phoneDigits is a digit count only; carrier prefixes are not checked.
const phoneDigits = 9

func IsValidPostalCode(code string) bool {
	return postalCodePattern.MatchString(code)
}

// IsValidCitizenCard expects "DDDDDDDD D LLD"; letters are case-insensitive.
func IsValidCitizenCard(number string) bool {
	return citizenCardPattern.MatchString(NormalizeCitizenCard(number))
}

func NormalizeCitizenCard(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

func IsValidPhone(phone string) bool {
	return len(nonDigits.ReplaceAllString(phone, "")) == phoneDigits
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
