package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var ptIBANPattern = regexp.MustCompile(`^PT\d{23}$`)

// mod97BlockSize keeps every intermediate value (2-digit remainder + block)
// well inside int64.
const mod97BlockSize = 7

// NormalizeIBAN removes blanks and upper-cases the country code.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// IsValidIBAN validates a Portuguese IBAN (NIB) structurally and with the
// ISO 7064 mod-97 checksum. It says nothing about who owns the account.
func IsValidIBAN(iban string) bool {
	if !ptIBANPattern.MatchString(iban) {
		return false
	}

	rotated := iban[4:] + iban[:4]
	var digits strings.Builder
	for _, r := range rotated {
		if r >= 'A' && r <= 'Z' {
			digits.WriteString(strconv.Itoa(int(r) - 55))
			continue
		}
		digits.WriteRune(r)
	}

	return mod97(digits.String()) == 1
}

func mod97(digits string) int {
	remainder := ""
	for i := 0; i < len(digits); i += mod97BlockSize {
		end := i + mod97BlockSize
		if end > len(digits) {
			end = len(digits)
		}
		n, err := strconv.ParseInt(remainder+digits[i:end], 10, 64)
		if err != nil {
			return -1
		}
		remainder = strconv.FormatInt(n%97, 10)
	}
	n, _ := strconv.Atoi(remainder)
	return n
}
