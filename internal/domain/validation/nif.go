// Package validation holds pure predicates for Portuguese identity and
// financial fields. Nothing here performs I/O; field-level messages are left
// to the presentation layer.
package validation

// nifLeadingDigits are the first digits accepted for a personal or
// collective taxpayer number.
var nifLeadingDigits = map[byte]bool{
	'1': true, '2': true, '3': true, '5': true, '6': true, '8': true, '9': true,
}

// IsValidNIF checks the 9-digit taxpayer number and its mod-11 check digit.
func IsValidNIF(nif string) bool {
	if len(nif) != 9 || !isDigits(nif) {
		return false
	}
	if !nifLeadingDigits[nif[0]] {
		return false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(nif[i]-'0') * (9 - i)
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return int(nif[8]-'0') == check
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
