package validation

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Reason codes attached to a field in Violations.
const (
	ReasonRequired      = "required"
	ReasonTooShort      = "too_short"
	ReasonInvalid       = "invalid"
	ReasonInvalidNIF    = "invalid_nif"
	ReasonInvalidIBAN   = "invalid_iban"
	ReasonInvalidPostal = "invalid_postal_code"
	ReasonInvalidCC     = "invalid_citizen_card"
	ReasonInvalidPhone  = "invalid_phone"
	ReasonInvalidEmail  = "invalid_email"
)

// Violations maps a field identifier to the first reason it failed.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records reason for field unless the field already failed.
func (v Violations) Add(field, reason string) {
	if _, exists := v[field]; !exists {
		v[field] = reason
	}
}

// Fields returns the failing field identifiers in a stable order.
func (v Violations) Fields() []string {
	out := make([]string, 0, len(v))
	for f := range v {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func Required(field, value string, v Violations) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, ReasonRequired)
		return false
	}
	return true
}

// MinLength requires a non-empty value of at least n runes after trimming.
func MinLength(field, value string, n int, v Violations) bool {
	if !Required(field, value, v) {
		return false
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		v.Add(field, ReasonTooShort)
		return false
	}
	return true
}

// Check records reason for field when ok is false.
func Check(field string, ok bool, reason string, v Violations) bool {
	if !ok {
		v.Add(field, reason)
	}
	return ok
}
