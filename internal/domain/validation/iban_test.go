package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIBAN(t *testing.T) {
	cases := []struct {
		name string
		iban string
		want bool
	}{
		{name: "valid portuguese iban", iban: "PT50000201231234567890154", want: true},
		{name: "checksum mismatch", iban: "PT50000201231234567890155", want: false},
		{name: "too short", iban: "PT50000201231234567890", want: false},
		{name: "foreign iban", iban: "GB82WEST12345698765432", want: false},
		{name: "lower case country", iban: "pt50000201231234567890154", want: false},
		{name: "with blanks is not normalized here", iban: "PT50 0002 0123 1234 5678 9015 4", want: false},
		{name: "empty", iban: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidIBAN(tc.iban))
		})
	}
}

func TestNormalizeIBAN(t *testing.T) {
	got := NormalizeIBAN(" pt50 0002 0123 1234 5678 9015 4 ")
	assert.Equal(t, "PT50000201231234567890154", got)
	assert.True(t, IsValidIBAN(got))
}
