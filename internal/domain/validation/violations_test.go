package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolations(t *testing.T) {
	v := Violations{}
	require.True(t, v.Empty())

	assert.False(t, Required("name", "   ", v))
	assert.False(t, MinLength("street", "Ru", 3, v))
	assert.True(t, MinLength("locality", "Porto", 2, v))
	assert.False(t, Check("nif", IsValidNIF("123456788"), ReasonInvalidNIF, v))

	assert.Equal(t, []string{"name", "nif", "street"}, v.Fields())
	assert.Equal(t, ReasonRequired, v["name"])
	assert.Equal(t, ReasonTooShort, v["street"])
	assert.Equal(t, ReasonInvalidNIF, v["nif"])
}

func TestViolations_FirstReasonWins(t *testing.T) {
	v := Violations{}
	MinLength("name", "", 3, v)
	v.Add("name", ReasonInvalid)

	assert.Equal(t, ReasonRequired, v["name"])
}
