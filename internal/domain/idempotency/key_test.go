package idempotency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey_SameMinuteSameKey(t *testing.T) {
	first := time.Date(2026, 3, 14, 10, 21, 5, 0, time.UTC)
	retry := time.Date(2026, 3, 14, 10, 21, 59, 999, time.UTC)

	a := Key("auto", "Ana@Example.pt ", "aa-12-bb", first)
	b := Key("auto", "ana@example.pt", "AA 12 BB", retry)

	assert.Equal(t, a, b)
	assert.Equal(t, "auto|ana@example.pt|AA12BB|2026-03-14T10:21:00Z", a)
}

func TestNormalizeNaturalKey_ASCIIOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aa-12-bb", "AA12BB"},
		{"ÁA-12-BB", "A12BB"},
		{"AA-１２-BB", "AABB"},
		{"çé ß", ""},
		{"Zz 09", "ZZ09"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeNaturalKey(tc.in), tc.in)
	}
}

func TestKey_NextMinuteDiffers(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 21, 59, 0, time.UTC)

	assert.NotEqual(t,
		Key("auto", "ana@example.pt", "AA12BB", ts),
		Key("auto", "ana@example.pt", "AA12BB", ts.Add(time.Second)),
	)
}

func TestKey_AnonymousFallback(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 21, 0, 0, time.UTC)

	assert.Equal(t, "vida|anon||2026-03-14T10:21:00Z", Key("vida", "  ", "", ts))
}

func TestKey_BucketsInUTC(t *testing.T) {
	lisbonSummer := time.FixedZone("WEST", 3600)
	local := time.Date(2026, 7, 1, 11, 30, 30, 0, lisbonSummer)

	assert.Equal(t, "saude|anon|X|2026-07-01T10:30:00Z", Key("saude", "", "x", local))
}

func TestStableKeyAndID(t *testing.T) {
	k := StableKey("policy", "uid-1", "sim-abc")
	assert.Equal(t, "policy|uid-1|SIMABC", k)

	id := ID(k)
	assert.Len(t, id, 32)
	assert.Equal(t, id, ID(StableKey("policy", "UID-1", "sim abc")))
	assert.NotEqual(t, id, ID(StableKey("policy", "uid-2", "sim-abc")))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(map[string]any{"b": 1, "a": "x"})
	b := Fingerprint(map[string]any{"a": "x", "b": 1})
	c := Fingerprint(map[string]any{"a": "y", "b": 1})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
	assert.Equal(t, Fingerprint([]byte("%PDF-1.4")), Fingerprint([]byte("%PDF-1.4")))
}
