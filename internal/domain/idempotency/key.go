// Package idempotency derives deduplication keys for mutating requests.
//
// A key combines the domain type, the submitter, a natural key (e.g. a vehicle
// plate) and the minute the request was made, so a retried or double-clicked
// submit lands on the same record while a genuine repeat one minute later
// does not.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// AnonymousSubmitter is used when the request carries no submitter identifier.
const AnonymousSubmitter = "anon"

const (
	separator      = "|"
	idLength       = 32
	fingerprintLen = 16
)

// Key builds the time-bucketed key for (domainType, submitter, naturalKey, ts).
func Key(domainType, submitter, naturalKey string, ts time.Time) string {
	return strings.Join([]string{
		domainType,
		NormalizeSubmitter(submitter),
		NormalizeNaturalKey(naturalKey),
		MinuteBucket(ts).Format(time.RFC3339),
	}, separator)
}

// StableKey is Key without the time bucket, for records that exist at most
// once per parent (one policy per simulation).
func StableKey(domainType, submitter, naturalKey string) string {
	return strings.Join([]string{
		domainType,
		NormalizeSubmitter(submitter),
		NormalizeNaturalKey(naturalKey),
	}, separator)
}

// ID turns a key into a fixed-length identifier usable as a primary key and
// in storage paths.
func ID(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:idLength]
}

// MinuteBucket truncates ts to the start of its UTC minute.
func MinuteBucket(ts time.Time) time.Time {
	return ts.UTC().Truncate(time.Minute)
}

func NormalizeSubmitter(submitter string) string {
	s := strings.ToLower(strings.TrimSpace(submitter))
	if s == "" {
		return AnonymousSubmitter
	}
	return s
}

// NormalizeNaturalKey keeps ASCII letters and digits only, upper-cased.
func NormalizeNaturalKey(naturalKey string) string {
	var b strings.Builder
	for _, r := range naturalKey {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Fingerprint is a short content hash of v, used as the natural key of
// mutation payloads. Map keys are sorted by encoding/json, so equal payloads
// produce equal fingerprints.
func Fingerprint(v any) string {
	var raw []byte
	switch t := v.(type) {
	case []byte:
		raw = t
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		raw = b
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
