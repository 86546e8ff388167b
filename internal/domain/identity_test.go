package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp_FixedWidthSortsLexicographically(t *testing.T) {
	// A fraction with trailing zeros must not collapse, or string ordering
	// would diverge from time ordering.
	earlier := time.Date(2024, 5, 1, 10, 0, 0, 500_000_000, time.UTC)
	later := time.Date(2024, 5, 1, 10, 0, 0, 510_000_000, time.UTC)

	a, b := Timestamp(earlier), Timestamp(later)
	assert.Len(t, a, len(b))
	assert.Less(t, a, b)
}

func TestTimestamp_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	ts := Timestamp(time.Date(2024, 5, 1, 12, 0, 0, 0, loc))
	assert.Equal(t, "2024-05-01T10:00:00.000000000Z", ts)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "EMAIL#a@b.com", EmailPK("a@b.com"))
	assert.Equal(t, "USER#u1", UserPK("u1"))
	assert.Equal(t, "TOSS#2024-05-01T10:00:00.000000000Z#t1", TossSK("2024-05-01T10:00:00.000000000Z", "t1"))
}
