package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail_TrimsAndLowercases(t *testing.T) {
	got, err := NormalizeEmail("  A@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got)
}

func TestNormalizeEmail_RejectsPlus(t *testing.T) {
	_, err := NormalizeEmail("a+b@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestNormalizeEmail_RejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		_, err := NormalizeEmail(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrBadRequest))
	}
}

func TestNormalizeEmail_RequiresAtSign(t *testing.T) {
	_, err := NormalizeEmail("not-an-email")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestNormalizeEmail_EquivalentInputsNormalizeIdentically(t *testing.T) {
	a, err := NormalizeEmail("User@Example.com")
	require.NoError(t, err)
	b, err := NormalizeEmail("  user@example.COM\t")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
