package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositiveInt(t *testing.T) {
	n, ok := ParsePositiveInt("", 20)
	assert.True(t, ok)
	assert.Equal(t, 20, n)

	n, ok = ParsePositiveInt(" 3 ", 1)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	for _, bad := range []string{"0", "-1", "abc", "1.5"} {
		_, ok = ParsePositiveInt(bad, 1)
		assert.False(t, ok, bad)
	}
}

func TestOptionalFloat(t *testing.T) {
	f, ok := OptionalFloat(nil)
	assert.True(t, ok)
	assert.Nil(t, f)

	f, ok = OptionalFloat("  ")
	assert.True(t, ok)
	assert.Nil(t, f)

	f, ok = OptionalFloat("85.5")
	require.True(t, ok)
	assert.Equal(t, 85.5, *f)

	f, ok = OptionalFloat(float64(92))
	require.True(t, ok)
	assert.Equal(t, 92.0, *f)

	_, ok = OptionalFloat("ninety")
	assert.False(t, ok)
}
