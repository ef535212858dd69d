package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJoinCode(t *testing.T) {
	code, err := GenerateJoinCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.Contains(t, joinCodeAlphabet, string(c))
	}

	// Ambiguous characters never appear
	for i := 0; i < 50; i++ {
		code, err := GenerateJoinCode(8)
		require.NoError(t, err)
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
	}
}

func TestGenerateJoinCodeUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateJoinCode(6)
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestNormalizeJoinCode(t *testing.T) {
	assert.Equal(t, "ABC234", NormalizeJoinCode("  abc234 "))
	assert.Equal(t, "ABC234", NormalizeJoinCode("ABC234"))
	assert.Equal(t, "", NormalizeJoinCode("   "))
	assert.Equal(t, strings.ToUpper("xyz789"), NormalizeJoinCode("xyz789"))
}
