package coursemart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		password, err := generatePassword()
		require.NoError(t, err)
		assert.Len(t, password, passwordLength)
		for _, r := range password {
			assert.True(t, strings.ContainsRune(passwordCharset, r))
		}
		seen[password] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pass")
	require.NoError(t, err)
	assert.NotEqual(t, "pass", hash)
	assert.True(t, checkPasswordHash("pass", hash))
	assert.False(t, checkPasswordHash("wrong", hash))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", normalizeEmail("  User@Example.COM "))
	assert.NoError(t, validateEmail("user@example.com"))
	assert.ErrorIs(t, validateEmail(""), ErrEmailNotValid)
	assert.ErrorIs(t, validateEmail("no-at-sign"), ErrEmailNotValid)
}
