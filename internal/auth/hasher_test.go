package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3r!Secret")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, VerifyPassword("Sup3r!Secret", hash))
	assert.False(t, VerifyPassword("sup3r!secret", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	// соль случайная — хеши разные, но оба проверяются
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("same-password", h1))
	assert.True(t, VerifyPassword("same-password", h2))
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// битый хеш — всегда false, без паники
	for _, h := range []string{
		"",
		"plaintext",
		"$argon2id$",
		"$argon2id$v=19$m=65536,t=3,p=4$short",
		"$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$ZGlnZXN0",
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!",
	} {
		assert.False(t, VerifyPassword("whatever", h), "hash: %q", h)
	}
}
