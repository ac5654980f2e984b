package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec(testSecret, 30*time.Minute)

	token, err := c.Encode("user-42", 0)
	require.NoError(t, err)

	sub, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestCodecExpired(t *testing.T) {
	c := NewCodec(testSecret, 30*time.Minute)

	token, err := c.Encode("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = c.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecWrongSecret(t *testing.T) {
	c1 := NewCodec(testSecret, time.Minute)
	c2 := NewCodec("another-secret-another-secret-00", time.Minute)

	token, err := c1.Encode("user-42", 0)
	require.NoError(t, err)

	_, err = c2.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecMissingSubject(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)

	token, err := c.Encode("", 0)
	require.NoError(t, err)

	_, err = c.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecGarbage(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)
	for _, s := range []string{"", "abc", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := c.Decode(s)
		assert.ErrorIs(t, err, ErrInvalidToken, "token: %q", s)
	}
}
