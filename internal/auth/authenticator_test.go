package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uwazi/internal/models"
)

// countingFinder считает обращения к стораджу.
type countingFinder struct {
	user  *models.User
	calls int
}

func (f *countingFinder) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.calls++
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, nil
}

func TestAuthenticateOK(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)
	u := &models.User{ID: uuid.New(), Email: "a@b.com", Role: models.RoleInvestigator}
	finder := &countingFinder{user: u}
	a := NewAuthenticator(c, finder)

	token, err := c.Encode(u.ID.String(), 0)
	require.NoError(t, err)

	got, err := a.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, 1, finder.calls)
}

func TestAuthenticateExpiredSkipsStore(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)
	finder := &countingFinder{}
	a := NewAuthenticator(c, finder)

	token, err := c.Encode(uuid.NewString(), -time.Minute)
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	// просроченный токен отсекается до чтения стораджа
	assert.Equal(t, 0, finder.calls)
}

func TestAuthenticateBadSubject(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)
	finder := &countingFinder{}
	a := NewAuthenticator(c, finder)

	// подпись валидная, но subject — не UUID
	token, err := c.Encode("42", 0)
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, 0, finder.calls)
}

func TestAuthenticateUserGone(t *testing.T) {
	c := NewCodec(testSecret, time.Minute)
	finder := &countingFinder{} // пустой сторадж
	a := NewAuthenticator(c, finder)

	token, err := c.Encode(uuid.NewString(), 0)
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 1, finder.calls)
}
