package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uwazi/internal/auth"
	"uwazi/internal/models"
)

func newTestService() *Service {
	codec := auth.NewCodec("0123456789abcdef0123456789abcdef", 30*time.Minute)
	return NewService(NewMemoryStore(), codec)
}

func validRegistration() RegisterRequest {
	return RegisterRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		PhoneNumber: "+254712345678",
		Role:        models.RoleInvestigator,
		Password:    "Sup3r!Secret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	req := validRegistration()
	require.NoError(t, req.Validate())
	u, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.NotEmpty(t, u.HashedPassword)
	assert.NotEqual(t, "Sup3r!Secret", u.HashedPassword)

	token, logged, err := svc.Login(ctx, "jane.doe@example.com", "Sup3r!Secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, logged.ID)

	// email без учёта регистра
	_, _, err = svc.Login(ctx, "Jane.Doe@Example.COM", "Sup3r!Secret")
	assert.NoError(t, err)
}

func TestLoginRejectionsIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	req := validRegistration()
	require.NoError(t, req.Validate())
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	// неверный пароль и несуществующий email — один и тот же отказ
	_, _, errWrongPass := svc.Login(ctx, "jane.doe@example.com", "WrongPass!1")
	_, _, errNoUser := svc.Login(ctx, "nobody@example.com", "Sup3r!Secret")

	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	req := validRegistration()
	require.NoError(t, req.Validate())
	first, err := svc.Register(ctx, req)
	require.NoError(t, err)

	again := validRegistration()
	require.NoError(t, again.Validate())
	_, err = svc.Register(ctx, again)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// ровно одна запись с этим email
	u, err := svc.store.FindByEmail(ctx, req.Email)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, first.ID, u.ID)
}

func TestRegisterRequestValidate(t *testing.T) {
	base := validRegistration()

	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"empty first name", func(r *RegisterRequest) { r.FirstName = " " }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"bad role", func(r *RegisterRequest) { r.Role = "superuser" }},
		{"short password", func(r *RegisterRequest) { r.Password = "Ab!" }},
		{"no uppercase", func(r *RegisterRequest) { r.Password = "sup3r!secret" }},
		{"no special char", func(r *RegisterRequest) { r.Password = "Sup3rSecret" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}

	ok := base
	require.NoError(t, ok.Validate())
	assert.Equal(t, "jane.doe@example.com", ok.Email)
}
