package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"uwazi/internal/models"
)

// ErrUserNotFound — токен валиден, но учётки уже нет. На границе HTTP
// оба исхода дают одинаковый 401 (защита от перечисления аккаунтов).
var ErrUserNotFound = errors.New("user not found")

// UserFinder — минимальный контракт стораджа, нужный аутентификатору.
// Отсутствие записи — (nil, nil), ошибка — только сбой самого стораджа.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Authenticator превращает bearer-токен в загруженную учётную запись:
// декодирование → subject как UUID → чтение стораджа. Один read на вызов,
// без кеша. Просроченный токен отсекается до обращения к БД.
type Authenticator struct {
	codec *Codec
	users UserFinder
}

func NewAuthenticator(codec *Codec, users UserFinder) *Authenticator {
	return &Authenticator{codec: codec, users: users}
}

func (a *Authenticator) Authenticate(ctx context.Context, token string) (*models.User, error) {
	sub, err := a.codec.Decode(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	// защита от корректно подписанного токена с мусорным subject
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := a.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
