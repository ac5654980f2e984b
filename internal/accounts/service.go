package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"uwazi/internal/auth"
	"uwazi/internal/models"
)

var (
	// один ответ на "нет такого email" и "не тот пароль"
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
)

// Store — контракт персистентности для учёток.
// Отсутствие записи на чтении — (nil, nil); ошибка — сбой стораджа.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// Service — поток логина/регистрации поверх Store и токен-кодека.
type Service struct {
	store Store
	codec *auth.Codec
}

func NewService(store Store, codec *auth.Codec) *Service {
	return &Service{store: store, codec: codec}
}

// Login ищет учётку по email (без учёта регистра) и сверяет пароль.
// Оба провала неразличимы: ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("login lookup: %w", err)
	}
	if u == nil || !auth.VerifyPassword(password, u.HashedPassword) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.codec.Encode(u.ID.String(), 0) // TTL кодека
	if err != nil {
		return "", nil, fmt.Errorf("token encode: %w", err)
	}
	return token, u, nil
}

// Register проверяет дубликат email до хеширования, хеширует пароль
// и создаёт запись. Ошибка стораджа уходит наверх generic-ошибкой,
// транзакция отката — на стороне Store.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("registration lookup: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}

	u := &models.User{
		ID:                uuid.New(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		HashedPassword:    hashed,
		Role:              req.Role,
		ProfilePictureURL: req.ProfilePictureURL,
		IsActive:          true,
	}
	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
