package accounts

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"uwazi/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type RegisterRequest struct {
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phone_number"`
	Role              models.UserRole `json:"role"`
	ProfilePictureURL string          `json:"profile_picture_url"`
	Password          string          `json:"password"`
}

const specialChars = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/`~"

// Validate нормализует поля и проверяет профиль и пароль
// (правила пароля — как в форме регистрации фронтенда).
func (r *RegisterRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)

	switch {
	case r.FirstName == "":
		return errors.New("first_name is required")
	case r.LastName == "":
		return errors.New("last_name is required")
	case r.Email == "" || !strings.Contains(r.Email, "@"):
		return errors.New("a valid email is required")
	case r.PhoneNumber == "":
		return errors.New("phone_number is required")
	case !r.Role.Valid():
		return errors.New("role must be one of: admin, investigator, supplier, procurement_officer")
	}
	return validatePassword(r.Password)
}

func validatePassword(p string) error {
	if len(p) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	hasUpper := false
	for _, c := range p {
		if unicode.IsUpper(c) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(p, specialChars) {
		return errors.New("password must contain at least one special character")
	}
	return nil
}

// UserResponse — санитизированная проекция учётки: поля перечислены
// явно, чтобы новое поле модели не утекло в ответ по умолчанию.
type UserResponse struct {
	ID                uuid.UUID       `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phone_number"`
	Role              models.UserRole `json:"role"`
	ProfilePictureURL string          `json:"profile_picture_url,omitempty"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		PhoneNumber:       u.PhoneNumber,
		Role:              u.Role,
		ProfilePictureURL: u.ProfilePictureURL,
		IsActive:          u.IsActive,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"` // всегда "bearer"
	User        UserResponse `json:"user"`
}
