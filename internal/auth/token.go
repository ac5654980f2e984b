package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — единственная ошибка декодирования: подпись, срок,
// отсутствующий claim и мусорная строка неразличимы для вызывающего.
var ErrInvalidToken = errors.New("invalid or expired token")

// Codec кодирует/проверяет access-токены (HS256, claims {sub, exp}).
// Секрет и TTL задаются один раз при старте, не из глобального состояния.
type Codec struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewCodec(secret string, defaultTTL time.Duration) *Codec {
	return &Codec{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Encode выпускает токен с subject и сроком ttl; ttl<=0 — дефолт кодека.
func (c *Codec) Encode(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(c.secret)
}

// Decode проверяет подпись и обязательные claims (exp, sub),
// возвращает subject. Любой сбой — ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	var claims jwt.RegisteredClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
