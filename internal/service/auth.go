package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/config"
)

const adminSubject = "admin"

// AuthGate guards the admin surface with a single shared secret. A correct
// secret is exchanged for a short-lived signed token.
type AuthGate interface {
	CheckSecret(secret string) bool
	Login(secret string) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) error
}

type authGate struct {
	cfg config.Admin
	now func() time.Time
}

func NewAuthGate(cfg config.Admin) AuthGate {
	return &authGate{
		cfg: cfg,
		now: time.Now,
	}
}

func (a *authGate) CheckSecret(secret string) bool {
	if secret == "" {
		return false
	}
	if a.cfg.SecretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.cfg.SecretHash), []byte(secret)) == nil
	}
	if a.cfg.Secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.cfg.Secret), []byte(secret)) == 1
}

func (a *authGate) Login(secret string) (string, time.Time, error) {
	if !a.CheckSecret(secret) {
		return "", time.Time{}, ErrAuthFailed
	}
	if a.cfg.JWTSecretKey == "" {
		return "", time.Time{}, errors.New("token signing key not configured")
	}

	now := a.now()
	expiresAt := now.Add(a.cfg.AccessTokenDuration)
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(a.cfg.JWTSecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

func (a *authGate) ValidateToken(tokenString string) error {
	if a.cfg.JWTSecretKey == "" {
		return ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.cfg.JWTSecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(adminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
