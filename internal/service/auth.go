package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/antonio25x/pet-cheap/internal/storage"
)

// AuthService issues and parses session tokens. Identity provisioning is
// delegated; this only gates requests, admin routes in particular.
type AuthService interface {
	Login(email, password string) (string, error) // returns JWT
	ParseToken(token string) (string, error)      // returns userID
}

type authService struct {
	store  storage.Storage
	secret []byte
}

func NewAuthService(store storage.Storage, secret string) AuthService {
	return &authService{store: store, secret: []byte(secret)}
}

func (a *authService) Login(email, password string) (string, error) {
	u, err := a.store.GetUserByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID,
		"typ": "session",
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	return t.SignedString(a.secret)
}

func (a *authService) ParseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims["typ"] != "session" {
		return "", errors.New("invalid token type")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("invalid sub")
	}
	return sub, nil
}
