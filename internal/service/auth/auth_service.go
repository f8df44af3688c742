package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	derrors "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/google/uuid"
)

// Заглушка входа: одна пара логин/пароль из конфига, сессии лежат в KV.
// Это не граница безопасности.

const sessionKeyPrefix = "crypto-session:"

type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	IsAuthenticated(ctx context.Context, token string) bool
}

// SessionStore - хранилище ключ-значение для отметок сессий
type SessionStore interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Credentials struct {
	Email    string
	Password string
}

type service struct {
	store    SessionStore
	creds    Credentials
	newToken func() string
	logger   *slog.Logger
}

func NewService(store SessionStore, creds Credentials, logger *slog.Logger) Service {
	return &service{
		store:    store,
		creds:    creds,
		newToken: func() string { return uuid.NewString() },
		logger:   logger,
	}
}

// Login - email сравнивается без учёта регистра, пароль точно
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := strings.EqualFold(strings.TrimSpace(email), s.creds.Email)
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !emailOK || !passOK {
		s.logger.Warn("login rejected", slog.String("email", email))
		return "", derrors.ErrInvalidCredentials
	}

	token := s.newToken()
	if err := s.store.Write(ctx, sessionKey(token), "true"); err != nil {
		s.logger.Error("failed to save session", slog.Any("err", err))
		return "", derrors.ErrInternal
	}
	s.logger.Info("user logged in", slog.String("email", s.creds.Email))
	return token, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return derrors.ErrUnauthorized
	}
	if err := s.store.Delete(ctx, sessionKey(token)); err != nil {
		s.logger.Error("failed to drop session", slog.Any("err", err))
		return derrors.ErrInternal
	}
	return nil
}

// IsAuthenticated - ошибка чтения считается отсутствием сессии
func (s *service) IsAuthenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	v, ok, err := s.store.Read(ctx, sessionKey(token))
	if err != nil {
		s.logger.Warn("session lookup failed", slog.Any("err", err))
		return false
	}
	return ok && v == "true"
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
