package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/store"
	"github.com/rovillalobos-slalom/capabilities/pkg/cryptox"
	"github.com/rovillalobos-slalom/capabilities/pkg/idx"
	"github.com/rovillalobos-slalom/capabilities/pkg/jwtx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrUserExists         = errors.New("user_already_exists")
)

type AuthService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Login verifies the credentials and mints a signed access token carrying the
// user's email as the subject and the role as a custom claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)
	email = strings.TrimSpace(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash compare anyway so lookups and mismatches take
			// similar time.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("email", email))
		return "", domain.User{}, ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(user.Email, string(user.Role), s.Issuer, s.AccessTTL, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, err
	}

	l.Info("login succeeded",
		slog.String("email", user.Email),
		slog.String("role", string(user.Role)),
	)
	return token, user, nil
}

// CurrentUser resolves the authenticated subject back to its user record. A
// valid token whose user has since been deleted yields ErrInvalidCredentials.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	return user, nil
}

// CreateUser provisions a new account. The caller is expected to have already
// enforced admin-only access.
func (s *AuthService) CreateUser(ctx context.Context, email, password string, role domain.Role) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if !role.Valid() {
		return domain.User{}, ErrInvalidRole
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, err
	}

	l.Info("user created",
		slog.String("email", user.Email),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}
