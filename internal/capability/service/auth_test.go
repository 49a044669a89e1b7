package service

import (
	"context"
	"testing"
	"time"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/store"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/store/drivers/sqlite"
	"github.com/rovillalobos-slalom/capabilities/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T, st store.Store) (*AuthService, jwtx.Verifier) {
	t.Helper()

	secret := []byte("auth-service-test-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, "test-issuer")
	require.NoError(t, err)

	return &AuthService{
		Store:     st,
		Signer:    signer,
		Issuer:    "test-issuer",
		AccessTTL: time.Minute,
	}, verifier
}

func TestLoginMintsTokenWithRoleClaim(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc, verifier := newAuthService(t, st)

	_, err := svc.CreateUser(ctx, "alice@example.com", "correct horse", domain.RoleAdmin)
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, user.Role)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Email())
	require.Equal(t, "Admin", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc, _ := newAuthService(t, st)

	_, err := svc.CreateUser(ctx, "bob@example.com", "secret-pass", domain.RoleConsultant)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "bob@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "secret-pass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc, _ := newAuthService(t, st)

	_, err := svc.CreateUser(ctx, "carol@example.com", "pass-word-123", domain.RoleApprover)
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, "carol@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleApprover, user.Role)

	_, err = svc.CurrentUser(ctx, "ghost@example.com")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc, _ := newAuthService(t, st)

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "dave@example.com", "pw", domain.Role("Wizard"))
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "eve@example.com", "pw-one-two", domain.RoleConsultant)
		require.NoError(t, err)

		_, err = svc.CreateUser(ctx, "eve@example.com", "different", domain.RoleAdmin)
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("stores hash not plaintext", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, "frank@example.com", "plaintext-pw", domain.RoleConsultant)
		require.NoError(t, err)
		require.NotEqual(t, "plaintext-pw", user.PasswordHash)
		require.Contains(t, user.PasswordHash, "$argon2id$")
	})
}
