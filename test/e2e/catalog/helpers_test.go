package catalog_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	caphttp "github.com/rovillalobos-slalom/capabilities/internal/capability/http"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/service"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/store/drivers/sqlite"
	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
	"github.com/rovillalobos-slalom/capabilities/pkg/idx"
	"github.com/rovillalobos-slalom/capabilities/pkg/jwtx"
)

/*
 * Common fixtures for the catalog end-to-end tests. Each test gets a
 * fully wired service (in-memory SQLite store, HS256 tokens, the real
 * router) behind an httptest server, talked to through the SDK.
 */

const (
	adminEmail      = "admin@example.com"
	adminPassword   = "Admin123!"
	approverEmail   = "approver@example.com"
	approverPass    = "Approve123!"
	consultantEmail = "carol.consultant@example.com"
	consultantPass  = "Consult123!"
)

// setupServer boots the whole stack in-process and returns an SDK
// client pointed at it.
func setupServer(t *testing.T) *capsdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("e2e-test-secret-0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, "capabilities-e2e")
	require.NoError(t, err)

	auth := &service.AuthService{
		Store:     st,
		Signer:    signer,
		Issuer:    "capabilities-e2e",
		AccessTTL: time.Hour,
	}
	caps := &service.CapabilityService{Store: st}

	seedUsers(t, auth)
	seedCatalog(t, caps)

	router := caphttp.NewRouter(verifier, "e2e", st, slog.New(slog.DiscardHandler))
	router.AuthService = auth
	router.CapabilityService = caps
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return capsdk.NewClient(srv.URL)
}

func seedUsers(t *testing.T, auth *service.AuthService) {
	t.Helper()
	ctx := context.Background()

	for _, u := range []struct {
		email, password string
		role            domain.Role
	}{
		{adminEmail, adminPassword, domain.RoleAdmin},
		{approverEmail, approverPass, domain.RoleApprover},
		{consultantEmail, consultantPass, domain.RoleConsultant},
	} {
		_, err := auth.CreateUser(ctx, u.email, u.password, u.role)
		require.NoError(t, err)
	}
}

func seedCatalog(t *testing.T, caps *service.CapabilityService) {
	t.Helper()
	ctx := context.Background()

	for _, c := range []domain.Capability{
		{
			ID:           idx.New().String(),
			Name:         "Cloud Architecture",
			Description:  "Design and implement scalable cloud solutions",
			PracticeArea: "Technology",
			Capacity:     40,
			Consultants:  []string{"alice.smith@example.com"},
		},
		{
			ID:           idx.New().String(),
			Name:         "Agile Coaching",
			Description:  "Coach teams in agile delivery",
			PracticeArea: "Delivery",
			Capacity:     20,
		},
	} {
		_, err := caps.Create(ctx, c)
		require.NoError(t, err)
	}
}

func login(t *testing.T, client *capsdk.Client, email, password string) *capsdk.Session {
	t.Helper()
	session, err := client.Login(context.Background(), email, password)
	require.NoError(t, err)
	return session
}

func requireAPIError(t *testing.T, err error, status int, detail string) {
	t.Helper()
	var apiErr *capsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, detail, apiErr.Detail)
}
