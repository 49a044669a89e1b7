package catalog_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginAndIdentity(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	t.Run("login returns bearer token with identity", func(t *testing.T) {
		session := login(t, client, adminEmail, adminPassword)
		require.NotEmpty(t, session.Token())
		require.Equal(t, adminEmail, session.Email())
		require.Equal(t, "Admin", session.Role())
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := client.Login(ctx, adminEmail, "nope")
		requireAPIError(t, err, http.StatusUnauthorized, "Incorrect email or password")
	})

	t.Run("stored token is revalidated before reuse", func(t *testing.T) {
		session := login(t, client, consultantEmail, consultantPass)

		resumed, err := client.ResumeSession(ctx, session.Token())
		require.NoError(t, err)
		require.Equal(t, consultantEmail, resumed.Email())
		require.Equal(t, "Consultant", resumed.Role())

		_, err = client.ResumeSession(ctx, "not-a-real-token")
		requireAPIError(t, err, http.StatusUnauthorized, "Could not validate credentials")
	})
}

func TestCatalogIsPublic(t *testing.T) {
	client := setupServer(t)

	catalog, err := client.Capabilities(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	cloud := catalog["Cloud Architecture"]
	require.Equal(t, "Technology", cloud.PracticeArea)
	require.Equal(t, 40, cloud.Capacity)
	require.Equal(t, []string{"alice.smith@example.com"}, cloud.Consultants)

	// Empty rosters come back as [], never null.
	require.NotNil(t, catalog["Agile Coaching"].Consultants)
	require.Empty(t, catalog["Agile Coaching"].Consultants)
}

func TestRegistrationLifecycle(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	admin := login(t, client, adminEmail, adminPassword)
	consultant := login(t, client, consultantEmail, consultantPass)

	t.Run("consultant registers themselves", func(t *testing.T) {
		msg, err := consultant.Register(ctx, "Agile Coaching", consultantEmail)
		require.NoError(t, err)
		require.Equal(t, "Registered "+consultantEmail+" for Agile Coaching", msg.Message)

		catalog, err := client.Capabilities(ctx)
		require.NoError(t, err)
		require.Contains(t, catalog["Agile Coaching"].Consultants, consultantEmail)
	})

	t.Run("consultant cannot register someone else", func(t *testing.T) {
		_, err := consultant.Register(ctx, "Agile Coaching", "someone.else@example.com")
		requireAPIError(t, err, http.StatusForbidden, "Consultants can only register themselves")
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		_, err := consultant.Register(ctx, "Agile Coaching", consultantEmail)
		requireAPIError(t, err, http.StatusBadRequest,
			"Consultant is already registered for this capability")
	})

	t.Run("admin registers any consultant", func(t *testing.T) {
		msg, err := admin.Register(ctx, "Cloud Architecture", "bob.jones@example.com")
		require.NoError(t, err)
		require.Equal(t, "Registered bob.jones@example.com for Cloud Architecture", msg.Message)
	})

	t.Run("unknown capability yields 404", func(t *testing.T) {
		_, err := admin.Register(ctx, "Quantum Baking", "bob.jones@example.com")
		requireAPIError(t, err, http.StatusNotFound, "Capability not found")
	})
}

func TestUnregistrationLifecycle(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	admin := login(t, client, adminEmail, adminPassword)
	approver := login(t, client, approverEmail, approverPass)
	consultant := login(t, client, consultantEmail, consultantPass)

	t.Run("consultant cannot unregister anyone", func(t *testing.T) {
		_, err := consultant.Unregister(ctx, "Cloud Architecture", consultantEmail)
		requireAPIError(t, err, http.StatusForbidden,
			"Access denied. Required role: Admin, Approver")
	})

	t.Run("approver removes a consultant", func(t *testing.T) {
		msg, err := approver.Unregister(ctx, "Cloud Architecture", "alice.smith@example.com")
		require.NoError(t, err)
		require.Equal(t, "Unregistered alice.smith@example.com from Cloud Architecture", msg.Message)

		catalog, err := client.Capabilities(ctx)
		require.NoError(t, err)
		require.NotContains(t, catalog["Cloud Architecture"].Consultants, "alice.smith@example.com")
	})

	t.Run("removing an absent consultant fails", func(t *testing.T) {
		_, err := admin.Unregister(ctx, "Cloud Architecture", "alice.smith@example.com")
		requireAPIError(t, err, http.StatusBadRequest,
			"Consultant is not registered for this capability")
	})
}

func TestUserProvisioning(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	admin := login(t, client, adminEmail, adminPassword)

	t.Run("admin creates a user who can then login", func(t *testing.T) {
		msg, err := admin.CreateUser(ctx, "dave@example.com", "Dave123!", "Consultant")
		require.NoError(t, err)
		require.Equal(t, "User dave@example.com registered successfully", msg.Message)

		session := login(t, client, "dave@example.com", "Dave123!")
		require.Equal(t, "Consultant", session.Role())
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := admin.CreateUser(ctx, adminEmail, "whatever", "Consultant")
		requireAPIError(t, err, http.StatusBadRequest, "User already exists")
	})

	t.Run("non-admin cannot create users", func(t *testing.T) {
		approver := login(t, client, approverEmail, approverPass)
		_, err := approver.CreateUser(ctx, "eve@example.com", "Eve123!", "Consultant")
		requireAPIError(t, err, http.StatusForbidden, "Access denied. Required role: Admin")
	})
}

func TestHealthEndpoints(t *testing.T) {
	client := setupServer(t)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "e2e", health.Version)
}
