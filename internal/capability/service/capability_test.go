package service

import (
	"context"
	"testing"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/stretchr/testify/require"
)

func seedCapability(t *testing.T, svc *CapabilityService, name string) domain.Capability {
	t.Helper()

	cap, err := svc.Create(context.Background(), domain.Capability{
		Name:              name,
		Description:       "Cloud platform design and delivery",
		PracticeArea:      "Technology Enablement",
		IndustryVerticals: []string{"Healthcare", "Retail"},
		Certifications:    []string{"AWS Solutions Architect"},
		Capacity:          40,
	})
	require.NoError(t, err)
	return cap
}

func TestListOrdersByName(t *testing.T) {
	ctx := context.Background()
	svc := &CapabilityService{Store: newTestStore(t)}

	seedCapability(t, svc, "Zero Trust Security")
	seedCapability(t, svc, "Cloud Strategy")
	seedCapability(t, svc, "Machine Learning")

	caps, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, caps, 3)
	require.Equal(t, "Cloud Strategy", caps[0].Name)
	require.Equal(t, "Machine Learning", caps[1].Name)
	require.Equal(t, "Zero Trust Security", caps[2].Name)
}

func TestRegisterPreservesRosterOrder(t *testing.T) {
	ctx := context.Background()
	svc := &CapabilityService{Store: newTestStore(t)}
	seedCapability(t, svc, "Data Engineering")

	_, err := svc.Register(ctx, "Data Engineering", "first@example.com", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Data Engineering", "second@example.com", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	cap, err := svc.Register(ctx, "Data Engineering", "third@example.com", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	require.Equal(t, []string{"first@example.com", "second@example.com", "third@example.com"}, cap.Consultants)
}

func TestRegisterConsultantSelfOnly(t *testing.T) {
	ctx := context.Background()
	svc := &CapabilityService{Store: newTestStore(t)}
	seedCapability(t, svc, "Agile Coaching")

	t.Run("consultant may register themselves", func(t *testing.T) {
		cap, err := svc.Register(ctx, "Agile Coaching", "me@example.com", "me@example.com", domain.RoleConsultant)
		require.NoError(t, err)
		require.Contains(t, cap.Consultants, "me@example.com")
	})

	t.Run("consultant cannot register someone else", func(t *testing.T) {
		_, err := svc.Register(ctx, "Agile Coaching", "victim@example.com", "me@example.com", domain.RoleConsultant)
		require.ErrorIs(t, err, ErrRegisterOtherDenied)
	})

	t.Run("email comparison is case-insensitive", func(t *testing.T) {
		cap, err := svc.Register(ctx, "Agile Coaching", "Mixed@Example.com", "mixed@example.com", domain.RoleConsultant)
		require.NoError(t, err)
		require.Contains(t, cap.Consultants, "Mixed@Example.com")
	})

	t.Run("approver may register anyone", func(t *testing.T) {
		cap, err := svc.Register(ctx, "Agile Coaching", "anyone@example.com", "approver@example.com", domain.RoleApprover)
		require.NoError(t, err)
		require.Contains(t, cap.Consultants, "anyone@example.com")
	})
}

func TestRegisterErrors(t *testing.T) {
	ctx := context.Background()
	svc := &CapabilityService{Store: newTestStore(t)}
	seedCapability(t, svc, "Product Management")

	t.Run("unknown capability", func(t *testing.T) {
		_, err := svc.Register(ctx, "No Such Thing", "a@example.com", "admin@example.com", domain.RoleAdmin)
		require.ErrorIs(t, err, ErrCapabilityNotFound)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := svc.Register(ctx, "Product Management", "dup@example.com", "admin@example.com", domain.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Product Management", "dup@example.com", "admin@example.com", domain.RoleAdmin)
		require.ErrorIs(t, err, ErrAlreadyRegistered)
	})
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()
	svc := &CapabilityService{Store: newTestStore(t)}
	seedCapability(t, svc, "UX Research")

	_, err := svc.Register(ctx, "UX Research", "stays@example.com", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "UX Research", "leaves@example.com", "admin@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	cap, err := svc.Unregister(ctx, "UX Research", "leaves@example.com", "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, []string{"stays@example.com"}, cap.Consultants)

	t.Run("unknown capability", func(t *testing.T) {
		_, err := svc.Unregister(ctx, "No Such Thing", "x@example.com", "admin@example.com")
		require.ErrorIs(t, err, ErrCapabilityNotFound)
	})

	t.Run("consultant not on roster", func(t *testing.T) {
		_, err := svc.Unregister(ctx, "UX Research", "leaves@example.com", "admin@example.com")
		require.ErrorIs(t, err, ErrNotRegistered)
	})
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc := &CapabilityService{Store: newTestStore(t)}
	seedCapability(t, svc, "Cloud Strategy")

	_, err := svc.Create(context.Background(), domain.Capability{Name: "Cloud Strategy"})
	require.ErrorIs(t, err, ErrCapabilityExists)
}
