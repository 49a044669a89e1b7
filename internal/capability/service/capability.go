package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/store"
	"github.com/rovillalobos-slalom/capabilities/pkg/idx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"
)

var (
	ErrCapabilityNotFound  = errors.New("capability_not_found")
	ErrCapabilityExists    = errors.New("capability_already_exists")
	ErrAlreadyRegistered   = errors.New("consultant_already_registered")
	ErrNotRegistered       = errors.New("consultant_not_registered")
	ErrRegisterOtherDenied = errors.New("cannot_register_others")
)

type CapabilityService struct {
	Store store.Store
}

// List returns every capability with its roster, ordered by name.
func (s *CapabilityService) List(ctx context.Context) ([]domain.Capability, error) {
	return s.Store.Capabilities().ListCapabilities(ctx)
}

// Get returns a single capability by its public name.
func (s *CapabilityService) Get(ctx context.Context, name string) (domain.Capability, error) {
	cap, err := s.Store.Capabilities().GetCapabilityByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Capability{}, ErrCapabilityNotFound
		}
		return domain.Capability{}, err
	}
	return cap, nil
}

// Create adds a new capability to the catalog.
func (s *CapabilityService) Create(ctx context.Context, cap domain.Capability) (domain.Capability, error) {
	cap.ID = idx.New().String()
	cap.Name = strings.TrimSpace(cap.Name)

	if err := s.Store.Capabilities().CreateCapability(ctx, cap); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Capability{}, ErrCapabilityExists
		}
		return domain.Capability{}, err
	}
	return s.Get(ctx, cap.Name)
}

// Register adds a consultant to the capability's roster. Consultants may
// only register themselves; Admins and Approvers may register anyone.
func (s *CapabilityService) Register(
	ctx context.Context,
	name, email string,
	actor string,
	actorRole domain.Role,
) (domain.Capability, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if !actorRole.CanRegisterOthers() && !strings.EqualFold(email, actor) {
		return domain.Capability{}, ErrRegisterOtherDenied
	}

	var result domain.Capability
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cap, err := tx.Capabilities().GetCapabilityByName(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCapabilityNotFound
			}
			return err
		}

		if err := tx.Capabilities().AddConsultant(ctx, cap.ID, email); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyRegistered
			}
			return err
		}

		result, err = tx.Capabilities().GetCapabilityByName(ctx, name)
		return err
	})
	if err != nil {
		return domain.Capability{}, err
	}

	l.Info("consultant registered",
		slog.String("capability", name),
		slog.String("email", email),
		slog.String("actor", actor),
	)
	return result, nil
}

// Unregister removes a consultant from the capability's roster. Route-level
// authorization restricts this to Admins and Approvers.
func (s *CapabilityService) Unregister(
	ctx context.Context,
	name, email string,
	actor string,
) (domain.Capability, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)

	var result domain.Capability
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cap, err := tx.Capabilities().GetCapabilityByName(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCapabilityNotFound
			}
			return err
		}

		if err := tx.Capabilities().RemoveConsultant(ctx, cap.ID, email); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotRegistered
			}
			return err
		}

		result, err = tx.Capabilities().GetCapabilityByName(ctx, name)
		return err
	})
	if err != nil {
		return domain.Capability{}, err
	}

	l.Info("consultant unregistered",
		slog.String("capability", name),
		slog.String("email", email),
		slog.String("actor", actor),
	)
	return result, nil
}
