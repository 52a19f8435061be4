// Package alert manages users' saved searches.
package alert

import (
	"context"
	"strings"
	"time"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/domain"
)

type alertRepository interface {
	Create(ctx context.Context, a *domain.Alert) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Alert, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// Service - CRUD over saved alerts with domain validation.
type Service struct {
	repo             alertRepository
	operationTimeout time.Duration
}

// NewService - creates a new alert Service.
func NewService(repo alertRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: repo, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create validates and stores a new alert, returning its id.
func (s *Service) Create(ctx context.Context, a *domain.Alert) (int64, error) {
	if err := validate(a); err != nil {
		return 0, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, a)
}

// List returns the user's alerts.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Alert, error) {
	if userID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes an alert owned by userID.
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if id <= 0 || userID <= 0 {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.ErrNotFound
	}
	return nil
}

func validate(a *domain.Alert) error {
	if a == nil || a.UserID <= 0 || !a.Type.Valid() {
		return apperr.ErrInvalid
	}
	// a city filter without its country is meaningless
	if a.DepartureCity != nil && a.DepartureCountry == nil {
		return apperr.ErrInvalid
	}
	if a.DestinationCity != nil && a.DestinationCountry == nil {
		return apperr.ErrInvalid
	}
	for _, p := range []*string{a.DepartureCountry, a.DepartureCity, a.DestinationCountry, a.DestinationCity} {
		if p != nil && strings.TrimSpace(*p) == "" {
			return apperr.ErrInvalid
		}
	}
	return nil
}
