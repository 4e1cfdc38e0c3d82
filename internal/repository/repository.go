package repository

import (
	"context"
	"errors"

	"estatespace-backend/internal/domain"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

type SpaceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Space, error)
}

type InvitationRepository interface {
	Create(ctx context.Context, invite *domain.Invitation) error
}
