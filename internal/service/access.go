package service

import (
	"context"
	"errors"

	"estatespace-backend/internal/domain"
	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/repository"
	"estatespace-backend/internal/security"
)

// AuthorizedIdentity is a caller proven to own the requested space.
type AuthorizedIdentity struct {
	Identity *domain.Identity
	OwnerID  string
}

type accessGuard struct {
	verifier  security.TokenVerifier
	spaceRepo repository.SpaceRepository
}

func NewAccessGuard(verifier security.TokenVerifier, spaceRepo repository.SpaceRepository) AccessGuard {
	return &accessGuard{
		verifier:  verifier,
		spaceRepo: spaceRepo,
	}
}

func (g *accessGuard) Authorize(ctx context.Context, authHeader, spaceID string) (*AuthorizedIdentity, error) {
	token, ok := security.ExtractBearerToken(authHeader)
	if !ok {
		return nil, &AuthzError{Kind: MissingCredential}
	}

	identity, err := g.verifier.VerifyToken(ctx, token)
	if err != nil || identity == nil {
		return nil, &AuthzError{Kind: InvalidCredential, Err: err}
	}

	space, err := g.spaceRepo.GetByID(ctx, spaceID)
	if err != nil || space == nil {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			logger.WarnContext(ctx, "Space lookup failed", "spaces_id", spaceID, "error", err)
		}
		return nil, &AuthzError{Kind: ResourceNotFound, Err: err}
	}

	if space.OwnerID != identity.ID {
		return nil, &AuthzError{Kind: Forbidden}
	}

	return &AuthorizedIdentity{
		Identity: identity,
		OwnerID:  space.OwnerID,
	}, nil
}
