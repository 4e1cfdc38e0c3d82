package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"estatespace-backend/internal/domain"
	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/repository"
)

type spaceRepository struct {
	db *sql.DB
}

func NewSpaceRepository(db *sql.DB) repository.SpaceRepository {
	return &spaceRepository{db: db}
}

func (r *spaceRepository) GetByID(ctx context.Context, id string) (*domain.Space, error) {
	space := &domain.Space{}
	query := `SELECT spaces_id, profiles_id FROM spaces WHERE spaces_id = $1`
	logger.DatabaseCall("SELECT", query, "spaces_id", id)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&space.ID, &space.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("SELECT", 0, nil, "spaces_id", id)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "spaces_id", id)
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	logger.DatabaseResult("SELECT", 1, nil, "spaces_id", id)
	return space, nil
}
