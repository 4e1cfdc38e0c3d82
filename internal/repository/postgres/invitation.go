package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"estatespace-backend/internal/domain"
	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/repository"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `INSERT INTO invitations (spaces_id, profiles_id, invited_email, token, status, used) 
	          VALUES ($1, $2, $3, $4, $5, $6)`
	logger.DatabaseCall("INSERT", query, "spaces_id", inv.SpaceID)
	res, err := r.db.ExecContext(ctx, query, inv.SpaceID, inv.InviterID, inv.InvitedEmail, inv.Token, string(inv.Status), inv.Used)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "spaces_id", inv.SpaceID)
		return fmt.Errorf("failed to insert invitation: %w", err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("INSERT", n, nil, "spaces_id", inv.SpaceID)
	return nil
}
