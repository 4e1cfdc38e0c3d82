package postgres

import (
	"database/sql"

	"estatespace-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.SpaceRepository
	repository.InvitationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		SpaceRepository:      NewSpaceRepository(db),
		InvitationRepository: NewInvitationRepository(db),
	}
}
