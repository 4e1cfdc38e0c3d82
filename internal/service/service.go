package service

import (
	"context"

	"estatespace-backend/internal/domain"
)

// AccessGuard resolves a bearer credential and checks it owns a space.
type AccessGuard interface {
	Authorize(ctx context.Context, authHeader, spaceID string) (*AuthorizedIdentity, error)
}

// InvitationIssuer creates invitations and notifies invitees by email.
type InvitationIssuer interface {
	Issue(ctx context.Context, spaceID string, inviter *domain.Identity, rawEmail string) (*IssueResult, error)
}

// Mailer hands a message to an email provider.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
