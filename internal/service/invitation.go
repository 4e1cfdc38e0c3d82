package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"estatespace-backend/internal/domain"
	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/repository"
)

// InvitePath is appended to the frontend URL, followed by the token.
const InvitePath = "/auth/invite/"

// TokenGenerator returns a fresh unguessable invitation token.
type TokenGenerator func() (string, error)

// UUIDToken generates a random (version 4) UUID.
func UUIDToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// IssueResult reports a created invitation. The invitation exists whatever Mail says.
type IssueResult struct {
	Invitation *domain.Invitation
	Link       string
	Mail       Delivery
}

func (r *IssueResult) MailOK() bool { return r.Mail.OK() }

// NormalizeEmail trims and lower-cases an address. Any non-empty string is accepted.
func NormalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", &ValidationError{Kind: MissingEmail}
	}
	return strings.ToLower(email), nil
}

// InviteLink builds the redemption URL for a token.
func InviteLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + InvitePath + token
}

type invitationIssuer struct {
	inviteRepo  repository.InvitationRepository
	mailer      Mailer
	frontendURL string
	newToken    TokenGenerator
}

// NewInvitationIssuer wires the issuer. A nil newToken uses UUIDToken.
func NewInvitationIssuer(
	inviteRepo repository.InvitationRepository,
	mailer Mailer,
	frontendURL string,
	newToken TokenGenerator,
) InvitationIssuer {
	if newToken == nil {
		newToken = UUIDToken
	}
	return &invitationIssuer{
		inviteRepo:  inviteRepo,
		mailer:      mailer,
		frontendURL: frontendURL,
		newToken:    newToken,
	}
}

func (s *invitationIssuer) Issue(ctx context.Context, spaceID string, inviter *domain.Identity, rawEmail string) (*IssueResult, error) {
	email, err := NormalizeEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	token, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	inv := &domain.Invitation{
		SpaceID:      spaceID,
		InviterID:    inviter.ID,
		InvitedEmail: email,
		Token:        token,
		Status:       domain.InvitationStatusPending,
		Used:         false,
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	link := InviteLink(s.frontendURL, token)
	result := &IssueResult{
		Invitation: inv,
		Link:       link,
		Mail:       Sent(),
	}

	if err := s.mailer.Send(ctx, InvitationMessage(email, link)); err != nil {
		logger.ErrorContext(ctx, "Invitation email failed, invitation kept", "spaces_id", spaceID, "invited_email", email, "error", err)
		result.Mail = NotSent(err)
	}

	logger.InfoContext(ctx, "Invitation created", "spaces_id", spaceID, "profiles_id", inviter.ID, "mail_ok", result.MailOK())
	return result, nil
}
