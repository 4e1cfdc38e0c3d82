package security

import (
	"context"
	"errors"
	"strings"

	"estatespace-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const bearerPrefix = "Bearer "

// TokenVerifier exchanges a bearer credential for the identity it belongs to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.Identity, error)
}

// ExtractBearerToken returns the credential following the literal "Bearer " prefix.
// ok is false when the header has another shape or the credential is empty.
func ExtractBearerToken(header string) (token string, ok bool) {
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return "", false
	}
	return token, true
}
