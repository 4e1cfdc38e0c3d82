package security

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"

	"estatespace-backend/internal/domain"
	"estatespace-backend/internal/logger"
)

const supabaseUserPath = "/auth/v1/user"

type supabaseVerifier struct {
	baseURL string
	anonKey string
	client  *rest.Client
}

// NewSupabaseVerifier asks the Supabase auth server who owns a token.
// httpClient may be nil, in which case http.DefaultClient is used.
func NewSupabaseVerifier(baseURL, anonKey string, httpClient *http.Client) TokenVerifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &supabaseVerifier{
		baseURL: baseURL,
		anonKey: anonKey,
		client:  &rest.Client{HTTPClient: httpClient},
	}
}

func (v *supabaseVerifier) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	req := rest.Request{
		Method:  rest.Get,
		BaseURL: v.baseURL + supabaseUserPath,
		Headers: map[string]string{
			"Authorization": bearerPrefix + token,
			"apikey":        v.anonKey,
			"Accept":        "application/json",
		},
	}

	logger.ExternalServiceCall("supabase", "get_user")
	resp, err := v.client.SendWithContext(ctx, req)
	if err != nil {
		err = fmt.Errorf("supabase auth request failed: %w", err)
		logger.ExternalServiceResult("supabase", "get_user", err)
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		logger.ExternalServiceResult("supabase", "get_user", ErrInvalidToken, "status", resp.StatusCode)
		return nil, ErrInvalidToken
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(resp.Body), &identity); err != nil {
		err = fmt.Errorf("failed to decode supabase user: %w", err)
		logger.ExternalServiceResult("supabase", "get_user", err)
		return nil, err
	}
	if identity.ID == "" {
		logger.ExternalServiceResult("supabase", "get_user", ErrInvalidToken, "reason", "empty user id")
		return nil, ErrInvalidToken
	}

	logger.ExternalServiceResult("supabase", "get_user", nil, "user_id", identity.ID)
	return &identity, nil
}
