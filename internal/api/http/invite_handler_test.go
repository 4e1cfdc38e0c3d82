package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "estatespace-backend/internal/api/http"
	"estatespace-backend/internal/config"
	"estatespace-backend/internal/domain"
	"estatespace-backend/internal/repository"
	"estatespace-backend/internal/security"
	"estatespace-backend/internal/service"
)

type testServer struct {
	handler    http.Handler
	verifier   *MockTokenVerifier
	spaceRepo  *MockSpaceRepo
	inviteRepo *MockInviteRepo
	mailer     *MockMailer
}

func newTestServer() *testServer {
	ts := &testServer{
		verifier:   new(MockTokenVerifier),
		spaceRepo:  new(MockSpaceRepo),
		inviteRepo: new(MockInviteRepo),
		mailer:     new(MockMailer),
	}
	ts.handler = httpapi.NewRouter(httpapi.Dependencies{
		Guard:  service.NewAccessGuard(ts.verifier, ts.spaceRepo),
		Issuer: service.NewInvitationIssuer(ts.inviteRepo, ts.mailer, "http://localhost:5173", nil),
		Mailer: ts.mailer,
		CORS: config.CORSConfig{
			AllowedOrigins:      []string{"http://localhost:5173"},
			AllowedOriginSuffix: ".vercel.app",
		},
	})
	return ts
}

func (ts *testServer) do(method, path, authHeader, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (ts *testServer) ownerOwnsS1() {
	ts.verifier.On("VerifyToken", mock.Anything, "owner-token").Return(&domain.Identity{ID: "owner-1"}, nil)
	ts.spaceRepo.On("GetByID", mock.Anything, "S1").Return(&domain.Space{ID: "S1", OwnerID: "owner-1"}, nil)
}

func TestInviteEmail_Success(t *testing.T) {
	ts := newTestServer()
	ts.ownerOwnsS1()
	ts.inviteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	ts.mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer owner-token", `{"email":" Guest@Example.com "}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, true, body["mailOk"])
	assert.Equal(t, "Invite created and email sent", body["message"])

	ts.inviteRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invitation) bool {
		return inv.SpaceID == "S1" &&
			inv.InvitedEmail == "guest@example.com" &&
			inv.Status == domain.InvitationStatusPending &&
			!inv.Used &&
			inv.Token != ""
	}))
}

func TestInviteEmail_NotOwner(t *testing.T) {
	ts := newTestServer()
	ts.verifier.On("VerifyToken", mock.Anything, "guest-token").Return(&domain.Identity{ID: "guest-1"}, nil)
	ts.spaceRepo.On("GetByID", mock.Anything, "S1").Return(&domain.Space{ID: "S1", OwnerID: "owner-1"}, nil)

	w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer guest-token", `{"email":"guest@example.com"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, map[string]any{"ok": false, "error": "Forbidden: not space owner"}, decodeBody(t, w))
	ts.inviteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ts.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestInviteEmail_MissingEmailBeforeTokenExchange(t *testing.T) {
	for _, body := range []string{`{"email":""}`, `{"email":"   "}`, `{}`, ``} {
		ts := newTestServer()

		w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer owner-token", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]any{"ok": false, "error": "Missing email"}, decodeBody(t, w))
		ts.verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
	}
}

func TestInviteEmail_InvalidJSON(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer owner-token", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON body", decodeBody(t, w)["error"])
}

func TestInviteEmail_Unauthorized(t *testing.T) {
	t.Run("Missing Bearer Token", func(t *testing.T) {
		ts := newTestServer()

		w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "", `{"email":"guest@example.com"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, map[string]any{"ok": false, "error": "Missing Bearer Token"}, decodeBody(t, w))
		ts.verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		ts := newTestServer()
		ts.verifier.On("VerifyToken", mock.Anything, "expired").Return(nil, security.ErrExpiredToken)

		w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer expired", `{"email":"guest@example.com"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, map[string]any{"ok": false, "error": "Invalid token"}, decodeBody(t, w))
	})

	t.Run("Auth Server Down", func(t *testing.T) {
		ts := newTestServer()
		ts.verifier.On("VerifyToken", mock.Anything, "tok").Return(nil, errors.New("dial tcp: i/o timeout"))

		w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer tok", `{"email":"guest@example.com"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", decodeBody(t, w)["error"])
	})
}

func TestInviteEmail_SpaceNotFound(t *testing.T) {
	ts := newTestServer()
	ts.verifier.On("VerifyToken", mock.Anything, "owner-token").Return(&domain.Identity{ID: "owner-1"}, nil)
	ts.spaceRepo.On("GetByID", mock.Anything, "nope").Return(nil, repository.ErrNotFound)

	w := ts.do(http.MethodPost, "/spaces/nope/invite-email", "Bearer owner-token", `{"email":"guest@example.com"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"ok": false, "error": "Space not found"}, decodeBody(t, w))
}

func TestInviteEmail_PersistenceFailure(t *testing.T) {
	ts := newTestServer()
	ts.ownerOwnsS1()
	ts.inviteRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("relation \"invitations\" does not exist"))

	w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer owner-token", `{"email":"guest@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Contains(t, body["error"], "does not exist")
	ts.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestInviteEmail_MailFailureStillSucceeds(t *testing.T) {
	ts := newTestServer()
	ts.ownerOwnsS1()
	ts.inviteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	ts.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid error: status 401"))

	w := ts.do(http.MethodPost, "/spaces/S1/invite-email", "Bearer owner-token", `{"email":"guest@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		"ok":      true,
		"mailOk":  false,
		"message": "Invite created, but email could not be sent",
	}, decodeBody(t, w))
	ts.inviteRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestInviteEmail_WrongMethod(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/spaces/S1/invite-email", "Bearer owner-token", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
