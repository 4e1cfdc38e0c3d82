package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/service"
)

const (
	msgInviteMailed    = "Invite created and email sent"
	msgInviteNotMailed = "Invite created, but email could not be sent"
)

type inviteEmailRequest struct {
	Email string `json:"email"`
}

// InviteHandler serves email invitations to a space
type InviteHandler struct {
	guard  service.AccessGuard
	issuer service.InvitationIssuer
}

func NewInviteHandler(guard service.AccessGuard, issuer service.InvitationIssuer) *InviteHandler {
	return &InviteHandler{
		guard:  guard,
		issuer: issuer,
	}
}

// HandleInviteEmail handles POST /spaces/{spaceId}/invite-email.
// The email is checked before the bearer token so a bad body costs no remote call.
func (h *InviteHandler) HandleInviteEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	spaceID := mux.Vars(r)["spaceId"]

	var req inviteEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if _, err := service.NormalizeEmail(req.Email); err != nil {
		writeError(w, err)
		return
	}

	auth, err := h.guard.Authorize(ctx, r.Header.Get("Authorization"), spaceID)
	if err != nil {
		logger.InfoContext(ctx, "Invite rejected", "spaces_id", spaceID, "reason", err.Error())
		writeError(w, err)
		return
	}

	res, err := h.issuer.Issue(ctx, spaceID, auth.Identity, req.Email)
	if err != nil {
		logger.ErrorContext(ctx, "Invite failed", "spaces_id", spaceID, "error", err)
		writeError(w, err)
		return
	}

	msg := msgInviteMailed
	if !res.MailOK() {
		msg = msgInviteNotMailed
	}
	writeJSON(w, http.StatusOK, inviteResponse{
		OK:      true,
		MailOK:  res.MailOK(),
		Message: msg,
	})
}
