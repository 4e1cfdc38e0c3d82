package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/service"
)

type mailTestRequest struct {
	To string `json:"to"`
}

// MailTestHandler sends a probe message to check the mail provider is wired up
type MailTestHandler struct {
	mailer service.Mailer
}

func NewMailTestHandler(mailer service.Mailer) *MailTestHandler {
	return &MailTestHandler{mailer: mailer}
}

// HandleMailTest handles POST /mail/test
func (h *MailTestHandler) HandleMailTest(w http.ResponseWriter, r *http.Request) {
	var req mailTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	to := strings.TrimSpace(req.To)
	if to == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Missing 'to'")
		return
	}

	if err := h.mailer.Send(r.Context(), service.TestMessage(to)); err != nil {
		logger.ErrorContext(r.Context(), "Test email failed", "to", to, "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
