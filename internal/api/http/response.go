package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/service"
)

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type inviteResponse struct {
	OK      bool   `json:"ok"`
	MailOK  bool   `json:"mailOk"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logger.Error("Failed to write JSON response", "error", err)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{OK: false, Error: msg})
}

// writeError maps service errors onto their HTTP status. Anything unrecognised is a 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *service.ValidationError
		authzErr      *service.AuthzError
		persistErr    *service.PersistenceError
	)
	switch {
	case errors.As(err, &validationErr):
		writeErrorMessage(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &authzErr):
		writeErrorMessage(w, authzErr.StatusCode(), authzErr.Error())
	case errors.As(err, &persistErr):
		writeErrorMessage(w, http.StatusInternalServerError, persistErr.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}
