package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"estatespace-backend/internal/config"
	"estatespace-backend/internal/service"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Guard  service.AccessGuard
	Issuer service.InvitationIssuer
	Mailer service.Mailer
	CORS   config.CORSConfig
}

// RegisterRoutes registers the API endpoints on router.
func RegisterRoutes(router *mux.Router, deps Dependencies) {
	invites := NewInviteHandler(deps.Guard, deps.Issuer)
	mailTest := NewMailTestHandler(deps.Mailer)

	router.HandleFunc("/", HandleRoot).Methods(http.MethodGet)
	router.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/spaces/{spaceId}/invite-email", invites.HandleInviteEmail).Methods(http.MethodPost)
	router.HandleFunc("/mail/test", mailTest.HandleMailTest).Methods(http.MethodPost)
}

// NewRouter returns the full handler chain: access log, panic recovery, CORS, routes.
// CORS wraps the router so preflight requests are answered before route matching.
func NewRouter(deps Dependencies) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, deps)

	return AccessLog(Recover(NewCORS(deps.CORS).Handler(router)))
}
