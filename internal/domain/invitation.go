package domain

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRevoked  InvitationStatus = "revoked"
	InvitationStatusExpired  InvitationStatus = "expired"
)

type Invitation struct {
	SpaceID      string           `json:"spaces_id"`
	InviterID    string           `json:"profiles_id"`
	InvitedEmail string           `json:"invited_email"`
	Token        string           `json:"token"`
	Status       InvitationStatus `json:"status"`
	Used         bool             `json:"used"`
}
