package domain

type Space struct {
	ID      string `json:"spaces_id"`
	OwnerID string `json:"profiles_id"`
}
