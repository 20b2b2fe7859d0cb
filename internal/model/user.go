package model

type UserParams struct {
	UserID    string `db:"id"`
	Nickname  string `db:"nickname"`
	AvatarURL string `db:"avatar_url"`
}

// UserUpdatedEvent is the shape of the platform user topic payload.
type UserUpdatedEvent struct {
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_link"`
}
