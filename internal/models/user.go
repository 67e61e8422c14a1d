package models

// User represents a user account. The API only ever checks existence of a
// username before accepting a comment; user records are never mutated here.
type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}
