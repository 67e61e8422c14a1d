package models

// Topic represents a discussion topic articles are filed under. Topics are
// seeded externally and read-only through the API.
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
	ImgURL      string `json:"img_url" db:"img_url"`
}
