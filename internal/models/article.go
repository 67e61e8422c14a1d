package models

import (
	"time"
)

// Article represents an article in the system.
// The list view omits Body and carries the derived CommentCount; the single
// view includes Body and has no CommentCount, hence the omitempty tags.
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body,omitempty" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	// Derived count of comments referencing the article, serialized as a
	// string (Postgres bigint cast to text on the wire).
	CommentCount string `json:"comment_count,omitempty" db:"comment_count"`
}

// ArticleSortKeys defines the caller-overridable sort keys for article listing
var ArticleSortKeys = map[string]bool{
	"created_at": true,
}

// VoteUpdateRequest is the payload for adjusting an article's vote count
type VoteUpdateRequest struct {
	IncVotes *int `json:"inc_votes"`
}
