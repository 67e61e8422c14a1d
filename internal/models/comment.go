package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentSortKeys defines the caller-overridable sort keys for comment listing
var CommentSortKeys = map[string]bool{
	"created_at": true,
}

// NewCommentRequest is the payload for posting a comment to an article
type NewCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}
