// Package service implements the validation and lookup logic behind each
// endpoint. This file centralizes the typed domain errors services raise;
// translating them into wire responses happens in one place, the error
// classifier in the api package. Handlers never format error JSON themselves.
package service

import "net/http"

// RequestError is a domain error carrying the HTTP status and the
// client-safe message it must be rendered with.
type RequestError struct {
	Status int
	Msg    string
}

func (e *RequestError) Error() string {
	return e.Msg
}

var (
	// ErrBadRequest is returned when a path identifier is not a positive
	// integer literal.
	ErrBadRequest = &RequestError{Status: http.StatusBadRequest, Msg: "bad request"}

	// ErrInvalidSort is returned for an unsupported sort_by on the article
	// listing. The 404 mapping differs from the comment listing's 400; both
	// mappings are part of the public contract and must stay as they are.
	ErrInvalidSort = &RequestError{Status: http.StatusNotFound, Msg: "invalid sort"}

	// ErrInvalidCommentSort is returned for an unsupported sort_by on the
	// comment listing.
	ErrInvalidCommentSort = &RequestError{Status: http.StatusBadRequest, Msg: "invalid request"}

	// ErrArticleNotFound is returned when a well-formed article ID matches
	// no record on a single-article lookup or vote update.
	ErrArticleNotFound = &RequestError{Status: http.StatusNotFound, Msg: "no such article"}

	// ErrArticleIDNotFound is returned when the article referenced by a
	// comment listing does not exist.
	ErrArticleIDNotFound = &RequestError{Status: http.StatusNotFound, Msg: "no such article id"}

	// ErrArticleRef is returned when a comment is posted against an article
	// that does not exist. Same message as ErrArticleNotFound but a 400,
	// matching the create endpoint's contract.
	ErrArticleRef = &RequestError{Status: http.StatusBadRequest, Msg: "no such article"}

	// ErrUnknownUsername is returned when a comment's author does not match
	// an existing user.
	ErrUnknownUsername = &RequestError{Status: http.StatusNotFound, Msg: "this username does not exist"}

	// ErrForbiddenComment is returned when the moderation gate rejects a
	// comment body.
	ErrForbiddenComment = &RequestError{Status: http.StatusForbidden, Msg: "forbidden comment"}
)
