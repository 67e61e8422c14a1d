package api

import (
	"errors"
	"net/http"

	"github.com/discussion-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Every failure is rendered through the classifier chain below: an ordered
// list of classifiers tried in sequence, first match wins, with a mandatory
// fallback. Data-layer faults are recognized first, then typed domain
// errors; anything else is logged and rendered as a 500 without leaking
// internal detail to the client.

// classification is a renderable {status, msg} pair
type classification struct {
	status int
	msg    string
}

// classifier inspects an error and either claims it or delegates to the
// next stage
type classifier func(err error) (classification, bool)

var classifierChain = []classifier{
	classifyDataFault,
	classifyDomainError,
}

// renderError terminates the request with the stable JSON shape for err
func renderError(c *gin.Context, log zerolog.Logger, err error) {
	for _, classify := range classifierChain {
		if cl, ok := classify(err); ok {
			c.AbortWithStatusJSON(cl.status, gin.H{"msg": cl.msg})
			return
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unclassified error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
}

// classifyDataFault recognizes Postgres faults that indicate a malformed
// input reached the store, by SQLSTATE code.
func classifyDataFault(err error) (classification, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return classification{}, false
	}

	switch pqErr.Code {
	case "22P02": // invalid_text_representation: non-numeric value for a numeric key
		return classification{status: http.StatusBadRequest, msg: "bad request"}, true
	case "23503": // foreign_key_violation: comment insert against a vanished article
		return classification{status: http.StatusBadRequest, msg: "no such article"}, true
	case "23502": // not_null_violation
		return classification{status: http.StatusBadRequest, msg: "bad request"}, true
	}
	return classification{}, false
}

// classifyDomainError recognizes explicitly raised domain errors and
// renders their {status, msg} verbatim
func classifyDomainError(err error) (classification, bool) {
	var reqErr *service.RequestError
	if errors.As(err, &reqErr) {
		return classification{status: reqErr.Status, msg: reqErr.Msg}, true
	}
	return classification{}, false
}
