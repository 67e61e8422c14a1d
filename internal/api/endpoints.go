package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpointsJSON is the static, versioned description of the available
// endpoints, served verbatim by GET /api.
//
//go:embed endpoints.json
var endpointsJSON []byte

// getEndpoints handles GET /api
func getEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": json.RawMessage(endpointsJSON)})
}
